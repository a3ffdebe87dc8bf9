package gin

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fwojciec/articlecheck"
	"github.com/gin-gonic/gin"
)

// Messages returned to clients.
const (
	MsgURLRequired = "URL is required and must be a string"
	MsgNotFound    = "The requested endpoint does not exist"
)

// healthTimeLayout matches JavaScript's toISOString output.
const healthTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// publicMessages are shown instead of internal error text.
var publicMessages = map[string]string{
	articlecheck.EFETCH:    "Failed to fetch the article. Please check the URL and try again.",
	articlecheck.EEXTRACT:  "Could not extract readable content from the article.",
	articlecheck.EANALYSIS: "Failed to analyze the article. Please try again later.",
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/", s.handleRoot)

	api := router.Group("/api")
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/health", s.handleHealth)

	if s.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}

	router.NoRoute(func(c *gin.Context) {
		s.writeError(c, articlecheck.Errorf(articlecheck.ENOTFOUND, MsgNotFound))
	})
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": ServiceName,
		"version": ServiceVersion,
		"endpoints": gin.H{
			"health":  "/api/health",
			"analyze": "POST /api/analyze",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC().Format(healthTimeLayout),
		Service:   ServiceName,
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	url, err := requestURL(c)
	if err != nil {
		s.writeError(c, err)
		return
	}

	result, err := s.service.Analyze(c.Request.Context(), url)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// requestURL reads the "url" field from a JSON or form-encoded body.
func requestURL(c *gin.Context) (string, error) {
	if strings.HasPrefix(c.ContentType(), "application/x-www-form-urlencoded") {
		url := c.PostForm("url")
		if url == "" {
			return "", articlecheck.Errorf(articlecheck.EINVALID, MsgURLRequired)
		}
		return url, nil
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		return "", articlecheck.WrapError(articlecheck.EINVALID, err, MsgURLRequired)
	}

	var url string
	if err := json.Unmarshal(body["url"], &url); err != nil || url == "" {
		return "", articlecheck.Errorf(articlecheck.EINVALID, MsgURLRequired)
	}
	return url, nil
}

// writeError maps err to a status code and writes an ErrorResponse.
// Only validation and not-found messages reach the client verbatim.
func (s *Server) writeError(c *gin.Context, err error) {
	code := articlecheck.ErrorCode(err)

	var status int
	var message string
	switch code {
	case articlecheck.EINVALID:
		status, message = http.StatusBadRequest, articlecheck.ErrorMessage(err)
	case articlecheck.ENOTFOUND:
		status, message = http.StatusNotFound, articlecheck.ErrorMessage(err)
	default:
		status = http.StatusInternalServerError
		message = publicMessages[code]
		if message == "" {
			message = "Something went wrong"
		}
		s.logger.Error("request failed",
			"request_id", c.GetString(RequestIDKey),
			"path", c.Request.URL.Path,
			"code", code,
			"err", err,
		)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
