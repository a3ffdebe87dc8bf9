// Package gin serves the analysis API over HTTP using the Gin framework.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/articlecheck"
	"github.com/gin-gonic/gin"
)

// Service identity reported by the root and health endpoints.
const (
	ServiceName    = "AI Content Analyzer API"
	ServiceVersion = "1.0.0"
)

// Server defaults.
const (
	DefaultAddr            = ":3002"
	DefaultCORSOrigin      = "http://localhost:3000"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 3 * time.Minute
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// Config holds the server settings.
type Config struct {
	Addr            string
	CORSOrigin      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// SetDefaults fills zero fields with their defaults.
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.CORSOrigin == "" {
		c.CORSOrigin = DefaultCORSOrigin
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// RequestObserver records handled requests, typically as metrics.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records every request with observer and exposes handler
// at GET /metrics.
func WithMetrics(observer RequestObserver, handler http.Handler) Option {
	return func(s *Server) {
		s.observer = observer
		s.metricsHandler = handler
	}
}

// WithClock replaces the clock used for health timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// Server is the HTTP front end of an AnalysisService.
type Server struct {
	service articlecheck.AnalysisService
	logger  *slog.Logger
	config  Config

	observer       RequestObserver
	metricsHandler http.Handler
	now            func() time.Time

	router *gin.Engine
	server *http.Server
}

// NewServer creates a Server with routes and middleware installed.
func NewServer(cfg Config, service articlecheck.AnalysisService, logger *slog.Logger, opts ...Option) *Server {
	cfg.SetDefaults()

	s := &Server{
		service: service,
		logger:  logger,
		config:  cfg,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = false

	// Recovery runs first so panics in later middleware are caught.
	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	if s.observer != nil {
		router.Use(MetricsMiddleware(s.observer))
	}
	router.Use(CORSMiddleware(cfg.CORSOrigin))

	s.registerRoutes(router)
	s.router = router

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on ln until the server is shut down.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting HTTP server",
		"addr", ln.Addr().String(),
		"cors_origin", s.config.CORSOrigin,
	)
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests,
// up to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down HTTP server", "timeout", s.config.ShutdownTimeout)
	return s.server.Shutdown(ctx)
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// The parent context is already cancelled, so shut down on a fresh one.
	if err := s.Shutdown(context.Background()); err != nil {
		return err
	}
	return <-errCh
}
