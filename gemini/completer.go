// Package gemini implements articlecheck.Completer using Google Gemini.
package gemini

import (
	"context"
	"net/http"
	"strings"

	"github.com/fwojciec/articlecheck"
	"google.golang.org/genai"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements articlecheck.Completer at compile time.
var _ articlecheck.Completer = (*Completer)(nil)

// Config holds the connection settings for a Completer.
type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the Gemini API endpoint.
	BaseURL string

	HTTPClient *http.Client
}

// Completer generates content with a Gemini model.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a Completer. Returns EINVALID if the API key is missing.
func NewCompleter(ctx context.Context, cfg Config) (*Completer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, articlecheck.Errorf(articlecheck.EINVALID, "Gemini API key required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, articlecheck.WrapError(articlecheck.EINVALID, err, "failed to create Gemini client")
	}

	return &Completer{client: client, model: cfg.Model}, nil
}

// Complete generates a reply to req.Prompt.
func (c *Completer) Complete(ctx context.Context, req *articlecheck.CompletionRequest) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", articlecheck.WrapError(articlecheck.EANALYSIS, err, "gemini request failed")
	}
	if result == nil {
		return "", articlecheck.Errorf(articlecheck.EANALYSIS, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", articlecheck.Errorf(articlecheck.EANALYSIS, "no response from AI service")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for req.
func BuildConfig(req *articlecheck.CompletionRequest) *genai.GenerateContentConfig {
	temp := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}
	return config
}
