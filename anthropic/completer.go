// Package anthropic implements articlecheck.Completer using Claude models.
package anthropic

import (
	"context"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/articlecheck"
)

// Defaults used when Config leaves them empty.
const (
	DefaultModel     = "claude-haiku-4-5-20251001"
	DefaultMaxTokens = 4096
)

// jsonInstruction is appended to the system prompt when JSON output is
// requested, since the Messages API has no JSON response mode.
const jsonInstruction = "Respond with a single JSON object and no other text."

// Ensure Completer implements articlecheck.Completer at compile time.
var _ articlecheck.Completer = (*Completer)(nil)

// Config holds the connection settings for a Completer.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int64

	HTTPClient *http.Client
}

// Completer sends prompts to the Anthropic Messages API.
type Completer struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewCompleter creates a Completer. Returns EINVALID if the API key is missing.
func NewCompleter(cfg Config) (*Completer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, articlecheck.Errorf(articlecheck.EINVALID, "Anthropic API key required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &Completer{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Complete sends req as a single user message and returns the text blocks
// of the reply.
func (c *Completer) Complete(ctx context.Context, req *articlecheck.CompletionRequest) (string, error) {
	msg, err := c.client.Messages.New(ctx, BuildParams(c.model, c.maxTokens, req))
	if err != nil {
		return "", articlecheck.WrapError(articlecheck.EANALYSIS, err, "anthropic request failed")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := sb.String()
	if req.JSON {
		text = StripCodeFence(text)
	}
	if strings.TrimSpace(text) == "" {
		return "", articlecheck.Errorf(articlecheck.EANALYSIS, "no response from AI service")
	}
	return text, nil
}

// BuildParams converts req into Messages API parameters.
func BuildParams(model string, maxTokens int64, req *articlecheck.CompletionRequest) anthropic.MessageNewParams {
	system := req.System
	if req.JSON {
		system = strings.TrimSpace(system + "\n\n" + jsonInstruction)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(float64(req.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	return params
}

// StripCodeFence removes a surrounding Markdown code fence, which Claude
// sometimes adds around JSON replies.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(s[3:], "```")
	// Drop the info string, e.g. "json".
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
