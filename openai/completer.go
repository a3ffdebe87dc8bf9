// Package openai implements articlecheck.Completer on top of any
// OpenAI-compatible chat completion endpoint, such as OpenRouter.
package openai

import (
	"context"
	"net/http"
	"strings"

	"github.com/fwojciec/articlecheck"
	"github.com/sashabaranov/go-openai"
)

// Defaults for the OpenRouter endpoint.
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "x-ai/grok-4.1-fast"
)

// Ensure Completer implements articlecheck.Completer at compile time.
var _ articlecheck.Completer = (*Completer)(nil)

// Config holds the connection settings for a Completer.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// HTTPClient is optional. The library default is used when nil.
	HTTPClient *http.Client
}

// Completer sends chat completion requests.
type Completer struct {
	client *openai.Client
	model  string
}

// NewCompleter creates a Completer. Returns EINVALID if the API key is missing.
func NewCompleter(cfg Config) (*Completer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, articlecheck.Errorf(articlecheck.EINVALID, "OpenRouter API key required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	return &Completer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

// Complete sends req as a system and user message pair and returns the
// text of the first choice.
func (c *Completer) Complete(ctx context.Context, req *articlecheck.CompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, req))
	if err != nil {
		return "", articlecheck.WrapError(articlecheck.EANALYSIS, err, "chat completion failed")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", articlecheck.Errorf(articlecheck.EANALYSIS, "no response from AI service")
	}
	return resp.Choices[0].Message.Content, nil
}

// BuildRequest converts req into a chat completion request for model.
func BuildRequest(model string, req *articlecheck.CompletionRequest) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	out := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.JSON {
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return out
}
