package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/articlecheck"
	"github.com/fwojciec/articlecheck/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature    float32 `json:"temperature"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

func chatServer(t *testing.T, content string, got *chatRequest, auth *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if auth != nil {
			*auth = r.Header.Get("Authorization")
		}
		if got != nil {
			_ = json.NewDecoder(r.Body).Decode(got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
}

func TestNewCompleter(t *testing.T) {
	t.Parallel()

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := openai.NewCompleter(openai.Config{APIKey: "  "})

		require.Error(t, err)
		assert.Equal(t, articlecheck.EINVALID, articlecheck.ErrorCode(err))
	})

	t.Run("accepts key with defaults", func(t *testing.T) {
		t.Parallel()

		c, err := openai.NewCompleter(openai.Config{APIKey: "sk-test"})

		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("sends JSON-mode request and returns reply", func(t *testing.T) {
		t.Parallel()

		var got chatRequest
		var auth string
		srv := chatServer(t, `{"score": 80}`, &got, &auth)
		defer srv.Close()

		c, err := openai.NewCompleter(openai.Config{APIKey: "sk-test", BaseURL: srv.URL + "/", Model: "test-model"})
		require.NoError(t, err)

		reply, err := c.Complete(context.Background(), &articlecheck.CompletionRequest{
			System:      "You are an expert.",
			Prompt:      "Analyze this.",
			Temperature: 0.7,
			JSON:        true,
		})

		require.NoError(t, err)
		assert.Equal(t, `{"score": 80}`, reply)
		assert.Equal(t, "Bearer sk-test", auth)
		assert.Equal(t, "test-model", got.Model)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, "You are an expert.", got.Messages[0].Content)
		assert.Equal(t, "user", got.Messages[1].Role)
		assert.Equal(t, "Analyze this.", got.Messages[1].Content)
		assert.InDelta(t, 0.7, got.Temperature, 0.0001)
		require.NotNil(t, got.ResponseFormat)
		assert.Equal(t, "json_object", got.ResponseFormat.Type)
	})

	t.Run("returns analysis error on empty reply", func(t *testing.T) {
		t.Parallel()

		srv := chatServer(t, "", nil, nil)
		defer srv.Close()

		c, err := openai.NewCompleter(openai.Config{APIKey: "sk-test", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Complete(context.Background(), &articlecheck.CompletionRequest{Prompt: "hi"})

		require.Error(t, err)
		assert.Equal(t, articlecheck.EANALYSIS, articlecheck.ErrorCode(err))
	})

	t.Run("returns analysis error on upstream failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"message": "invalid key", "type": "auth"}}`))
		}))
		defer srv.Close()

		c, err := openai.NewCompleter(openai.Config{APIKey: "sk-bad", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Complete(context.Background(), &articlecheck.CompletionRequest{Prompt: "hi"})

		require.Error(t, err)
		assert.Equal(t, articlecheck.EANALYSIS, articlecheck.ErrorCode(err))
	})
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	t.Run("omits system message and response format when unset", func(t *testing.T) {
		t.Parallel()

		req := openai.BuildRequest("m", &articlecheck.CompletionRequest{Prompt: "hi"})

		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Nil(t, req.ResponseFormat)
	})
}
