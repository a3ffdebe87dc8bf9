package analysis_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/articlecheck"
	"github.com/fwojciec/articlecheck/analysis"
	"github.com/fwojciec/articlecheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticle() *articlecheck.Article {
	return &articlecheck.Article{
		URL:     "https://news.example.com/bikes",
		Title:   "City Expands Bike Lanes",
		Content: "The council approved 40 km of new lanes.",
	}
}

// passthroughLinks treats every candidate as live.
func passthroughLinks() *mock.LinkChecker {
	return &mock.LinkChecker{
		FilterLiveFn: func(_ context.Context, urls []string) []string {
			return urls
		},
	}
}

func TestSEOAnalyzer_AnalyzeSEO(t *testing.T) {
	t.Parallel()

	t.Run("sends JSON request with system prompt and temperature", func(t *testing.T) {
		t.Parallel()

		var got *articlecheck.CompletionRequest
		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, req *articlecheck.CompletionRequest) (string, error) {
				got = req
				return `{"score": 80, "suggestions": []}`, nil
			},
		}
		a := analysis.NewSEOAnalyzer(completer, passthroughLinks())

		_, err := a.AnalyzeSEO(context.Background(), testArticle())

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, analysis.SEOSystemPrompt, got.System)
		assert.InDelta(t, 0.7, got.Temperature, 0.0001)
		assert.True(t, got.JSON)
		assert.Contains(t, got.Prompt, "Article Title: City Expands Bike Lanes")
	})

	t.Run("applies options", func(t *testing.T) {
		t.Parallel()

		var got *articlecheck.CompletionRequest
		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, req *articlecheck.CompletionRequest) (string, error) {
				got = req
				return `{"score": 80}`, nil
			},
		}
		a := analysis.NewSEOAnalyzer(completer, passthroughLinks(),
			analysis.WithContentLimit(7),
			analysis.WithTemperature(0.2),
		)

		_, err := a.AnalyzeSEO(context.Background(), testArticle())

		require.NoError(t, err)
		assert.InDelta(t, 0.2, got.Temperature, 0.0001)
		assert.Contains(t, got.Prompt, "Article Content:\nThe cou\n")
	})

	t.Run("filters sources of every suggestion in order", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, _ *articlecheck.CompletionRequest) (string, error) {
				return `{"score": 72, "suggestions": [
					{"issue": "a", "suggestion": "fix a", "sources": ["https://dead.example", "https://moz.com/a"]},
					{"issue": "b", "suggestion": "fix b", "sources": ["https://dead.example/b"]},
					{"issue": "c", "suggestion": "fix c", "sources": []}
				]}`, nil
			},
		}
		var mu sync.Mutex
		var calls int
		links := &mock.LinkChecker{
			FilterLiveFn: func(_ context.Context, urls []string) []string {
				mu.Lock()
				calls++
				mu.Unlock()
				switch {
				case len(urls) == 0:
					return []string{}
				case urls[0] == "https://dead.example":
					return []string{"https://moz.com/a"}
				default:
					return urls[:1]
				}
			},
		}
		a := analysis.NewSEOAnalyzer(completer, links)

		got, err := a.AnalyzeSEO(context.Background(), testArticle())

		require.NoError(t, err)
		assert.Equal(t, 72, got.Score)
		require.Len(t, got.Suggestions, 3)
		assert.Equal(t, "a", got.Suggestions[0].Issue)
		assert.Equal(t, []string{"https://moz.com/a"}, got.Suggestions[0].Sources)
		assert.Equal(t, "b", got.Suggestions[1].Issue)
		assert.Equal(t, []string{"https://dead.example/b"}, got.Suggestions[1].Sources)
		assert.Equal(t, "c", got.Suggestions[2].Issue)
		assert.Equal(t, []string{}, got.Suggestions[2].Sources)
		assert.Equal(t, 3, calls)
	})

	t.Run("clamps score", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, _ *articlecheck.CompletionRequest) (string, error) {
				return `{"score": 150, "suggestions": []}`, nil
			},
		}
		a := analysis.NewSEOAnalyzer(completer, passthroughLinks())

		got, err := a.AnalyzeSEO(context.Background(), testArticle())

		require.NoError(t, err)
		assert.Equal(t, 100, got.Score)
	})

	t.Run("returns analysis error for malformed reply", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, _ *articlecheck.CompletionRequest) (string, error) {
				return `{"score": 72,`, nil
			},
		}
		a := analysis.NewSEOAnalyzer(completer, passthroughLinks())

		got, err := a.AnalyzeSEO(context.Background(), testArticle())

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, articlecheck.EANALYSIS, articlecheck.ErrorCode(err))
	})

	t.Run("wraps completer failure as analysis error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("upstream 503")
		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, _ *articlecheck.CompletionRequest) (string, error) {
				return "", cause
			},
		}
		a := analysis.NewSEOAnalyzer(completer, passthroughLinks())

		_, err := a.AnalyzeSEO(context.Background(), testArticle())

		require.Error(t, err)
		assert.Equal(t, articlecheck.EANALYSIS, articlecheck.ErrorCode(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("rejects article without content", func(t *testing.T) {
		t.Parallel()

		a := analysis.NewSEOAnalyzer(&mock.Completer{}, passthroughLinks())

		_, err := a.AnalyzeSEO(context.Background(), &articlecheck.Article{URL: "https://example.com"})

		require.Error(t, err)
		assert.Equal(t, articlecheck.EINVALID, articlecheck.ErrorCode(err))
	})
}
