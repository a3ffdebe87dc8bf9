package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/articlecheck/mock"
	acslog "github.com/fwojciec/articlecheck/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingLinkChecker_FilterLive(t *testing.T) {
	t.Parallel()

	t.Run("logs counts at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.LinkChecker{
			FilterLiveFn: func(_ context.Context, urls []string) []string {
				return urls[:1]
			},
		}

		l := acslog.NewLoggingLinkChecker(inner, logger)
		live := l.FilterLive(context.Background(), []string{"https://a.example", "https://b.example"})

		assert.Equal(t, []string{"https://a.example"}, live)
		output := buf.String()
		assert.Contains(t, output, "link check")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "live=1")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LinkChecker{
			FilterLiveFn: func(_ context.Context, urls []string) []string {
				return urls
			},
		}

		l := acslog.NewLoggingLinkChecker(inner, logger)
		l.FilterLive(context.Background(), []string{"https://a.example"})

		assert.Empty(t, buf.String())
	})
}
