package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/articlecheck"
)

// Ensure LoggingCompleter implements articlecheck.Completer.
var _ articlecheck.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging.
// Prompt and reply text are not logged, only their sizes.
type LoggingCompleter struct {
	next   articlecheck.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next articlecheck.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the operation.
func (c *LoggingCompleter) Complete(ctx context.Context, req *articlecheck.CompletionRequest) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"prompt_bytes", len(req.Prompt),
			"reply_bytes", len(reply),
			"json", req.JSON,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req)
}
