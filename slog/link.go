package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/articlecheck"
)

// Ensure LoggingLinkChecker implements articlecheck.LinkChecker.
var _ articlecheck.LinkChecker = (*LoggingLinkChecker)(nil)

// LoggingLinkChecker wraps a LinkChecker with debug logging.
type LoggingLinkChecker struct {
	next   articlecheck.LinkChecker
	logger *slog.Logger
}

// NewLoggingLinkChecker creates a new LoggingLinkChecker.
func NewLoggingLinkChecker(next articlecheck.LinkChecker, logger *slog.Logger) *LoggingLinkChecker {
	return &LoggingLinkChecker{next: next, logger: logger}
}

// FilterLive delegates to the wrapped checker and logs the operation.
func (l *LoggingLinkChecker) FilterLive(ctx context.Context, urls []string) (live []string) {
	defer func(begin time.Time) {
		l.logger.Debug("link check",
			"count", len(urls),
			"live", len(live),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return l.next.FilterLive(ctx, urls)
}
