package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/articlecheck"
)

// Ensure LoggingService implements articlecheck.AnalysisService.
var _ articlecheck.AnalysisService = (*LoggingService)(nil)

// LoggingService wraps an AnalysisService with logging.
type LoggingService struct {
	next   articlecheck.AnalysisService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next articlecheck.AnalysisService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Analyze delegates to the wrapped service and logs the operation,
// including the error code so failures can be grouped.
func (s *LoggingService) Analyze(ctx context.Context, url string) (result *articlecheck.AnalysisResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs,
				"seo_score", result.SEO.Score,
				"seo_suggestions", len(result.SEO.Suggestions),
				"factual_score", result.Factual.Score,
				"factual_suggestions", len(result.Factual.Suggestions),
			)
		}
		if err != nil {
			attrs = append(attrs, "code", articlecheck.ErrorCode(err), "err", err)
		}
		s.logger.Info("analyze", attrs...)
	}(time.Now())
	return s.next.Analyze(ctx, url)
}
