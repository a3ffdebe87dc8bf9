package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/articlecheck"
)

// Ensure LoggingArticleExtractor implements articlecheck.ArticleExtractor.
var _ articlecheck.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with logging.
type LoggingArticleExtractor struct {
	next   articlecheck.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
func NewLoggingArticleExtractor(next articlecheck.ArticleExtractor, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the operation.
func (e *LoggingArticleExtractor) ExtractArticle(ctx context.Context, url string) (article *articlecheck.Article, err error) {
	defer func(begin time.Time) {
		var title string
		var size int
		if article != nil {
			title = article.Title
			size = len(article.Content)
		}
		e.logger.Info("extract article",
			"url", url,
			"title", title,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractArticle(ctx, url)
}
