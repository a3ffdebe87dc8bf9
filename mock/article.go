package mock

import (
	"context"

	"github.com/fwojciec/articlecheck"
)

var _ articlecheck.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of articlecheck.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(ctx context.Context, url string) (*articlecheck.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(ctx context.Context, url string) (*articlecheck.Article, error) {
	return e.ExtractArticleFn(ctx, url)
}
