package analysis

import (
	"context"
	"strings"

	"github.com/fwojciec/articlecheck"
	"golang.org/x/sync/errgroup"
)

// Ensure Service implements articlecheck.AnalysisService at compile time.
var _ articlecheck.AnalysisService = (*Service)(nil)

// Validation messages returned for bad input URLs.
const (
	MsgURLRequired = "URL is required and must be a string"
	MsgURLInvalid  = "Invalid URL format. Please provide a valid HTTP or HTTPS URL."
)

// Service runs extraction followed by both analyses.
type Service struct {
	Extractor articlecheck.ArticleExtractor
	SEO       articlecheck.SEOAnalyzer
	Factual   articlecheck.FactualAnalyzer
}

// Analyze extracts the article at url and assesses it.
// Both analyses run concurrently; the first failure cancels the other and
// fails the whole call.
func (s *Service) Analyze(ctx context.Context, url string) (*articlecheck.AnalysisResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, articlecheck.Errorf(articlecheck.EINVALID, MsgURLRequired)
	}
	if !articlecheck.ValidateURL(url) {
		return nil, articlecheck.Errorf(articlecheck.EINVALID, MsgURLInvalid)
	}

	article, err := s.Extractor.ExtractArticle(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := article.Validate(); err != nil {
		return nil, articlecheck.WrapError(articlecheck.EEXTRACT, err, "extracted article is incomplete")
	}

	var (
		seo     *articlecheck.SEOAnalysis
		factual *articlecheck.FactualAnalysis
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		seo, err = s.SEO.AnalyzeSEO(gctx, article)
		return err
	})
	g.Go(func() error {
		var err error
		factual, err = s.Factual.AnalyzeFactual(gctx, article)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &articlecheck.AnalysisResult{
		Article: *article,
		SEO:     *seo,
		Factual: *factual,
	}, nil
}
