package mock

import (
	"context"

	"github.com/fwojciec/articlecheck"
)

var (
	_ articlecheck.SEOAnalyzer     = (*SEOAnalyzer)(nil)
	_ articlecheck.FactualAnalyzer = (*FactualAnalyzer)(nil)
	_ articlecheck.AnalysisService = (*AnalysisService)(nil)
)

// SEOAnalyzer is a mock implementation of articlecheck.SEOAnalyzer.
type SEOAnalyzer struct {
	AnalyzeSEOFn func(ctx context.Context, article *articlecheck.Article) (*articlecheck.SEOAnalysis, error)
}

func (a *SEOAnalyzer) AnalyzeSEO(ctx context.Context, article *articlecheck.Article) (*articlecheck.SEOAnalysis, error) {
	return a.AnalyzeSEOFn(ctx, article)
}

// FactualAnalyzer is a mock implementation of articlecheck.FactualAnalyzer.
type FactualAnalyzer struct {
	AnalyzeFactualFn func(ctx context.Context, article *articlecheck.Article) (*articlecheck.FactualAnalysis, error)
}

func (a *FactualAnalyzer) AnalyzeFactual(ctx context.Context, article *articlecheck.Article) (*articlecheck.FactualAnalysis, error) {
	return a.AnalyzeFactualFn(ctx, article)
}

// AnalysisService is a mock implementation of articlecheck.AnalysisService.
type AnalysisService struct {
	AnalyzeFn func(ctx context.Context, url string) (*articlecheck.AnalysisResult, error)
}

func (s *AnalysisService) Analyze(ctx context.Context, url string) (*articlecheck.AnalysisResult, error) {
	return s.AnalyzeFn(ctx, url)
}
