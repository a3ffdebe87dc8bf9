package analysis

import (
	"context"

	"github.com/fwojciec/articlecheck"
)

// Ensure SEOAnalyzer implements articlecheck.SEOAnalyzer at compile time.
var _ articlecheck.SEOAnalyzer = (*SEOAnalyzer)(nil)

// SEOAnalyzer scores an article's search-engine optimization.
type SEOAnalyzer struct {
	completer articlecheck.Completer
	links     articlecheck.LinkChecker
	cfg       config
}

// NewSEOAnalyzer creates an SEOAnalyzer.
func NewSEOAnalyzer(completer articlecheck.Completer, links articlecheck.LinkChecker, opts ...Option) *SEOAnalyzer {
	return &SEOAnalyzer{
		completer: completer,
		links:     links,
		cfg:       newConfig(opts),
	}
}

// AnalyzeSEO asks the model for an SEO assessment of article.
func (a *SEOAnalyzer) AnalyzeSEO(ctx context.Context, article *articlecheck.Article) (*articlecheck.SEOAnalysis, error) {
	if err := article.Validate(); err != nil {
		return nil, err
	}

	reply, err := a.completer.Complete(ctx, &articlecheck.CompletionRequest{
		System:      SEOSystemPrompt,
		Prompt:      BuildSEOPrompt(article, a.cfg.contentLimit),
		Temperature: a.cfg.temperature,
		JSON:        true,
	})
	if err != nil {
		return nil, analysisError(err, "failed to analyze SEO")
	}

	out, err := DecodeSEOAnalysis(reply)
	if err != nil {
		return nil, err
	}

	sources := make([][]string, len(out.Suggestions))
	for i, s := range out.Suggestions {
		sources[i] = s.Sources
	}
	for i, live := range filterSources(ctx, a.links, sources) {
		out.Suggestions[i].Sources = live
	}
	return out, nil
}
