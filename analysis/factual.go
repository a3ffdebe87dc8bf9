package analysis

import (
	"context"

	"github.com/fwojciec/articlecheck"
)

// Ensure FactualAnalyzer implements articlecheck.FactualAnalyzer at compile time.
var _ articlecheck.FactualAnalyzer = (*FactualAnalyzer)(nil)

// FactualAnalyzer checks an article's claims for accuracy and currency.
type FactualAnalyzer struct {
	completer articlecheck.Completer
	links     articlecheck.LinkChecker
	cfg       config
}

// NewFactualAnalyzer creates a FactualAnalyzer.
func NewFactualAnalyzer(completer articlecheck.Completer, links articlecheck.LinkChecker, opts ...Option) *FactualAnalyzer {
	return &FactualAnalyzer{
		completer: completer,
		links:     links,
		cfg:       newConfig(opts),
	}
}

// AnalyzeFactual asks the model for a fact-check of article.
func (a *FactualAnalyzer) AnalyzeFactual(ctx context.Context, article *articlecheck.Article) (*articlecheck.FactualAnalysis, error) {
	if err := article.Validate(); err != nil {
		return nil, err
	}

	reply, err := a.completer.Complete(ctx, &articlecheck.CompletionRequest{
		System:      FactualSystemPrompt,
		Prompt:      BuildFactualPrompt(article, a.cfg.contentLimit, a.cfg.today()),
		Temperature: a.cfg.temperature,
		JSON:        true,
	})
	if err != nil {
		return nil, analysisError(err, "failed to analyze factual accuracy")
	}

	out, err := DecodeFactualAnalysis(reply)
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
