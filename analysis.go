package articlecheck

import "context"

// Score bounds for SEOAnalysis and FactualAnalysis.
const (
	MinScore = 0
	MaxScore = 100
)

// SEOSuggestion is a single actionable SEO improvement.
type SEOSuggestion struct {
	Issue      string   `json:"issue"`
	Suggestion string   `json:"suggestion"`
	Sources    []string `json:"sources"`
}

// FactualSuggestion is a single claim that needs correcting.
type FactualSuggestion struct {
	Claim      string   `json:"claim"`
	Issue      string   `json:"issue"`
	Correction string   `json:"correction"`
	Sources    []string `json:"sources"`
}

// SEOAnalysis is the SEO assessment of an article.
// An empty Suggestions slice means no issues were found.
type SEOAnalysis struct {
	Score       int             `json:"score"`
	Suggestions []SEOSuggestion `json:"suggestions"`
}

// FactualAnalysis is the factual-accuracy assessment of an article.
// An empty Suggestions slice means no issues were found.
type FactualAnalysis struct {
	Score       int                 `json:"score"`
	Suggestions []FactualSuggestion `json:"suggestions"`
}

// AnalysisResult combines an article with both of its assessments.
type AnalysisResult struct {
	Article Article         `json:"article"`
	SEO     SEOAnalysis     `json:"seo"`
	Factual FactualAnalysis `json:"factual"`
}

// SEOAnalyzer assesses the SEO quality of an article.
type SEOAnalyzer interface {
	// AnalyzeSEO returns EANALYSIS if the model call fails or its reply
	// cannot be decoded.
	AnalyzeSEO(ctx context.Context, article *Article) (*SEOAnalysis, error)
}

// FactualAnalyzer assesses the factual accuracy of an article.
type FactualAnalyzer interface {
	// AnalyzeFactual returns EANALYSIS if the model call fails or its reply
	// cannot be decoded.
	AnalyzeFactual(ctx context.Context, article *Article) (*FactualAnalysis, error)
}

// AnalysisService runs the full pipeline for a single URL.
type AnalysisService interface {
	// Analyze validates url, extracts the article and runs both analyses.
	// Returns EINVALID for a malformed URL without touching the network.
	Analyze(ctx context.Context, url string) (*AnalysisResult, error)
}
