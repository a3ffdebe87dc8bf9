// Package readability isolates the main content of an article using the
// Mozilla Readability heuristic as ported by go-shiori/go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/articlecheck"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements articlecheck.Extractor at compile time.
var _ articlecheck.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*articlecheck.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, articlecheck.Errorf(articlecheck.EEXTRACT, "empty HTML input")
	}

	var base *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, articlecheck.Errorf(articlecheck.EINVALID, "invalid page URL: %v", err)
		}
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, articlecheck.WrapError(articlecheck.EEXTRACT, err, "failed to extract article content")
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, articlecheck.Errorf(articlecheck.EEXTRACT, "failed to extract article content")
	}

	return &articlecheck.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
		Byline:      strings.TrimSpace(article.Byline),
		Excerpt:     strings.TrimSpace(article.Excerpt),
	}, nil
}
