// Package trafilatura provides an alternative main-content extractor built on
// go-trafilatura. It tends to do better than readability on pages with heavy
// boilerplate and also reports publication dates.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/articlecheck"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements articlecheck.Extractor at compile time.
var _ articlecheck.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, articlecheck.Errorf(articlecheck.EINVALID, "invalid page URL: %v", err)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, articlecheck.WrapError(articlecheck.EEXTRACT, err, "failed to extract article content")
	}
	if result.ContentNode == nil || strings.TrimSpace(result.ContentText) == "" {
		return nil, articlecheck.Errorf(articlecheck.EEXTRACT, "failed to extract article content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, articlecheck.WrapError(articlecheck.EEXTRACT, err, "failed to extract article content")
	}

	return &articlecheck.ExtractResult{
		Title:         result.Metadata.Title,
		ContentHTML:   contentHTML,
		Byline:        result.Metadata.Author,
		Excerpt:       result.Metadata.Description,
		PublishedTime: result.Metadata.Date,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
