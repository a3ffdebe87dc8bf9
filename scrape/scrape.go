// Package scrape turns a web page into an articlecheck.Article.
// It coordinates fetching, readable-content extraction, metadata lookup,
// and Markdown conversion of a single article.
package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/articlecheck"
)

// Ensure Scraper implements articlecheck.ArticleExtractor at compile time.
var _ articlecheck.ArticleExtractor = (*Scraper)(nil)

// Scraper retrieves a page and normalizes it into an Article.
type Scraper struct {
	Fetcher   articlecheck.Fetcher
	Extractor articlecheck.Extractor
	Converter articlecheck.Converter

	// Metadata is optional. When nil, only the extractor's fields are used.
	Metadata articlecheck.MetadataReader
}

// ExtractArticle fetches url and returns its readable content as Markdown.
func (s *Scraper) ExtractArticle(ctx context.Context, url string) (*articlecheck.Article, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, withCode(err, articlecheck.EFETCH, "failed to fetch article")
	}

	extracted, err := s.Extractor.Extract(html, url)
	if err != nil {
		return nil, withCode(err, articlecheck.EEXTRACT, "failed to extract article")
	}

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, withCode(err, articlecheck.EEXTRACT, "failed to convert article")
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, articlecheck.Errorf(articlecheck.EEXTRACT, "no readable content found at %s", url)
	}

	// Metadata only enriches the article, so a parse failure is not fatal.
	meta := &articlecheck.Metadata{}
	if s.Metadata != nil {
		if m, err := s.Metadata.ReadMetadata(html); err == nil && m != nil {
			meta = m
		}
	}

	return &articlecheck.Article{
		URL:           url,
		Title:         firstNonEmpty(extracted.Title, meta.Title),
		Content:       markdown,
		Author:        firstNonEmpty(meta.Author, extracted.Byline),
		PublishedDate: firstNonEmpty(meta.PublishedDate, formatTime(extracted.PublishedTime)),
		Excerpt:       firstNonEmpty(extracted.Excerpt, meta.Description),
	}, nil
}

// withCode keeps the code of application errors and wraps anything else
// with the given code.
func withCode(err error, code, msg string) error {
	if articlecheck.ErrorCode(err) != articlecheck.EINTERNAL {
		return err
	}
	return articlecheck.WrapError(code, err, "%s", msg)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
