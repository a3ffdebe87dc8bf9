package articlecheck

import "time"

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Byline is the author line found by the extractor, if any.
	Byline string

	// Excerpt is a short description of the content, if any.
	Excerpt string

	// PublishedTime is the publication time found by the extractor.
	// Zero when unknown.
	PublishedTime time.Time
}

// Extractor isolates the main readable region of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The pageURL is used to resolve relative links.
	// Returns EEXTRACT if no readable content can be isolated.
	Extract(html string, pageURL string) (*ExtractResult, error)
}
