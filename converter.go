package articlecheck

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Headings, lists and tables keep their structure.
	Convert(html string) (string, error)
}
