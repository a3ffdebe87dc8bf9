package articlecheck

// Metadata holds document-level information read from <head> tags.
type Metadata struct {
	Title         string
	Author        string
	PublishedDate string // raw value as provided by the page
	Description   string
}

// MetadataReader reads document metadata from HTML.
type MetadataReader interface {
	ReadMetadata(html string) (*Metadata, error)
}
