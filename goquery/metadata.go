package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/articlecheck"
)

// Ensure MetadataReader implements articlecheck.MetadataReader at compile time.
var _ articlecheck.MetadataReader = (*MetadataReader)(nil)

// MetaSelector names a <head> element and the attribute holding its value.
// Selectors for a field are tried in order and the first non-empty value wins.
type MetaSelector struct {
	Selector string
	Attr     string // empty means the element text
}

// Default selector chains for each metadata field.
var (
	TitleSelectors = []MetaSelector{
		{Selector: `meta[property="og:title"]`, Attr: "content"},
		{Selector: `meta[name="twitter:title"]`, Attr: "content"},
		{Selector: "head title"},
	}

	AuthorSelectors = []MetaSelector{
		{Selector: `meta[name="author"]`, Attr: "content"},
		{Selector: `meta[property="article:author"]`, Attr: "content"},
	}

	PublishedDateSelectors = []MetaSelector{
		{Selector: `meta[property="article:published_time"]`, Attr: "content"},
	}

	DescriptionSelectors = []MetaSelector{
		{Selector: `meta[name="description"]`, Attr: "content"},
		{Selector: `meta[property="og:description"]`, Attr: "content"},
	}
)

// MetadataReader reads author, date and description tags with goquery.
type MetadataReader struct{}

// NewMetadataReader creates a new MetadataReader.
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// ReadMetadata parses html and returns whatever metadata it carries.
// Missing tags leave the corresponding field empty.
func (r *MetadataReader) ReadMetadata(html string) (*articlecheck.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, articlecheck.Errorf(articlecheck.EEXTRACT, "failed to parse HTML: %v", err)
	}

	return &articlecheck.Metadata{
		Title:         firstValue(doc, TitleSelectors),
		Author:        firstValue(doc, AuthorSelectors),
		PublishedDate: firstValue(doc, PublishedDateSelectors),
		Description:   firstValue(doc, DescriptionSelectors),
	}, nil
}

func firstValue(doc *goquery.Document, selectors []MetaSelector) string {
	for _, s := range selectors {
		var value string
		doc.Find(s.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if s.Attr == "" {
				value = strings.TrimSpace(sel.Text())
			} else {
				v, _ := sel.Attr(s.Attr)
				value = strings.TrimSpace(v)
			}
			return value == ""
		})
		if value != "" {
			return value
		}
	}
	return ""
}
