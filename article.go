package articlecheck

import (
	"context"
	"net/url"
)

// Article is the normalized readable content of a web page.
type Article struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"` // Markdown

	Author        string `json:"author,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
}

// Validate returns an error if the article cannot be analyzed.
func (a *Article) Validate() error {
	if a == nil {
		return Errorf(EINVALID, "article required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.Content == "" {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// ArticleExtractor retrieves a web page and turns it into an Article.
type ArticleExtractor interface {
	// ExtractArticle fetches the page at url and isolates its readable content.
	// Returns EFETCH if the page cannot be retrieved and EEXTRACT if no
	// readable content can be found in it.
	ExtractArticle(ctx context.Context, url string) (*Article, error)
}

// ValidateURL reports whether raw is a well-formed absolute http or https URL.
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
