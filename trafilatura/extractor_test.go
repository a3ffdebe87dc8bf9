package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/articlecheck"
	"github.com/fwojciec/articlecheck/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements articlecheck.Extractor at compile time.
var _ articlecheck.Extractor = (*trafilatura.Extractor)(nil)

const pageURL = "https://news.example.com/2025/11/story"

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Council expands bike lanes - City News</title>
<meta property="og:title" content="Council expands bike lanes">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Council expands bike lanes</h1>
<p>The city council voted on Tuesday to expand the bike lane network across the downtown core.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, pageURL)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts author and date metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Story</title>
<meta name="author" content="Jane Doe">
<meta property="article:published_time" content="2025-03-14T09:00:00Z">
</head>
<body>
<article>
<h1>Story</h1>
<p>The city council voted on Tuesday to expand the bike lane network across the downtown core.</p>
<p>Supporters say the change will reduce traffic, while critics worry about lost parking spaces.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, pageURL)

		require.NoError(t, err)
		assert.Contains(t, result.Byline, "Jane Doe")
		assert.Equal(t, 2025, result.PublishedTime.Year())
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/world">World</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual content we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, pageURL)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual content we want")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Article Title</h1>
<p>Article body with substantive content for readers.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, pageURL)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "substantive content")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024 Example Corp")
	})

	t.Run("returns extract error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("", pageURL)

		require.Error(t, err)
		assert.Equal(t, articlecheck.EEXTRACT, articlecheck.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, pageURL)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
