package goquery_test

import (
	"testing"

	"github.com/fwojciec/articlecheck"
	"github.com/fwojciec/articlecheck/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataReader_ReadMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads all standard tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title>City Expands Bike Lanes | Daily News</title>
	<meta name="author" content="Jane Doe">
	<meta property="article:published_time" content="2025-03-14T09:30:00Z">
	<meta name="description" content="The council approved 40 km of new lanes.">
</head>
<body><p>Body</p></body>
</html>`

		r := goquery.NewMetadataReader()
		meta, err := r.ReadMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "City Expands Bike Lanes | Daily News", meta.Title)
		assert.Equal(t, "Jane Doe", meta.Author)
		assert.Equal(t, "2025-03-14T09:30:00Z", meta.PublishedDate)
		assert.Equal(t, "The council approved 40 km of new lanes.", meta.Description)
	})

	t.Run("prefers open graph title over title element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<title>Site | Page</title>
	<meta property="og:title" content="Page">
</head><body></body></html>`

		r := goquery.NewMetadataReader()
		meta, err := r.ReadMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Page", meta.Title)
	})

	t.Run("falls back to article author", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta property="article:author" content="John Smith">
</head><body></body></html>`

		r := goquery.NewMetadataReader()
		meta, err := r.ReadMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "John Smith", meta.Author)
	})

	t.Run("skips blank values", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta name="author" content="   ">
	<meta property="article:author" content="John Smith">
	<meta name="description" content="">
	<meta property="og:description" content="From open graph">
</head><body></body></html>`

		r := goquery.NewMetadataReader()
		meta, err := r.ReadMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "John Smith", meta.Author)
		assert.Equal(t, "From open graph", meta.Description)
	})

	t.Run("keeps published date raw", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta property="article:published_time" content="March 14, 2025">
</head><body></body></html>`

		r := goquery.NewMetadataReader()
		meta, err := r.ReadMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "March 14, 2025", meta.PublishedDate)
	})

	t.Run("returns empty fields when no tags exist", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewMetadataReader()
		meta, err := r.ReadMetadata(`<html><body><p>Hello</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, articlecheck.Metadata{}, *meta)
	})
}
