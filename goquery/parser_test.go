package goquery_test

import (
	"testing"

	"github.com/inutamago-dogegg/ogp"
	"github.com/inutamago-dogegg/ogp/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Meta(t *testing.T) {
	t.Parallel()

	t.Run("finds property and name tags in any attribute order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<meta content='Quoted' property=og:title>
	<meta name="twitter:image" content="pic.jpg">
</head>
<body></body>
</html>`

		src, err := goquery.NewParser().Parse(html)
		require.NoError(t, err)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Quoted", v)

		v, ok = src.Meta(ogp.AttrName, "twitter:image")
		require.True(t, ok)
		assert.Equal(t, "pic.jpg", v)
	})

	t.Run("compares keys case-insensitively", func(t *testing.T) {
		t.Parallel()

		src, err := goquery.NewParser().Parse(`<meta PROPERTY="OG:Title" content="Upper">`)
		require.NoError(t, err)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Upper", v)
	})

	t.Run("skips matching tags without content", func(t *testing.T) {
		t.Parallel()

		src, err := goquery.NewParser().Parse(`<meta property="og:title"><meta property="og:title" content="Second">`)
		require.NoError(t, err)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Second", v)
	})

	t.Run("reports absent keys", func(t *testing.T) {
		t.Parallel()

		src, err := goquery.NewParser().Parse(`<p>nothing here</p>`)
		require.NoError(t, err)

		_, ok := src.Meta(ogp.AttrName, "description")
		assert.False(t, ok)
	})
}

func TestParser_Title(t *testing.T) {
	t.Parallel()

	src, err := goquery.NewParser().Parse(`<html><head><title> Fallback Title </title></head></html>`)
	require.NoError(t, err)

	v, ok := src.Title()
	require.True(t, ok)
	assert.Equal(t, "Fallback Title", v)
}

func TestParser_MatchesExtractContract(t *testing.T) {
	t.Parallel()

	html := `<head>
<meta property="og:title" content="Tom &amp; Jerry">
<meta name="description" content="Plain description">
<meta property="og:image" content="/img.png">
</head>`

	src, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)

	preview := ogp.Extract(src, "https://example.com/page", "https://example.com/page")

	assert.Equal(t, &ogp.Preview{
		URL:         "https://example.com/page",
		Title:       "Tom & Jerry",
		Description: "Plain description",
		Image:       "https://example.com/img.png",
		SiteName:    "example.com",
	}, preview)
}
