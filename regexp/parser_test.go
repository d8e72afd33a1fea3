package regexp_test

import (
	"testing"

	"github.com/inutamago-dogegg/ogp"
	"github.com/inutamago-dogegg/ogp/regexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) ogp.MetaSource {
	t.Helper()
	src, err := regexp.NewParser().Parse(html)
	require.NoError(t, err)
	return src
}

func TestParser_Meta(t *testing.T) {
	t.Parallel()

	t.Run("matches double-quoted canonical form", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<head><meta property="og:title" content="Hello"></head>`)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Hello", v)
	})

	t.Run("tolerates reversed order and mixed quoting", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta content='Quoted' property=og:title>`)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Quoted", v)
	})

	t.Run("compares names and keys case-insensitively", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<META PROPERTY="OG:Title" CONTENT="Upper">`)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Upper", v)
	})

	t.Run("tolerates whitespace around equals and self-closing tags", func(t *testing.T) {
		t.Parallel()

		src := parse(t, "<meta\n  name = \"twitter:image\"\n  content = \"pic.jpg\" />")

		v, ok := src.Meta(ogp.AttrName, "twitter:image")
		require.True(t, ok)
		assert.Equal(t, "pic.jpg", v)
	})

	t.Run("distinguishes property from name", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta name="og:title" content="By name">`)

		_, ok := src.Meta(ogp.AttrProperty, "og:title")
		assert.False(t, ok)
		v, ok := src.Meta(ogp.AttrName, "og:title")
		require.True(t, ok)
		assert.Equal(t, "By name", v)
	})

	t.Run("returns the first matching tag", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta property="og:image" content="a.png"><meta property="og:image" content="b.png">`)

		v, ok := src.Meta(ogp.AttrProperty, "og:image")
		require.True(t, ok)
		assert.Equal(t, "a.png", v)
	})

	t.Run("skips matching tags without content", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta property="og:title"><meta property="og:title" content="Second">`)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Second", v)
	})

	t.Run("keeps quoted greater-than signs inside values", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta property="og:title" content="Home > Blog">`)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Home > Blog", v)
	})

	t.Run("keeps a less-than sign inside quoted values", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta property="og:title" content="1 < 2"><meta name='description' content='a <= b'>`)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "1 < 2", v)
		v, ok = src.Meta(ogp.AttrName, "description")
		require.True(t, ok)
		assert.Equal(t, "a <= b", v)
	})

	t.Run("strips the self-closing slash from a trailing unquoted value", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta content='Q' property=og:title/><meta name=twitter:title content=T/>`)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Q", v)
		v, ok = src.Meta(ogp.AttrName, "twitter:title")
		require.True(t, ok)
		assert.Equal(t, "T", v)
	})

	t.Run("keeps slashes inside unquoted values", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta property=og:image content=/img/a.png >`)

		v, ok := src.Meta(ogp.AttrProperty, "og:image")
		require.True(t, ok)
		assert.Equal(t, "/img/a.png", v)
	})

	t.Run("skips a tag whose quote runs into the next tag", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta name="description" content="open <p>text</p><meta property="og:title" content="Next">`)

		_, ok := src.Meta(ogp.AttrName, "description")
		assert.False(t, ok)
		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Next", v)
	})

	t.Run("skips tags with a runaway quote", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta name=description content=it's broken><p>text</p><meta property="og:title" content="Next">`)

		_, ok := src.Meta(ogp.AttrName, "description")
		assert.False(t, ok)
		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "Next", v)
	})

	t.Run("keeps the first of repeated attributes", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<meta property="og:title" content="First" content="Second">`)

		v, ok := src.Meta(ogp.AttrProperty, "og:title")
		require.True(t, ok)
		assert.Equal(t, "First", v)
	})

	t.Run("reports absent keys", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<html><body>no metadata</body></html>`)

		_, ok := src.Meta(ogp.AttrProperty, "og:title")
		assert.False(t, ok)
	})
}

func TestParser_Title(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed title text", func(t *testing.T) {
		t.Parallel()

		src := parse(t, "<title lang=\"en\">\n  Fallback Title \n</title>")

		v, ok := src.Title()
		require.True(t, ok)
		assert.Equal(t, "Fallback Title", v)
	})

	t.Run("reports missing title", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<html><head></head></html>`)

		_, ok := src.Title()
		assert.False(t, ok)
	})

	t.Run("treats blank title as missing", func(t *testing.T) {
		t.Parallel()

		src := parse(t, `<title>   </title>`)

		_, ok := src.Title()
		assert.False(t, ok)
	})
}
