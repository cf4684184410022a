package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/mock"
	"github.com/fwojciec/readlog/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Slow Reading</title>
<meta name="author" content="Jane Doe">
</head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Slow Reading</h1>
<p>Reading slowly is a practice that rewards patience. When we take the time to dwell on a sentence,
we notice its rhythm, its choices, and the small surprises a careful writer leaves behind.</p>
<p>This paragraph continues the argument with more substantive content, so that the article is long
enough for the readability scoring to treat it as the main body of the page rather than as noise.</p>
<p>A third paragraph closes the piece, returning to the idea that attention is the scarcest resource
a reader has, and that spending it deliberately is its own reward.</p>
</article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("keeps article content and drops navigation", func(t *testing.T) {
		t.Parallel()

		text, err := readability.NewExtractor().ExtractText(articleHTML)

		require.NoError(t, err)
		assert.Contains(t, text, "Reading slowly is a practice")
		assert.Contains(t, text, "attention is the scarcest resource")
		assert.NotContains(t, text, "Home Nav Link")
		assert.NotContains(t, text, "Footer copyright text")
		assert.Equal(t, strings.Join(strings.Fields(text), " "), text)
	})

	t.Run("rejects empty input without fallback", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().ExtractText("")

		require.Error(t, err)
		assert.Equal(t, readlog.EINVALID, readlog.ErrorCode(err))
	})

	t.Run("uses fallback for empty input", func(t *testing.T) {
		t.Parallel()

		ext := &readability.Extractor{
			Fallback: &mock.TextExtractor{
				ExtractTextFn: func(html string) (string, error) {
					return "fallback text", nil
				},
			},
		}

		text, err := ext.ExtractText("   ")

		require.NoError(t, err)
		assert.Equal(t, "fallback text", text)
	})
}

func TestExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads title", func(t *testing.T) {
		t.Parallel()

		meta, err := readability.NewExtractor().ExtractMetadata(articleHTML)

		require.NoError(t, err)
		assert.Equal(t, "Slow Reading", meta.Title)
	})

	t.Run("defaults to Untitled", func(t *testing.T) {
		t.Parallel()

		meta, err := readability.NewExtractor().ExtractMetadata("")

		require.NoError(t, err)
		assert.Equal(t, readlog.DefaultTitle, meta.Title)
		assert.Nil(t, meta.Author)
	})

	t.Run("fills gaps from fallback", func(t *testing.T) {
		t.Parallel()

		author := "Fallback Author"
		ext := &readability.Extractor{
			FallbackMetadata: &mock.MetadataExtractor{
				ExtractMetadataFn: func(html string) (*readlog.Metadata, error) {
					return &readlog.Metadata{Title: "Fallback Title", Author: &author}, nil
				},
			},
		}

		meta, err := ext.ExtractMetadata("")

		require.NoError(t, err)
		assert.Equal(t, "Fallback Title", meta.Title)
		require.NotNil(t, meta.Author)
		assert.Equal(t, "Fallback Author", *meta.Author)
	})
}
