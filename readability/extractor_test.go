package readability_test

import (
	"testing"

	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head><title>Page Title</title><meta name="author" content="Jane Doe"></head>
<body><article><p>Red foxes grow a thicker coat as the days shorten and the first snow arrives in the valley.</p></article></body>
</html>`

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
}

func TestExtractor_ExtractsTitleAndContent(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	result, err := ext.Extract(page)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
	assert.Contains(t, result.ContentHTML, "thicker coat")
}

func TestExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads title and byline", func(t *testing.T) {
		t.Parallel()

		meta, err := readability.NewExtractor().ExtractMetadata(page)

		require.NoError(t, err)
		assert.Equal(t, "Page Title", meta.Title)
		assert.Equal(t, "Jane Doe", meta.Author)
		assert.Empty(t, meta.Date)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().ExtractMetadata("")

		assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
	})
}
