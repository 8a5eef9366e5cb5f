package articlemd_test

import (
	"testing"

	"github.com/fwojciec/articlemd"
	"github.com/stretchr/testify/assert"
)

func TestFormatMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("formats title, author, date and content", func(t *testing.T) {
		t.Parallel()

		doc := &articlemd.ExtractedDocument{
			Title:   "Getting Started",
			Author:  "Jane Doe",
			Date:    "2023-03-03",
			Content: "Welcome to the article.",
		}

		result := articlemd.FormatMarkdown(doc)

		expected := "# Getting Started\n\n**Author:** Jane Doe\n\n**Date:** 2023-03-03\n\nWelcome to the article."
		assert.Equal(t, expected, result)
	})

	t.Run("omits empty author and date", func(t *testing.T) {
		t.Parallel()

		doc := &articlemd.ExtractedDocument{Title: "Title", Content: "Body."}

		assert.Equal(t, "# Title\n\nBody.", articlemd.FormatMarkdown(doc))
	})

	t.Run("omits only the empty date", func(t *testing.T) {
		t.Parallel()

		doc := &articlemd.ExtractedDocument{Title: "Title", Author: "A", Content: "Body."}

		assert.Equal(t, "# Title\n\n**Author:** A\n\nBody.", articlemd.FormatMarkdown(doc))
	})

	t.Run("uses URL when title is empty", func(t *testing.T) {
		t.Parallel()

		doc := &articlemd.ExtractedDocument{URL: "https://example.com/post", Content: "Body."}

		assert.Equal(t, "# https://example.com/post\n\nBody.", articlemd.FormatMarkdown(doc))
	})

	t.Run("omits heading when title and URL are empty", func(t *testing.T) {
		t.Parallel()

		doc := &articlemd.ExtractedDocument{Content: "Body."}

		assert.Equal(t, "Body.", articlemd.FormatMarkdown(doc))
	})

	t.Run("preserves markdown content", func(t *testing.T) {
		t.Parallel()

		doc := &articlemd.ExtractedDocument{
			Title:   "Markdown Doc",
			Content: "## Heading\n\n- item 1\n- item 2\n\n```go\nfunc main() {}\n```",
		}

		expected := "# Markdown Doc\n\n## Heading\n\n- item 1\n- item 2\n\n```go\nfunc main() {}\n```"
		assert.Equal(t, expected, articlemd.FormatMarkdown(doc))
	})

	t.Run("returns empty string for nil document", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, articlemd.FormatMarkdown(nil))
	})
}
