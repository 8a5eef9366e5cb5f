package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/articlemd/cmd/articlemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trainingData = `[
  {"text": "A brown fox wandered through the forest looking for food before the winter snow arrived.", "label": "main_content"},
  {"text": "The lazy dog slept by the fire while the quick fox jumped over the fence again.", "label": "main_content"},
  {"text": "Foxes are clever animals that live in forests, fields and river valleys across the country.", "label": "main_content"},
  {"text": "Short ad text", "label": "not_main_content"},
  {"text": "Sponsored ad text", "label": "not_main_content"},
  {"text": "Click this short ad", "label": "not_main_content"},
  {"text": "Advertisement text banner", "label": "not_main_content"}
]`

const articlePage = `<html><head>
<title>Foxes</title>
<meta name="author" content="Jane Doe">
<meta name="pubdate" content="March 3, 2023">
</head><body>
<nav>Home | About</nav>
<article><h1>Foxes</h1><p>Short ad text</p><img src="/fox.png" alt="fox"><p>` +
	`The quick brown fox jumps over the lazy dog again. The quick brown fox jumps over the lazy dog again. The quick brown fox jumps over the lazy dog again.` +
	`</p></article>
<footer>Copyright</footer>
</body></html>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := main.NewMain().Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout, "articlemd")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "--help")

		require.NoError(t, err)
		assert.Contains(t, stdout, "extract")
		assert.Contains(t, stdout, "train")
		assert.Contains(t, stdout, "corpus")
	})

	t.Run("rejects invalid threshold", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		_, _, err := run(t, "--model", filepath.Join(dir, "model.json"), "--threshold", "1.5", "extract", "page.html")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "threshold")
	})

	t.Run("reports missing model", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := writeFile(t, dir, "page.html", articlePage)

		_, _, err := run(t, "--model", filepath.Join(dir, "missing.json"), "extract", page)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "articlemd train")
	})
}

// Story: Train and Extract
// A user builds a corpus, trains a model from it and extracts an article.

func TestMain_TrainAndExtract(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := filepath.Join(dir, "corpus.db")
	model := filepath.Join(dir, "model.json")
	data := writeFile(t, dir, "training_data.json", trainingData)
	page := writeFile(t, dir, "page.html", articlePage)

	// Given a corpus imported from a training file
	stdout, _, err := run(t, "--db", db, "corpus", "import", data)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 7 of 7 examples")

	// And importing it twice adds nothing
	stdout, _, err = run(t, "--db", db, "corpus", "import", data)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 0 of 7 examples")

	// When I train from the corpus
	stdout, _, err = run(t, "--db", db, "--model", model, "train", "--from-corpus")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Trained on 7 examples (3 main content, 4 not main content)")
	_, err = os.Stat(model)
	require.NoError(t, err)

	// And extract a saved page
	stdout, _, err = run(t, "--model", model, "extract", page, "--base-url", "https://ex.com/foxes")

	// Then the article is printed as Markdown with its metadata
	require.NoError(t, err)
	assert.Contains(t, stdout, "**Author:** Jane Doe")
	assert.Contains(t, stdout, "**Date:** 2023-03-03")
	assert.Contains(t, stdout, "![fox](https://ex.com/fox.png)")
	assert.Contains(t, stdout, "The quick brown fox jumps over the lazy dog again.")

	// And boilerplate is left out
	assert.NotContains(t, stdout, "Short ad text")
	assert.NotContains(t, stdout, "Home | About")
	assert.NotContains(t, stdout, "Copyright")
}

func TestMain_TrainFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	model := filepath.Join(dir, "models", "model.json")
	data := writeFile(t, dir, "training_data.json", trainingData)

	stdout, _, err := run(t, "--model", model, "train", data, "--alpha", "0.5")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved model to "+model)
	_, err = os.Stat(model)
	require.NoError(t, err)
}
