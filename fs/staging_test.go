package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Staged Batch Output
// A batch run replaces its output directory only when it commits.

func TestStagedWriter_WritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a staged writer targeting a directory
	base := t.TempDir()
	w := fs.NewStagedWriter(base, "output")

	// When I write a document
	err := w.WriteDocument(context.Background(), &articlemd.ExtractedDocument{
		URL:     "https://example.com/news/story",
		Title:   "Story",
		Content: "Body.",
	})

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory
	_, err = os.Stat(filepath.Join(base, "output.tmp", "news", "story.md"))
	require.NoError(t, err)

	// And the final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "output"))
	assert.True(t, os.IsNotExist(err))
}

func TestStagedWriter_CommitReplacesOutput(t *testing.T) {
	t.Parallel()

	// Given a previous run left a stale file in the output directory
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "output"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "output", "stale.md"), []byte("old"), 0644))

	// And a new document is staged
	w := fs.NewStagedWriter(base, "output")
	require.NoError(t, w.WriteDocument(context.Background(), &articlemd.ExtractedDocument{
		URL:     "https://example.com/a",
		Title:   "A",
		Content: "Body.",
	}))

	// When I commit
	err := w.Commit()

	// Then the new document is in the output directory
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "output", "a.md"))
	require.NoError(t, err)

	// And the stale file is gone
	_, err = os.Stat(filepath.Join(base, "output", "stale.md"))
	assert.True(t, os.IsNotExist(err))

	// And the temp directory is gone
	_, err = os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestStagedWriter_CommitWithoutDocuments(t *testing.T) {
	t.Parallel()

	w := fs.NewStagedWriter(t.TempDir(), "output")

	err := w.Commit()

	require.Error(t, err)
	assert.Equal(t, articlemd.ENOTFOUND, articlemd.ErrorCode(err))
}

func TestStagedWriter_AbortCleansUp(t *testing.T) {
	t.Parallel()

	// Given staged documents
	base := t.TempDir()
	w := fs.NewStagedWriter(base, "output")
	require.NoError(t, w.WriteDocument(context.Background(), &articlemd.ExtractedDocument{
		URL:     "https://example.com/a",
		Content: "Body.",
	}))

	// When I abort
	err := w.Abort()

	// Then the temp directory is removed
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err))

	// And the final directory was never created
	_, err = os.Stat(filepath.Join(base, "output"))
	assert.True(t, os.IsNotExist(err))
}
