package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/articlemd"
)

// Ensure StagedWriter implements articlemd.DocumentWriter at compile time.
var _ articlemd.DocumentWriter = (*StagedWriter)(nil)

// StagedWriter writes documents with all-or-nothing directory semantics.
// Documents are written to baseDir/name.tmp and moved to baseDir/name on
// Commit, replacing any previous output.
type StagedWriter struct {
	baseDir string
	name    string
	w       *Writer
}

// NewStagedWriter creates a new StagedWriter.
// baseDir is the parent directory, name is the output directory name.
func NewStagedWriter(baseDir, name string) *StagedWriter {
	s := &StagedWriter{
		baseDir: baseDir,
		name:    name,
	}
	s.w = NewWriter(s.tempDir())
	return s
}

func (s *StagedWriter) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *StagedWriter) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteDocument writes doc into the staging directory.
func (s *StagedWriter) WriteDocument(ctx context.Context, doc *articlemd.ExtractedDocument) error {
	return s.w.WriteDocument(ctx, doc)
}

// Commit replaces the output directory with the staged documents.
func (s *StagedWriter) Commit() error {
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return articlemd.Errorf(articlemd.ENOTFOUND, "no staged documents to commit")
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staged documents.
func (s *StagedWriter) Abort() error {
	return os.RemoveAll(s.tempDir())
}
