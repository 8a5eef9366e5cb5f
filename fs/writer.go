// Package fs provides file-based storage for extracted articles and
// training data.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/articlemd"
)

// URLToPath converts an article URL to a relative file path.
// Example: https://example.com/blog/2024/post → blog/2024/post.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", articlemd.Errorf(articlemd.EINVALID, "invalid document URL %q: %v", rawURL, err)
	}

	path := u.Path

	// Root or empty path → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return "", articlemd.Errorf(articlemd.EINVALID, "path traversal in document URL %q", rawURL)
		}
	}

	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, ".html")
	path = strings.TrimSuffix(path, ".htm")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// Ensure Writer implements articlemd.DocumentWriter at compile time.
var _ articlemd.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument renders doc as markdown and writes it under the base
// directory at the path derived from its URL. Existing files are replaced
// atomically.
func (w *Writer) WriteDocument(ctx context.Context, doc *articlemd.ExtractedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil || doc.URL == "" {
		return articlemd.Errorf(articlemd.EINVALID, "document URL required")
	}

	relPath, err := URLToPath(doc.URL)
	if err != nil {
		return err
	}

	return writeFileAtomic(filepath.Join(w.baseDir, relPath), []byte(articlemd.FormatMarkdown(doc)))
}

// writeFileAtomic writes data to a temp file next to path, then renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
