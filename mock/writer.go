package mock

import (
	"context"

	"github.com/fwojciec/articlemd"
)

var _ articlemd.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of articlemd.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *articlemd.ExtractedDocument) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *articlemd.ExtractedDocument) error {
	return w.WriteDocumentFn(ctx, doc)
}
