package articlemd

import "context"

// ExtractedDocument is the result of extracting one article page.
// Title, Author and Date may be empty.
type ExtractedDocument struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Date    string `json:"date"` // YYYY-MM-DD
	Content string `json:"content"`
}

// ArticleExtractor turns a raw HTML page into an ExtractedDocument.
type ArticleExtractor interface {
	// ExtractArticle extracts the article from rawHTML.
	// Relative URLs in the page are resolved against baseURL.
	// Returns exactly one error on failure and no partial document.
	ExtractArticle(rawHTML string, baseURL string) (*ExtractedDocument, error)
}

// DocumentWriter writes extracted documents to storage.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *ExtractedDocument) error
}
