package articlemd

// ExtractResult holds the content narrowed out of an HTML page by a
// third-party extractor.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor narrows a page down to its main content HTML.
// The pipeline uses it as an optional pre-pass before linearization,
// and the baseline engine uses it in place of the classifier.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
