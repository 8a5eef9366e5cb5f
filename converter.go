package articlemd

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Relative links and images are made absolute against baseURL.
	Convert(html string, baseURL string) (string, error)
}
