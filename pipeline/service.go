package pipeline

import (
	"context"

	"github.com/fwojciec/articlemd"
)

// Service fetches pages and extracts their articles.
type Service struct {
	Fetcher   articlemd.Fetcher
	Extractor articlemd.ArticleExtractor
}

// ExtractURL fetches url and extracts its article. Relative URLs are
// resolved against the final URL after redirects.
func (s *Service) ExtractURL(ctx context.Context, url string) (*articlemd.ExtractedDocument, error) {
	page, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	baseURL := page.URL
	if baseURL == "" {
		baseURL = url
	}
	return s.Extractor.ExtractArticle(page.HTML, baseURL)
}
