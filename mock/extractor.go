package mock

import "github.com/fwojciec/articlemd"

var _ articlemd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of articlemd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*articlemd.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*articlemd.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ articlemd.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of articlemd.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html string, baseURL string) (*articlemd.ExtractedDocument, error)
}

func (e *ArticleExtractor) ExtractArticle(html string, baseURL string) (*articlemd.ExtractedDocument, error) {
	return e.ExtractArticleFn(html, baseURL)
}

var _ articlemd.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of articlemd.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*articlemd.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*articlemd.Metadata, error) {
	return e.ExtractMetadataFn(html)
}
