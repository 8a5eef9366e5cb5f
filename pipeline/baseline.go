package pipeline

import (
	"strings"

	"github.com/fwojciec/articlemd"
)

// Ensure Baseline implements articlemd.ArticleExtractor at compile time.
var _ articlemd.ArticleExtractor = (*Baseline)(nil)

// Baseline is a classifier-free extractor: a heuristic content extractor
// followed by an HTML to Markdown conversion. It serves as the reference
// the trained pipeline is compared against.
type Baseline struct {
	Extractor articlemd.Extractor
	Converter articlemd.Converter
	Metadata  articlemd.MetadataExtractor
}

// ExtractArticle implements articlemd.ArticleExtractor.
func (b *Baseline) ExtractArticle(rawHTML string, baseURL string) (*articlemd.ExtractedDocument, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, articlemd.Errorf(articlemd.EPARSE, "empty HTML input")
	}

	result, err := b.Extractor.Extract(rawHTML)
	if err != nil {
		return nil, err
	}

	var content string
	if strings.TrimSpace(result.ContentHTML) != "" {
		content, err = b.Converter.Convert(result.ContentHTML, baseURL)
		if err != nil {
			return nil, err
		}
	}

	doc := &articlemd.ExtractedDocument{
		URL:     baseURL,
		Title:   result.Title,
		Content: content,
	}
	applyMetadata(doc, b.Metadata, rawHTML)
	if doc.Title == "" {
		doc.Title = result.Title
	}
	return doc, nil
}
