// Package readability adapts go-readability as a content narrower and a
// metadata source.
package readability

import (
	"strings"

	"github.com/fwojciec/articlemd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements articlemd.Extractor and
// articlemd.MetadataExtractor at compile time.
var (
	_ articlemd.Extractor         = (*Extractor)(nil)
	_ articlemd.MetadataExtractor = (*Extractor)(nil)
)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) parse(rawHTML string) (readability.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return readability.Article{}, articlemd.Errorf(articlemd.EINVALID, "empty HTML input")
	}
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return readability.Article{}, articlemd.Errorf(articlemd.EPARSE, "readability: %v", err)
	}
	return article, nil
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*articlemd.ExtractResult, error) {
	article, err := e.parse(rawHTML)
	if err != nil {
		return nil, err
	}

	return &articlemd.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

// ExtractMetadata implements articlemd.MetadataExtractor. Readability
// exposes no reliable publication date, so Date is always empty.
func (e *Extractor) ExtractMetadata(rawHTML string) (*articlemd.Metadata, error) {
	article, err := e.parse(rawHTML)
	if err != nil {
		return nil, err
	}

	return &articlemd.Metadata{
		Title:  strings.TrimSpace(article.Title),
		Author: strings.TrimSpace(article.Byline),
	}, nil
}
