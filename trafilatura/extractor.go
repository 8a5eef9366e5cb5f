// Package trafilatura adapts go-trafilatura as a content narrower, a
// metadata source and the text engine behind the baseline extractor.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/articlemd"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements articlemd.Extractor and
// articlemd.MetadataExtractor at compile time.
var (
	_ articlemd.Extractor         = (*Extractor)(nil)
	_ articlemd.MetadataExtractor = (*Extractor)(nil)
)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor with fallback extraction enabled.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeImages:  true,
		},
	}
}

func (e *Extractor) extract(rawHTML string) (*trafilatura.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, articlemd.Errorf(articlemd.EPARSE, "empty HTML input")
	}
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, articlemd.Errorf(articlemd.EPARSE, "trafilatura: %v", err)
	}
	return result, nil
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*articlemd.ExtractResult, error) {
	result, err := e.extract(rawHTML)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &articlemd.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// ExtractMetadata implements articlemd.MetadataExtractor using the
// metadata trafilatura reads from meta tags and JSON-LD.
func (e *Extractor) ExtractMetadata(rawHTML string) (*articlemd.Metadata, error) {
	result, err := e.extract(rawHTML)
	if err != nil {
		return nil, err
	}

	meta := &articlemd.Metadata{
		Title:  strings.TrimSpace(result.Metadata.Title),
		Author: strings.TrimSpace(result.Metadata.Author),
	}
	if !result.Metadata.Date.IsZero() {
		meta.Date = result.Metadata.Date.Format("2006-01-02")
	}
	return meta, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
