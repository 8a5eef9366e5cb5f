// Package pipeline wires the extraction stages together: linearize the page
// into blocks, score each block, keep the main content and render it with
// the page metadata.
package pipeline

import (
	"strings"

	"github.com/fwojciec/articlemd"
)

// Ensure Pipeline implements articlemd.ArticleExtractor at compile time.
var _ articlemd.ArticleExtractor = (*Pipeline)(nil)

// Pipeline is the classifier-driven article extractor.
type Pipeline struct {
	Linearizer articlemd.Linearizer
	Classifier articlemd.Classifier

	// Metadata reads title, author and date from the unmodified page.
	// Optional; without it the document carries no metadata.
	Metadata articlemd.MetadataExtractor

	// Narrower optionally reduces the page to its likely content region
	// before linearization. A failing or empty narrowing falls back to the
	// full page.
	Narrower articlemd.Extractor

	Policy articlemd.SelectPolicy
}

// New returns a Pipeline using the default selection policy.
func New(linearizer articlemd.Linearizer, classifier articlemd.Classifier, metadata articlemd.MetadataExtractor) *Pipeline {
	return &Pipeline{
		Linearizer: linearizer,
		Classifier: classifier,
		Metadata:   metadata,
		Policy:     articlemd.DefaultSelectPolicy(),
	}
}

// ExtractArticle implements articlemd.ArticleExtractor.
// Returns ENOMODEL without a classifier, EPARSE for unparseable input and
// passes classifier errors through unchanged.
func (p *Pipeline) ExtractArticle(rawHTML string, baseURL string) (*articlemd.ExtractedDocument, error) {
	if p.Classifier == nil {
		return nil, articlemd.Errorf(articlemd.ENOMODEL, "classifier has no trained model; train or load one first")
	}
	if strings.TrimSpace(rawHTML) == "" {
		return nil, articlemd.Errorf(articlemd.EPARSE, "empty HTML input")
	}

	blocks, err := p.Linearizer.Linearize(p.narrow(rawHTML), baseURL)
	if err != nil {
		return nil, err
	}

	probs, err := p.Classifier.Score(blocks)
	if err != nil {
		return nil, err
	}

	kept, err := articlemd.Select(blocks, probs, p.Policy)
	if err != nil {
		return nil, err
	}

	doc := &articlemd.ExtractedDocument{
		URL:     baseURL,
		Content: articlemd.JoinBlocks(kept),
	}
	applyMetadata(doc, p.Metadata, rawHTML)
	return doc, nil
}

func (p *Pipeline) narrow(rawHTML string) string {
	if p.Narrower == nil {
		return rawHTML
	}
	result, err := p.Narrower.Extract(rawHTML)
	if err != nil || result == nil || strings.TrimSpace(result.ContentHTML) == "" {
		return rawHTML
	}
	return result.ContentHTML
}

// applyMetadata fills doc from extractor. Metadata never fails extraction:
// errors leave the fields empty.
func applyMetadata(doc *articlemd.ExtractedDocument, extractor articlemd.MetadataExtractor, rawHTML string) {
	if extractor == nil {
		return
	}
	meta, err := extractor.ExtractMetadata(rawHTML)
	if err != nil || meta == nil {
		return
	}
	doc.Title = meta.Title
	doc.Author = meta.Author
	doc.Date = meta.Date
}
