// Package goquery implements the HTML side of article extraction on top of
// goquery and golang.org/x/net/html: parsing, boilerplate pruning, content
// root selection, structural linearization and heuristic metadata.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/articlemd"
	"golang.org/x/net/html"
)

// PrunedSelector matches the subtrees removed before linearization.
const PrunedSelector = "script, style, nav, header, footer"

// contentRootSelectors are tried in order to locate the article container.
var contentRootSelectors = []string{"article", "main", ".content", "body"}

// Parse parses raw HTML into a goquery document.
// Returns EPARSE for empty input or unreadable markup.
func Parse(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, articlemd.Errorf(articlemd.EPARSE, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, articlemd.Errorf(articlemd.EPARSE, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// Prune removes script, style, nav, header and footer subtrees from doc.
func Prune(doc *goquery.Document) {
	doc.Find(PrunedSelector).Remove()
}

// ContentRoot returns the node most likely to contain the article:
// the first article, main, .content or body element, in that order of
// preference, or the document node itself.
func ContentRoot(doc *goquery.Document) *html.Node {
	for _, sel := range contentRootSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s.Get(0)
		}
	}
	if len(doc.Nodes) == 0 {
		return nil
	}
	return doc.Get(0)
}

// Ensure Linearizer implements articlemd.Linearizer at compile time.
var _ articlemd.Linearizer = (*Linearizer)(nil)

// Linearizer parses a page, prunes boilerplate containers and linearizes the
// content root into blocks.
type Linearizer struct{}

// NewLinearizer creates a new Linearizer.
func NewLinearizer() *Linearizer {
	return &Linearizer{}
}

// Linearize implements articlemd.Linearizer.
func (l *Linearizer) Linearize(rawHTML string, baseURL string) ([]articlemd.Block, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}

	Prune(doc)

	return Linearize(ContentRoot(doc), baseURL), nil
}
