package pipeline

import (
	"strings"

	"github.com/fwojciec/articlemd"
)

// Comparison reports how two extraction engines differ on one page.
type Comparison struct {
	Primary  *articlemd.ExtractedDocument
	Baseline *articlemd.ExtractedDocument

	PrimaryWords  int
	BaselineWords int

	// SharedLines counts distinct non-empty content lines produced by both
	// engines. Overlap is SharedLines divided by the distinct lines produced
	// by either engine, or 0 when both are empty.
	SharedLines int
	Overlap     float64
}

// Compare runs both extractors on the same page.
// An error from either engine is returned as is.
func Compare(rawHTML, baseURL string, primary, baseline articlemd.ArticleExtractor) (*Comparison, error) {
	a, err := primary.ExtractArticle(rawHTML, baseURL)
	if err != nil {
		return nil, err
	}
	b, err := baseline.ExtractArticle(rawHTML, baseURL)
	if err != nil {
		return nil, err
	}

	linesA := contentLines(a.Content)
	linesB := contentLines(b.Content)

	var shared int
	for line := range linesA {
		if _, ok := linesB[line]; ok {
			shared++
		}
	}

	c := &Comparison{
		Primary:       a,
		Baseline:      b,
		PrimaryWords:  articlemd.WordCount(a.Content),
		BaselineWords: articlemd.WordCount(b.Content),
		SharedLines:   shared,
	}
	if union := len(linesA) + len(linesB) - shared; union > 0 {
		c.Overlap = float64(shared) / float64(union)
	}
	return c, nil
}

func contentLines(s string) map[string]struct{} {
	lines := make(map[string]struct{})
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines[line] = struct{}{}
		}
	}
	return lines
}
