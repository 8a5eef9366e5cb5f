package mock

import "github.com/fwojciec/articlemd"

var _ articlemd.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of articlemd.Classifier.
type Classifier struct {
	ScoreFn func(blocks []articlemd.Block) ([]float64, error)
}

func (c *Classifier) Score(blocks []articlemd.Block) ([]float64, error) {
	return c.ScoreFn(blocks)
}

var _ articlemd.Linearizer = (*Linearizer)(nil)

// Linearizer is a mock implementation of articlemd.Linearizer.
type Linearizer struct {
	LinearizeFn func(html string, baseURL string) ([]articlemd.Block, error)
}

func (l *Linearizer) Linearize(html string, baseURL string) ([]articlemd.Block, error) {
	return l.LinearizeFn(html, baseURL)
}
