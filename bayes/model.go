// Package bayes implements the block classifier: a TF-IDF vectorizer paired
// with a multinomial Naive Bayes model, trained from labeled examples and
// persisted as a single JSON artifact.
package bayes

import (
	"math"

	"github.com/fwojciec/articlemd"
)

// DefaultAlpha is the default additive smoothing strength. Lower values
// sharpen the decision boundary, higher values flatten it.
const DefaultAlpha = 1.0

// Class indexes. Parameters are always stored main content first.
const (
	classMain = iota
	classNotMain
	numClasses
)

var classLabels = [numClasses]articlemd.Label{articlemd.LabelMainContent, articlemd.LabelNotMainContent}

// Option configures training.
type Option func(*options)

type options struct {
	alpha float64
}

// WithAlpha sets the additive smoothing strength. Must be positive.
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// Ensure Model implements articlemd.Classifier at compile time.
var _ articlemd.Classifier = (*Model)(nil)

// Model is a trained vectorizer and classifier pair. The classifier
// parameters always match the vectorizer's vocabulary. A Model is never
// modified after Fit or Load and is safe for concurrent use.
type Model struct {
	vec            *vectorizer
	alpha          float64
	classLogPrior  [numClasses]float64
	featureLogProb [numClasses][]float64
}

// Fit trains a model from labeled examples.
// Returns ETRAINING if examples are empty, miss one of the labels,
// carry an unknown label or contain no usable terms.
func Fit(examples []*articlemd.LabeledExample, opts ...Option) (*Model, error) {
	o := options{alpha: DefaultAlpha}
	for _, opt := range opts {
		opt(&o)
	}
	if o.alpha <= 0 || math.IsInf(o.alpha, 0) || math.IsNaN(o.alpha) {
		return nil, articlemd.Errorf(articlemd.EINVALID, "smoothing alpha must be positive, got %v", o.alpha)
	}

	if len(examples) == 0 {
		return nil, articlemd.Errorf(articlemd.ETRAINING, "no training examples")
	}

	var classCount [numClasses]int
	classes := make([]int, len(examples))
	docs := make([]string, len(examples))
	for i, ex := range examples {
		switch ex.Label {
		case articlemd.LabelMainContent:
			classes[i] = classMain
		case articlemd.LabelNotMainContent:
			classes[i] = classNotMain
		default:
			return nil, articlemd.Errorf(articlemd.ETRAINING, "example %d has unknown label %q", i, ex.Label)
		}
		classCount[classes[i]]++
		docs[i] = ex.Text
	}
	if classCount[classMain] == 0 || classCount[classNotMain] == 0 {
		return nil, articlemd.Errorf(articlemd.ETRAINING, "training examples must include both %q and %q labels",
			articlemd.LabelMainContent, articlemd.LabelNotMainContent)
	}

	vec := fitVectorizer(docs)
	if vec.size() == 0 {
		return nil, articlemd.Errorf(articlemd.ETRAINING, "training examples contain no usable terms")
	}

	var featureCount [numClasses][]float64
	for c := range featureCount {
		featureCount[c] = make([]float64, vec.size())
	}
	for i, doc := range docs {
		for _, f := range vec.transform(doc) {
			featureCount[classes[i]][f.Index] += f.Weight
		}
	}

	m := &Model{vec: vec, alpha: o.alpha}
	n := float64(len(examples))
	v := float64(vec.size())
	for c := range featureCount {
		m.classLogPrior[c] = math.Log(float64(classCount[c]) / n)

		var total float64
		for _, fc := range featureCount[c] {
			total += fc
		}
		denom := math.Log(total + o.alpha*v)

		m.featureLogProb[c] = make([]float64, vec.size())
		for j, fc := range featureCount[c] {
			m.featureLogProb[c][j] = math.Log(fc+o.alpha) - denom
		}
	}
	return m, nil
}

// Alpha returns the smoothing strength the model was trained with.
func (m *Model) Alpha() float64 {
	return m.alpha
}

// VocabularySize returns the number of terms known to the model.
func (m *Model) VocabularySize() int {
	return m.vec.size()
}

// Probability returns P(main content) for text.
// Text made only of unknown terms scores the class prior.
func (m *Model) Probability(text string) float64 {
	x := m.vec.transform(text)

	var jll [numClasses]float64
	for c := range jll {
		jll[c] = m.classLogPrior[c]
		for _, f := range x {
			jll[c] += f.Weight * m.featureLogProb[c][f.Index]
		}
	}

	top := math.Max(jll[classMain], jll[classNotMain])
	pMain := math.Exp(jll[classMain] - top)
	pNot := math.Exp(jll[classNotMain] - top)
	return pMain / (pMain + pNot)
}

// Score implements articlemd.Classifier. Each block is scored on its raw
// visible text. Returns ENOMODEL when called on a nil model.
func (m *Model) Score(blocks []articlemd.Block) ([]float64, error) {
	if m == nil || m.vec == nil {
		return nil, articlemd.Errorf(articlemd.ENOMODEL, "classifier has no trained model; train or load one first")
	}

	probs := make([]float64, len(blocks))
	for i, b := range blocks {
		probs[i] = m.Probability(b.Raw)
	}
	return probs, nil
}
