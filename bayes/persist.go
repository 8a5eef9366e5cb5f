package bayes

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fwojciec/articlemd"
)

// Artifact identification. Decode rejects anything else.
const (
	FormatName    = "articlemd-bayes"
	FormatVersion = 1
)

type artifact struct {
	Format         string             `json:"format"`
	Version        int                `json:"version"`
	Alpha          float64            `json:"alpha"`
	VocabularySize int                `json:"vocabularySize"`
	Classes        []articlemd.Label  `json:"classes"`
	Vectorizer     vectorizerArtifact `json:"vectorizer"`
	Classifier     classifierArtifact `json:"classifier"`
}

type vectorizerArtifact struct {
	Terms []string  `json:"terms"`
	IDF   []float64 `json:"idf"`
}

type classifierArtifact struct {
	ClassLogPrior  []float64   `json:"classLogPrior"`
	FeatureLogProb [][]float64 `json:"featureLogProb"`
}

// Encode writes m to w as a single JSON document holding both the
// vectorizer and the classifier.
func Encode(w io.Writer, m *Model) error {
	if m == nil || m.vec == nil {
		return articlemd.Errorf(articlemd.ENOMODEL, "no model to encode")
	}

	a := artifact{
		Format:         FormatName,
		Version:        FormatVersion,
		Alpha:          m.alpha,
		VocabularySize: m.vec.size(),
		Classes:        classLabels[:],
		Vectorizer: vectorizerArtifact{
			Terms: m.vec.terms,
			IDF:   m.vec.idf,
		},
		Classifier: classifierArtifact{
			ClassLogPrior:  m.classLogPrior[:],
			FeatureLogProb: [][]float64{m.featureLogProb[classMain], m.featureLogProb[classNotMain]},
		},
	}

	if err := json.NewEncoder(w).Encode(&a); err != nil {
		return articlemd.Errorf(articlemd.EMODELIO, "encode model: %v", err)
	}
	return nil
}

// Decode reads a model written by Encode.
// Returns EMODELIO if the document is malformed or its parts disagree.
func Decode(r io.Reader) (*Model, error) {
	var a artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, articlemd.Errorf(articlemd.EMODELIO, "decode model: %v", err)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	m := &Model{
		vec:   newVectorizer(a.Vectorizer.Terms, a.Vectorizer.IDF),
		alpha: a.Alpha,
	}
	copy(m.classLogPrior[:], a.Classifier.ClassLogPrior)
	m.featureLogProb[classMain] = a.Classifier.FeatureLogProb[classMain]
	m.featureLogProb[classNotMain] = a.Classifier.FeatureLogProb[classNotMain]
	return m, nil
}

func (a *artifact) validate() error {
	if a.Format != FormatName {
		return articlemd.Errorf(articlemd.EMODELIO, "unknown model format %q", a.Format)
	}
	if a.Version != FormatVersion {
		return articlemd.Errorf(articlemd.EMODELIO, "unsupported model version %d", a.Version)
	}
	if a.Alpha <= 0 || math.IsNaN(a.Alpha) || math.IsInf(a.Alpha, 0) {
		return articlemd.Errorf(articlemd.EMODELIO, "invalid smoothing alpha %v", a.Alpha)
	}
	if len(a.Classes) != numClasses {
		return articlemd.Errorf(articlemd.EMODELIO, "expected %d classes, got %d", numClasses, len(a.Classes))
	}
	for i, label := range a.Classes {
		if label != classLabels[i] {
			return articlemd.Errorf(articlemd.EMODELIO, "unexpected class %q at position %d", label, i)
		}
	}

	v := a.VocabularySize
	if v <= 0 || len(a.Vectorizer.Terms) != v || len(a.Vectorizer.IDF) != v {
		return articlemd.Errorf(articlemd.EMODELIO, "vectorizer does not match vocabulary size %d", v)
	}
	seen := make(map[string]struct{}, v)
	for _, term := range a.Vectorizer.Terms {
		if term == "" {
			return articlemd.Errorf(articlemd.EMODELIO, "empty vocabulary term")
		}
		if _, ok := seen[term]; ok {
			return articlemd.Errorf(articlemd.EMODELIO, "duplicate vocabulary term %q", term)
		}
		seen[term] = struct{}{}
	}
	if !finite(a.Vectorizer.IDF) {
		return articlemd.Errorf(articlemd.EMODELIO, "vectorizer weights are not finite")
	}

	if len(a.Classifier.ClassLogPrior) != numClasses || !finite(a.Classifier.ClassLogPrior) {
		return articlemd.Errorf(articlemd.EMODELIO, "invalid class priors")
	}
	if len(a.Classifier.FeatureLogProb) != numClasses {
		return articlemd.Errorf(articlemd.EMODELIO, "invalid feature probabilities")
	}
	for _, row := range a.Classifier.FeatureLogProb {
		if len(row) != v {
			return articlemd.Errorf(articlemd.EMODELIO, "classifier has %d features, vectorizer has %d", len(row), v)
		}
		if !finite(row) {
			return articlemd.Errorf(articlemd.EMODELIO, "feature probabilities are not finite")
		}
	}
	return nil
}

func finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Save writes m to path. The file is replaced atomically so a failed save
// never leaves a partial artifact behind.
func Save(path string, m *Model) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return articlemd.Errorf(articlemd.EMODELIO, "create model directory: %v", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return articlemd.Errorf(articlemd.EMODELIO, "create model file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, m); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return articlemd.Errorf(articlemd.EMODELIO, "write model file: %v", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return articlemd.Errorf(articlemd.EMODELIO, "replace model file: %v", err)
	}
	return nil
}

// Load reads a model from path.
// Returns EMODELIO if the file is missing or cannot be decoded.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, articlemd.Errorf(articlemd.EMODELIO, "model file %s does not exist", path)
	} else if err != nil {
		return nil, articlemd.Errorf(articlemd.EMODELIO, "open model file: %v", err)
	}
	defer f.Close()

	return Decode(f)
}
