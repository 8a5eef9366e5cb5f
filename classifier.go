package articlemd

import (
	"context"
	"time"
)

// Label is the training label of a LabeledExample.
type Label string

// Label values.
const (
	LabelMainContent    Label = "main_content"
	LabelNotMainContent Label = "not_main_content"
)

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	return l == LabelMainContent || l == LabelNotMainContent
}

// Classifier scores blocks with the probability that they belong to the
// article body.
type Classifier interface {
	// Score returns one probability in [0,1] per block, aligned by index.
	// Returns ENOMODEL if no trained model backs the classifier.
	Score(blocks []Block) ([]float64, error)
}

// LabeledExample is a piece of text annotated as main content or boilerplate.
type LabeledExample struct {
	ID          string    `json:"id,omitempty"`
	Text        string    `json:"text"`
	Label       Label     `json:"label"`
	Source      string    `json:"source,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// Validate returns an error if the example contains invalid fields.
func (e *LabeledExample) Validate() error {
	if e.Text == "" {
		return Errorf(EINVALID, "example text required")
	}
	if !e.Label.Valid() {
		return Errorf(EINVALID, "example label %q must be %q or %q", e.Label, LabelMainContent, LabelNotMainContent)
	}
	return nil
}

// ExampleService represents a service for managing a labeled training corpus.
type ExampleService interface {
	// CreateExample stores a new example.
	// Returns ECONFLICT if an example with the same text and label exists.
	CreateExample(ctx context.Context, ex *LabeledExample) error

	// ImportExamples stores many examples at once, skipping duplicates.
	// Returns the number of examples added.
	ImportExamples(ctx context.Context, examples []*LabeledExample) (int, error)

	// FindExamples retrieves examples matching the filter.
	FindExamples(ctx context.Context, filter ExampleFilter) ([]*LabeledExample, error)

	// CountExamples returns the number of stored examples per label.
	CountExamples(ctx context.Context) (map[Label]int, error)

	// DeleteExample permanently removes an example.
	// Returns ENOTFOUND if the example does not exist.
	DeleteExample(ctx context.Context, id string) error
}

// ExampleFilter represents a filter for FindExamples.
type ExampleFilter struct {
	Label  *Label  `json:"label"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
