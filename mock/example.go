package mock

import (
	"context"

	"github.com/fwojciec/articlemd"
)

var _ articlemd.ExampleService = (*ExampleService)(nil)

// ExampleService is a mock implementation of articlemd.ExampleService.
type ExampleService struct {
	CreateExampleFn  func(ctx context.Context, ex *articlemd.LabeledExample) error
	ImportExamplesFn func(ctx context.Context, examples []*articlemd.LabeledExample) (int, error)
	FindExamplesFn   func(ctx context.Context, filter articlemd.ExampleFilter) ([]*articlemd.LabeledExample, error)
	CountExamplesFn  func(ctx context.Context) (map[articlemd.Label]int, error)
	DeleteExampleFn  func(ctx context.Context, id string) error
}

func (s *ExampleService) CreateExample(ctx context.Context, ex *articlemd.LabeledExample) error {
	return s.CreateExampleFn(ctx, ex)
}

func (s *ExampleService) ImportExamples(ctx context.Context, examples []*articlemd.LabeledExample) (int, error) {
	return s.ImportExamplesFn(ctx, examples)
}

func (s *ExampleService) FindExamples(ctx context.Context, filter articlemd.ExampleFilter) ([]*articlemd.LabeledExample, error) {
	return s.FindExamplesFn(ctx, filter)
}

func (s *ExampleService) CountExamples(ctx context.Context) (map[articlemd.Label]int, error) {
	return s.CountExamplesFn(ctx)
}

func (s *ExampleService) DeleteExample(ctx context.Context, id string) error {
	return s.DeleteExampleFn(ctx, id)
}
