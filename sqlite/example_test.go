package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestExampleService_CreateExample(t *testing.T) {
	t.Parallel()

	t.Run("assigns id hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExampleService(openDB(t))
		ex := &articlemd.LabeledExample{Text: "Red foxes hunt at dawn.", Label: articlemd.LabelMainContent, Source: "manual"}

		err := svc.CreateExample(context.Background(), ex)

		require.NoError(t, err)
		assert.NotEmpty(t, ex.ID)
		assert.Len(t, ex.ContentHash, 16)
		assert.False(t, ex.CreatedAt.IsZero())
	})

	t.Run("rejects invalid example", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExampleService(openDB(t))

		err := svc.CreateExample(context.Background(), &articlemd.LabeledExample{Text: "x", Label: "spam"})

		assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate text and label", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewExampleService(openDB(t))
		require.NoError(t, svc.CreateExample(ctx, &articlemd.LabeledExample{Text: "Subscribe now", Label: articlemd.LabelNotMainContent}))

		err := svc.CreateExample(ctx, &articlemd.LabeledExample{Text: "  Subscribe\n now ", Label: articlemd.LabelNotMainContent})

		assert.Equal(t, articlemd.ECONFLICT, articlemd.ErrorCode(err))
	})

	t.Run("allows same text under the other label", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewExampleService(openDB(t))
		require.NoError(t, svc.CreateExample(ctx, &articlemd.LabeledExample{Text: "Read more", Label: articlemd.LabelNotMainContent}))

		err := svc.CreateExample(ctx, &articlemd.LabeledExample{Text: "Read more", Label: articlemd.LabelMainContent})

		assert.NoError(t, err)
	})
}

func TestExampleService_ImportExamples(t *testing.T) {
	t.Parallel()

	t.Run("adds new examples and skips duplicates", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewExampleService(openDB(t))
		require.NoError(t, svc.CreateExample(ctx, &articlemd.LabeledExample{Text: "Share this", Label: articlemd.LabelNotMainContent}))

		added, err := svc.ImportExamples(ctx, []*articlemd.LabeledExample{
			{Text: "Share this", Label: articlemd.LabelNotMainContent},
			{Text: "Foxes live in dens.", Label: articlemd.LabelMainContent},
			{Text: "Foxes live in dens.", Label: articlemd.LabelMainContent},
			{Text: "Cookie settings", Label: articlemd.LabelNotMainContent},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, added)
		counts, err := svc.CountExamples(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[articlemd.Label]int{
			articlemd.LabelMainContent:    1,
			articlemd.LabelNotMainContent: 2,
		}, counts)
	})

	t.Run("aborts on invalid example", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewExampleService(openDB(t))

		_, err := svc.ImportExamples(ctx, []*articlemd.LabeledExample{
			{Text: "Good", Label: articlemd.LabelMainContent},
			{Text: "", Label: articlemd.LabelMainContent},
		})

		assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
		examples, err := svc.FindExamples(ctx, articlemd.ExampleFilter{})
		require.NoError(t, err)
		assert.Empty(t, examples)
	})
}

func TestExampleService_FindExamples(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := sqlite.NewExampleService(openDB(t))
	for _, ex := range []*articlemd.LabeledExample{
		{Text: "First body paragraph", Label: articlemd.LabelMainContent, Source: "blog"},
		{Text: "Newsletter signup", Label: articlemd.LabelNotMainContent, Source: "blog"},
		{Text: "Second body paragraph", Label: articlemd.LabelMainContent, Source: "news"},
		{Text: "Third body paragraph", Label: articlemd.LabelMainContent, Source: "news"},
	} {
		require.NoError(t, svc.CreateExample(ctx, ex))
	}

	t.Run("returns all in insertion order", func(t *testing.T) {
		t.Parallel()

		examples, err := svc.FindExamples(ctx, articlemd.ExampleFilter{})

		require.NoError(t, err)
		require.Len(t, examples, 4)
		assert.Equal(t, "First body paragraph", examples[0].Text)
		assert.Equal(t, "Third body paragraph", examples[3].Text)
	})

	t.Run("filters by label", func(t *testing.T) {
		t.Parallel()

		examples, err := svc.FindExamples(ctx, articlemd.ExampleFilter{Label: ptr(articlemd.LabelNotMainContent)})

		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, "Newsletter signup", examples[0].Text)
		assert.Equal(t, articlemd.LabelNotMainContent, examples[0].Label)
	})

	t.Run("filters by source", func(t *testing.T) {
		t.Parallel()

		examples, err := svc.FindExamples(ctx, articlemd.ExampleFilter{Source: ptr("news")})

		require.NoError(t, err)
		assert.Len(t, examples, 2)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		examples, err := svc.FindExamples(ctx, articlemd.ExampleFilter{
			Label:  ptr(articlemd.LabelMainContent),
			Offset: 1,
			Limit:  1,
		})

		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, "Second body paragraph", examples[0].Text)
	})

	t.Run("offset without limit returns the rest", func(t *testing.T) {
		t.Parallel()

		examples, err := svc.FindExamples(ctx, articlemd.ExampleFilter{
			Label:  ptr(articlemd.LabelMainContent),
			Offset: 2,
		})

		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, "Third body paragraph", examples[0].Text)
	})
}

func TestExampleService_DeleteExample(t *testing.T) {
	t.Parallel()

	t.Run("removes example", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewExampleService(openDB(t))
		ex := &articlemd.LabeledExample{Text: "Gone soon", Label: articlemd.LabelNotMainContent}
		require.NoError(t, svc.CreateExample(ctx, ex))

		require.NoError(t, svc.DeleteExample(ctx, ex.ID))

		examples, err := svc.FindExamples(ctx, articlemd.ExampleFilter{})
		require.NoError(t, err)
		assert.Empty(t, examples)
	})

	t.Run("returns ENOTFOUND for unknown id", func(t *testing.T) {
		t.Parallel()

		err := sqlite.NewExampleService(openDB(t)).DeleteExample(context.Background(), "missing")

		assert.Equal(t, articlemd.ENOTFOUND, articlemd.ErrorCode(err))
	})
}
