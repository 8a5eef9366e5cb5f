package articlemd_test

import (
	"testing"
	"time"

	"github.com/fwojciec/articlemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()

		var f *articlemd.URLFilter
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("applies include then exclude", func(t *testing.T) {
		t.Parallel()

		f, err := articlemd.NewURLFilter([]string{`/blog/`}, []string{`/tag/`})
		require.NoError(t, err)

		assert.True(t, f.Match("https://example.com/blog/post-1"))
		assert.False(t, f.Match("https://example.com/about"))
		assert.False(t, f.Match("https://example.com/blog/tag/go"))
	})
}

func TestURLFilter_MatchEntry(t *testing.T) {
	t.Parallel()

	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := &articlemd.URLFilter{ModifiedSince: cutoff}

	assert.True(t, f.MatchEntry("https://ex.com/new", cutoff.AddDate(0, 0, 1)))
	assert.True(t, f.MatchEntry("https://ex.com/same", cutoff))
	assert.False(t, f.MatchEntry("https://ex.com/old", cutoff.AddDate(0, 0, -1)))
	assert.True(t, f.MatchEntry("https://ex.com/undated", time.Time{}))

	var none *articlemd.URLFilter
	assert.True(t, none.MatchEntry("https://ex.com/old", cutoff.AddDate(-5, 0, 0)))
}

func TestNewURLFilter(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without patterns", func(t *testing.T) {
		t.Parallel()

		f, err := articlemd.NewURLFilter(nil, nil)

		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		_, err := articlemd.NewURLFilter([]string{"("}, nil)

		require.Error(t, err)
		assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
	})
}
