package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/articlemd"
	main "github.com/fwojciec/articlemd/cmd/articlemd"
	"github.com/fwojciec/articlemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("previews discovered URLs with filter", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, filter *articlemd.URLFilter) ([]string, error) {
				assert.Equal(t, "https://ex.com", baseURL)
				require.NotNil(t, filter)
				assert.True(t, filter.Match("https://ex.com/news/a"))
				assert.False(t, filter.Match("https://ex.com/tag/a"))
				assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), filter.ModifiedSince)
				return []string{"https://ex.com/news/a", "https://ex.com/news/b"}, nil
			},
		}

		cmd := &main.BatchCmd{
			Site:    "https://ex.com",
			Include: []string{`/news/`},
			Since:   "2024-01-15",
			Preview: true,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://ex.com/news/a\nhttps://ex.com/news/b\n", stdout.String())
	})

	t.Run("rejects invalid since date", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.BatchCmd{Site: "https://ex.com", Since: "not a date", Preview: true}

		err := cmd.Run(newDeps(stdout, stderr))

		require.Error(t, err)
		assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.BatchCmd{Site: "https://ex.com", Include: []string{"("}, Preview: true}

		err := cmd.Run(newDeps(stdout, stderr))

		require.Error(t, err)
		assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
	})

	t.Run("extracts articles into output directory", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "articles")
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Config.Batch.Rate = 0
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *articlemd.URLFilter) ([]string, error) {
				return []string{"https://ex.com/news/a", "https://ex.com/news/b", "https://ex.com/news/down"}, nil
			},
		}
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*articlemd.RawPage, error) {
				if url == "https://ex.com/news/down" {
					return nil, articlemd.Errorf(articlemd.EFETCH, "HTTP 404 for %s", url)
				}
				return &articlemd.RawPage{URL: url, HTML: "<p>" + url + "</p>"}, nil
			},
		}
		deps.Extractor = &mock.ArticleExtractor{
			ExtractArticleFn: func(html, baseURL string) (*articlemd.ExtractedDocument, error) {
				return &articlemd.ExtractedDocument{URL: baseURL, Title: "T", Content: html}, nil
			},
		}

		cmd := &main.BatchCmd{Site: "https://ex.com", Output: out}
		err := cmd.Run(deps)

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(out, "news", "a.md"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(out, "news", "b.md"))
		require.NoError(t, err)
		_, err = os.Stat(out + ".tmp")
		assert.True(t, os.IsNotExist(err))
		assert.Contains(t, stdout.String(), "Found 3 URLs")
		assert.Contains(t, stdout.String(), "Saved 2 articles")
		assert.Contains(t, stderr.String(), "fail https://ex.com/news/down: HTTP 404 for https://ex.com/news/down")
	})

	t.Run("leaves previous output when nothing is saved", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "articles")
		require.NoError(t, os.MkdirAll(out, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(out, "keep.md"), []byte("old"), 0644))

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *articlemd.URLFilter) ([]string, error) {
				return nil, nil
			},
		}

		cmd := &main.BatchCmd{Site: "https://ex.com", Output: out}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles saved")
		_, err = os.Stat(filepath.Join(out, "keep.md"))
		require.NoError(t, err)
	})
}
