package main_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/articlemd"
	main "github.com/fwojciec/articlemd/cmd/articlemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("returns defaults without file", func(t *testing.T) {
		t.Setenv("ARTICLEMD_MODEL", "")
		t.Setenv("ARTICLEMD_DB", "")

		cfg, err := main.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, articlemd.DefaultSelectPolicy(), cfg.Select)
		assert.Equal(t, main.NarrowNone, cfg.Narrow)
		assert.Equal(t, main.DefaultTimeout, cfg.Fetch.Timeout)
		assert.Equal(t, main.DefaultConcurrency, cfg.Batch.Concurrency)
		assert.Equal(t, "model.json", filepath.Base(cfg.Model))
		assert.Equal(t, "corpus.db", filepath.Base(cfg.DB))
	})

	t.Run("reads paths from environment", func(t *testing.T) {
		t.Setenv("ARTICLEMD_MODEL", "/tmp/env-model.json")
		t.Setenv("ARTICLEMD_DB", "/tmp/env.db")

		cfg, err := main.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-model.json", cfg.Model)
		assert.Equal(t, "/tmp/env.db", cfg.DB)
	})

	t.Run("file overrides environment and keeps unset keys", func(t *testing.T) {
		t.Setenv("ARTICLEMD_MODEL", "/tmp/env-model.json")
		t.Setenv("ARTICLEMD_DB", "/tmp/env.db")

		path := writeFile(t, t.TempDir(), "articlemd.yaml", `
model: /srv/model.json
narrow: trafilatura
select:
  threshold: 0.5
fetch:
  timeout: 5s
  user_agent: test-agent
batch:
  concurrency: 8
  rate: 2.5
`)

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "/srv/model.json", cfg.Model)
		assert.Equal(t, "/tmp/env.db", cfg.DB)
		assert.Equal(t, main.NarrowTrafilatura, cfg.Narrow)
		assert.Equal(t, 0.5, cfg.Select.Threshold)
		assert.Equal(t, articlemd.DefaultMinWords, cfg.Select.MinWords)
		assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, "test-agent", cfg.Fetch.UserAgent)
		assert.Equal(t, 8, cfg.Batch.Concurrency)
		assert.Equal(t, 2.5, cfg.Batch.Rate)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Equal(t, articlemd.ENOTFOUND, articlemd.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "bad.yaml", "select: [unclosed")

		_, err := main.LoadConfig(path)

		require.Error(t, err)
		assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*main.Config)
		valid  bool
	}{
		{"defaults", func(*main.Config) {}, true},
		{"threshold zero", func(c *main.Config) { c.Select.Threshold = 0 }, true},
		{"threshold above one", func(c *main.Config) { c.Select.Threshold = 1.2 }, false},
		{"negative threshold", func(c *main.Config) { c.Select.Threshold = -0.1 }, false},
		{"negative min words", func(c *main.Config) { c.Select.MinWords = -1 }, false},
		{"readability narrower", func(c *main.Config) { c.Narrow = main.NarrowReadability }, true},
		{"unknown narrower", func(c *main.Config) { c.Narrow = "boilerpipe" }, false},
		{"zero timeout", func(c *main.Config) { c.Fetch.Timeout = 0 }, false},
		{"zero concurrency", func(c *main.Config) { c.Batch.Concurrency = 0 }, false},
		{"unlimited rate", func(c *main.Config) { c.Batch.Rate = 0 }, true},
		{"negative rate", func(c *main.Config) { c.Batch.Rate = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := main.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()

			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, articlemd.EINVALID, articlemd.ErrorCode(err))
		})
	}
}
