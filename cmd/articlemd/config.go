package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/articlemd"
	"gopkg.in/yaml.v3"
)

// Narrower names accepted by Config.Narrow.
const (
	NarrowNone        = "none"
	NarrowReadability = "readability"
	NarrowTrafilatura = "trafilatura"
)

// Default batch settings.
const (
	DefaultConcurrency = 4
	DefaultRate        = 1.0
	DefaultTimeout     = 30 * time.Second
)

// Config holds settings shared by all commands. Values are layered: defaults,
// then environment, then the config file, then command-line flags.
type Config struct {
	Model  string                 `yaml:"model"`
	DB     string                 `yaml:"db"`
	Narrow string                 `yaml:"narrow"`
	Select articlemd.SelectPolicy `yaml:"select"`
	Fetch  FetchConfig            `yaml:"fetch"`
	Batch  BatchConfig            `yaml:"batch"`
}

// FetchConfig configures HTTP fetching.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// BatchConfig configures the batch command.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`
	// Rate is the request rate per domain per second. Zero disables limiting.
	Rate float64 `yaml:"rate"`
}

// DefaultConfig returns the configuration used when nothing else is set.
// Model and corpus live under ~/.articlemd.
func DefaultConfig() Config {
	dir := ".articlemd"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".articlemd")
	}
	return Config{
		Model:  filepath.Join(dir, "model.json"),
		DB:     filepath.Join(dir, "corpus.db"),
		Narrow: NarrowNone,
		Select: articlemd.DefaultSelectPolicy(),
		Fetch: FetchConfig{
			Timeout: DefaultTimeout,
		},
		Batch: BatchConfig{
			Concurrency: DefaultConcurrency,
			Rate:        DefaultRate,
		},
	}
}

// LoadConfig returns the default configuration overlaid with the
// ARTICLEMD_MODEL and ARTICLEMD_DB environment variables and, if path is
// not empty, the YAML file at path. Keys missing from the file keep their
// previous values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv("ARTICLEMD_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ARTICLEMD_DB"); v != "" {
		cfg.DB = v
	}

	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, articlemd.Errorf(articlemd.ENOTFOUND, "config file %s does not exist", path)
	} else if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, articlemd.Errorf(articlemd.EINVALID, "parse config file %s: %v", path, err)
	}
	return cfg, nil
}

// Validate returns an error if the configuration contains invalid values.
func (c *Config) Validate() error {
	if c.Select.Threshold < 0 || c.Select.Threshold > 1 {
		return articlemd.Errorf(articlemd.EINVALID, "threshold must be between 0 and 1, got %v", c.Select.Threshold)
	}
	if c.Select.MinWords < 0 {
		return articlemd.Errorf(articlemd.EINVALID, "min words must not be negative, got %d", c.Select.MinWords)
	}
	switch c.Narrow {
	case NarrowNone, NarrowReadability, NarrowTrafilatura:
	default:
		return articlemd.Errorf(articlemd.EINVALID, "unknown narrower %q (want %s, %s or %s)",
			c.Narrow, NarrowNone, NarrowReadability, NarrowTrafilatura)
	}
	if c.Fetch.Timeout <= 0 {
		return articlemd.Errorf(articlemd.EINVALID, "fetch timeout must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Batch.Concurrency < 1 {
		return articlemd.Errorf(articlemd.EINVALID, "concurrency must be at least 1, got %d", c.Batch.Concurrency)
	}
	if c.Batch.Rate < 0 {
		return articlemd.Errorf(articlemd.EINVALID, "rate must not be negative, got %v", c.Batch.Rate)
	}
	return nil
}
