package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/articlemd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config Config

	Fetcher   articlemd.Fetcher
	Sitemaps  articlemd.SitemapService
	Extractor articlemd.ArticleExtractor
	Baseline  articlemd.ArticleExtractor
	Examples  articlemd.ExampleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string        `short:"C" env:"ARTICLEMD_CONFIG" help:"YAML config file"`
	Verbose   bool          `short:"v" help:"Log pipeline stages to stderr"`
	Model     string        `help:"Model file (default: ~/.articlemd/model.json)"`
	DB        string        `name:"db" help:"Training corpus database (default: ~/.articlemd/corpus.db)"`
	Threshold *float64      `help:"Minimum main-content probability for a block to be kept"`
	MinWords  *int          `name:"min-words" help:"Keep blocks with more words than this regardless of score"`
	Narrow    string        `help:"Narrow the page before classification: none, readability or trafilatura"`
	Timeout   time.Duration `help:"Fetch timeout per page"`

	Extract ExtractCmd `cmd:"" help:"Extract the article from a URL or an HTML file"`
	Train   TrainCmd   `cmd:"" help:"Train the block classifier"`
	Batch   BatchCmd   `cmd:"" help:"Extract every article listed in a site's sitemaps"`
	Corpus  CorpusCmd  `cmd:"" help:"Manage the labeled training corpus"`
	Compare CompareCmd `cmd:"" help:"Compare classifier extraction with the trafilatura baseline"`
}

// apply overrides cfg with the global flags that were given.
func (c *CLI) apply(cfg *Config) {
	if c.Model != "" {
		cfg.Model = c.Model
	}
	if c.DB != "" {
		cfg.DB = c.DB
	}
	if c.Threshold != nil {
		cfg.Select.Threshold = *c.Threshold
	}
	if c.MinWords != nil {
		cfg.Select.MinWords = *c.MinWords
	}
	if c.Narrow != "" {
		cfg.Narrow = c.Narrow
	}
	if c.Timeout > 0 {
		cfg.Fetch.Timeout = c.Timeout
	}
	if c.Batch.Concurrency > 0 {
		cfg.Batch.Concurrency = c.Batch.Concurrency
	}
	if c.Batch.Rate != nil {
		cfg.Batch.Rate = *c.Batch.Rate
	}
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source  string `arg:"" help:"Article URL or path to an HTML file"`
	BaseURL string `name:"base-url" help:"Base URL for resolving relative links in a file"`
	Output  string `short:"o" help:"Write the Markdown under this directory instead of stdout"`
	JSON    bool   `help:"Print the extracted document as JSON"`
}

// TrainCmd is the "train" subcommand.
type TrainCmd struct {
	Data       string  `arg:"" optional:"" help:"Training data file: JSON array or JSON lines of {text, label}"`
	FromCorpus bool    `name:"from-corpus" help:"Train on the examples stored in the corpus database"`
	Alpha      float64 `default:"1.0" help:"Additive smoothing strength"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Site        string   `arg:"" help:"Site URL whose sitemaps list the articles"`
	Output      string   `arg:"" optional:"" default:"articles" help:"Output directory"`
	Include     []string `short:"i" help:"Only URLs matching this regex (repeatable)"`
	Exclude     []string `short:"x" help:"Skip URLs matching this regex (repeatable)"`
	Since       string   `help:"Only articles modified on or after this date"`
	Preview     bool     `short:"p" help:"List the URLs without extracting"`
	Concurrency int      `short:"c" help:"Pages processed in parallel"`
	Rate        *float64 `help:"Requests per second per domain (0 disables limiting)"`
}

// CorpusCmd groups the corpus subcommands.
type CorpusCmd struct {
	Add    CorpusAddCmd    `cmd:"" help:"Add one labeled example"`
	Import CorpusImportCmd `cmd:"" help:"Import labeled examples from a file"`
	List   CorpusListCmd   `cmd:"" help:"List labeled examples"`
	Delete CorpusDeleteCmd `cmd:"" help:"Delete a labeled example"`
}

// CorpusAddCmd is the "corpus add" subcommand.
type CorpusAddCmd struct {
	Label  string `arg:"" enum:"main_content,not_main_content" help:"main_content or not_main_content"`
	Text   string `arg:"" help:"Example text"`
	Source string `short:"s" help:"Where the example came from"`
}

// CorpusImportCmd is the "corpus import" subcommand.
type CorpusImportCmd struct {
	File   string `arg:"" help:"JSON array or JSON lines of {text, label}"`
	Source string `short:"s" help:"Source recorded for examples without one"`
}

// CorpusListCmd is the "corpus list" subcommand.
type CorpusListCmd struct {
	Label  string `short:"l" help:"Only examples with this label"`
	Source string `short:"s" help:"Only examples from this source"`
	Limit  int    `short:"n" default:"50" help:"Maximum examples to list (0 for all)"`
	Offset int    `help:"Examples to skip"`
}

// CorpusDeleteCmd is the "corpus delete" subcommand.
type CorpusDeleteCmd struct {
	ID string `arg:"" help:"Example ID"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Source  string `arg:"" help:"Article URL or path to an HTML file"`
	BaseURL string `name:"base-url" help:"Base URL for resolving relative links in a file"`
	Show    bool   `help:"Print both extractions after the summary"`
}
