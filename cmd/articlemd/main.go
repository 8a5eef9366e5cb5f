package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/bayes"
	"github.com/fwojciec/articlemd/goquery"
	"github.com/fwojciec/articlemd/htmltomarkdown"
	mdhttp "github.com/fwojciec/articlemd/http"
	"github.com/fwojciec/articlemd/pipeline"
	"github.com/fwojciec/articlemd/readability"
	logging "github.com/fwojciec/articlemd/slog"
	"github.com/fwojciec/articlemd/sqlite"
	"github.com/fwojciec/articlemd/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the training corpus. Opened on demand.
	DB *sqlite.DB

	// Fetcher used by commands that read URLs. Closed by Close.
	Fetcher articlemd.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		m.Fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("articlemd"),
		kong.Description("Extract the main content of article pages as Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'articlemd --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	cli.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cli.Verbose)

	defer m.Close()

	cmd := kongCtx.Command()
	switch {
	case strings.HasPrefix(cmd, "corpus"), strings.HasPrefix(cmd, "train") && cli.Train.FromCorpus:
		if err := m.openDB(cfg.DB); err != nil {
			fmt.Fprintln(stderr, "Hint: Set ARTICLEMD_DB or --db to use a different database path")
			return err
		}
		deps.Examples = sqlite.NewExampleService(m.DB)

	case strings.HasPrefix(cmd, "extract"), strings.HasPrefix(cmd, "batch"), strings.HasPrefix(cmd, "compare"):
		m.Fetcher = logging.NewLoggingFetcher(newFetcher(cfg.Fetch), deps.Logger)
		deps.Fetcher = m.Fetcher
		deps.Sitemaps = logging.NewLoggingSitemapService(mdhttp.NewSitemapService(nil), deps.Logger)

		// Listing sitemap URLs needs no model.
		if !(strings.HasPrefix(cmd, "batch") && cli.Batch.Preview) {
			extractor, err := newExtractor(cfg, deps.Logger)
			if err != nil {
				return err
			}
			deps.Extractor = extractor
		}
		deps.Baseline = &pipeline.Baseline{
			Extractor: trafilatura.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Metadata:  newMetadataChain(),
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string) error {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

// newLogger returns a text logger on w when verbose, and a logger that
// discards everything otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newFetcher(cfg FetchConfig) *mdhttp.Fetcher {
	opts := []mdhttp.Option{mdhttp.WithTimeout(cfg.Timeout)}
	if cfg.UserAgent != "" {
		opts = append(opts, mdhttp.WithUserAgent(cfg.UserAgent))
	}
	return mdhttp.NewFetcher(opts...)
}

// newMetadataChain returns the metadata sources in order of preference.
func newMetadataChain() articlemd.MetadataChain {
	return articlemd.MetadataChain{
		goquery.NewMetadataExtractor(),
		trafilatura.NewExtractor(),
		readability.NewExtractor(),
	}
}

// newExtractor loads the trained model and builds the classifier pipeline.
func newExtractor(cfg Config, logger *slog.Logger) (articlemd.ArticleExtractor, error) {
	if _, err := os.Stat(cfg.Model); os.IsNotExist(err) {
		return nil, articlemd.Errorf(articlemd.ENOMODEL, "no trained model at %s; run 'articlemd train' first", cfg.Model)
	}
	model, err := bayes.Load(cfg.Model)
	if err != nil {
		return nil, err
	}

	p := pipeline.New(
		goquery.NewLinearizer(),
		logging.NewLoggingClassifier(model, cfg.Select.Threshold, logger),
		newMetadataChain(),
	)
	p.Policy = cfg.Select
	switch cfg.Narrow {
	case NarrowReadability:
		p.Narrower = readability.NewExtractor()
	case NarrowTrafilatura:
		p.Narrower = trafilatura.NewExtractor()
	}

	return logging.NewLoggingArticleExtractor(p, logger), nil
}
