package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/batch"
	"github.com/fwojciec/articlemd/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	if c.Preview {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Site, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	out, err := filepath.Abs(c.Output)
	if err != nil {
		return err
	}
	staged := fs.NewStagedWriter(filepath.Dir(out), filepath.Base(out))

	runner := &batch.Runner{
		Sitemaps:    deps.Sitemaps,
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Writer:      staged,
		Limiter:     batch.NewDomainLimiter(deps.Config.Batch.Rate),
		Concurrency: deps.Config.Batch.Concurrency,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d URLs\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", event.URL, articlemd.ErrorMessage(event.Error))
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s\n", event.URL)
		}
	}

	result, err := runner.Run(deps.Ctx, c.Site, filter, progress)
	if err != nil {
		_ = staged.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	if result.Saved == 0 {
		_ = staged.Abort()
		fmt.Fprintf(deps.Stdout, "No articles saved (%s)\n", result)
		return nil
	}
	if err := staged.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d articles to %s (%d words; %s)\n", result.Saved, out, result.Words, result)
	return nil
}

// filter compiles the URL patterns and the --since cutoff.
func (c *BatchCmd) filter() (*articlemd.URLFilter, error) {
	filter, err := articlemd.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		return nil, err
	}
	if c.Since == "" {
		return filter, nil
	}

	since, err := dateparse.ParseIn(c.Since, time.UTC)
	if err != nil {
		return nil, articlemd.Errorf(articlemd.EINVALID, "invalid --since date %q", c.Since)
	}
	if filter == nil {
		filter = &articlemd.URLFilter{}
	}
	filter.ModifiedSince = since
	return filter, nil
}
