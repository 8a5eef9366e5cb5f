package main

import (
	"fmt"

	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/pipeline"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	rawHTML, baseURL, err := readSource(deps, c.Source, c.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	cmp, err := pipeline.Compare(rawHTML, baseURL, deps.Extractor, deps.Baseline)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "classifier: %d words\n", cmp.PrimaryWords)
	fmt.Fprintf(deps.Stdout, "baseline:   %d words\n", cmp.BaselineWords)
	fmt.Fprintf(deps.Stdout, "shared:     %d lines\n", cmp.SharedLines)
	fmt.Fprintf(deps.Stdout, "overlap:    %.2f\n", cmp.Overlap)

	if c.Show {
		fmt.Fprintln(deps.Stdout, "\n=== classifier ===")
		fmt.Fprintln(deps.Stdout, articlemd.FormatMarkdown(cmp.Primary))
		fmt.Fprintln(deps.Stdout, "\n=== baseline ===")
		fmt.Fprintln(deps.Stdout, articlemd.FormatMarkdown(cmp.Baseline))
	}
	return nil
}
