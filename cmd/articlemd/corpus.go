package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/fs"
)

// previewLen is the number of runes of example text shown by corpus list.
const previewLen = 60

// Run executes the corpus add command.
func (c *CorpusAddCmd) Run(deps *Dependencies) error {
	ex := &articlemd.LabeledExample{
		Text:   c.Text,
		Label:  articlemd.Label(c.Label),
		Source: c.Source,
	}
	if err := deps.Examples.CreateExample(deps.Ctx, ex); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %s example %s\n", ex.Label, ex.ID)
	return nil
}

// Run executes the corpus import command.
func (c *CorpusImportCmd) Run(deps *Dependencies) error {
	examples, err := fs.LoadExamples(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}
	if c.Source != "" {
		for _, ex := range examples {
			if ex.Source == "" {
				ex.Source = c.Source
			}
		}
	}

	added, err := deps.Examples.ImportExamples(deps.Ctx, examples)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d of %d examples (%d duplicates skipped)\n", added, len(examples), len(examples)-added)
	return nil
}

// Run executes the corpus list command.
func (c *CorpusListCmd) Run(deps *Dependencies) error {
	filter := articlemd.ExampleFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Label != "" {
		label := articlemd.Label(c.Label)
		if !label.Valid() {
			err := articlemd.Errorf(articlemd.EINVALID, "unknown label %q", c.Label)
			fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
			return err
		}
		filter.Label = &label
	}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	examples, err := deps.Examples.FindExamples(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	if len(examples) == 0 {
		fmt.Fprintln(deps.Stdout, "No examples found. Use 'articlemd corpus add' or 'articlemd corpus import' to add some.")
		return nil
	}

	for _, ex := range examples {
		fmt.Fprintf(deps.Stdout, "%s  %-16s  %s\n", ex.ID, ex.Label, preview(ex.Text))
	}

	counts, err := deps.Examples.CountExamples(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "\n%d main content, %d not main content\n",
		counts[articlemd.LabelMainContent], counts[articlemd.LabelNotMainContent])
	return nil
}

// Run executes the corpus delete command.
func (c *CorpusDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Examples.DeleteExample(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted example %s\n", c.ID)
	return nil
}

// preview collapses whitespace in text and shortens it for one-line output.
func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= previewLen {
		return text
	}
	runes := []rune(text)
	return string(runes[:previewLen-3]) + "..."
}
