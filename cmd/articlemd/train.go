package main

import (
	"fmt"

	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/bayes"
	"github.com/fwojciec/articlemd/fs"
)

// Run executes the train command.
func (c *TrainCmd) Run(deps *Dependencies) error {
	if c.Data == "" && !c.FromCorpus {
		err := articlemd.Errorf(articlemd.EINVALID, "give a training data file or --from-corpus")
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	var examples []*articlemd.LabeledExample
	if c.Data != "" {
		fromFile, err := fs.LoadExamples(c.Data)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
			return err
		}
		examples = append(examples, fromFile...)
	}
	if c.FromCorpus {
		fromCorpus, err := deps.Examples.FindExamples(deps.Ctx, articlemd.ExampleFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
			return err
		}
		examples = append(examples, fromCorpus...)
	}

	model, err := bayes.Fit(examples, bayes.WithAlpha(c.Alpha))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	if err := bayes.Save(deps.Config.Model, model); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	var mainCount, notMainCount int
	for _, ex := range examples {
		if ex.Label == articlemd.LabelMainContent {
			mainCount++
		} else {
			notMainCount++
		}
	}
	fmt.Fprintf(deps.Stdout, "Trained on %d examples (%d main content, %d not main content), %d terms\n",
		len(examples), mainCount, notMainCount, model.VocabularySize())
	fmt.Fprintf(deps.Stdout, "Saved model to %s\n", deps.Config.Model)
	return nil
}
