package bayes_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/bayes"
	"github.com/stretchr/testify/require"
)

// corpus returns a small labeled corpus where boilerplate talks about ads
// and article text talks about foxes and forests.
func corpus() []*articlemd.LabeledExample {
	main := []string{
		"The quick brown fox jumps over the lazy dog near the river in the morning light.",
		"A brown fox wandered through the forest looking for food before the winter snow arrived.",
		"Foxes are clever animals that live in forests, fields and river valleys across the country.",
		"In the morning the fox returned to the forest den where the cubs were sleeping quietly.",
	}
	notMain := []string{
		"Short ad text",
		"Sponsored ad: click to buy now",
		"Advertisement text banner",
		"Subscribe to our newsletter for ad free text",
		"Short sponsored text ad",
		"Click the ad banner",
	}

	var examples []*articlemd.LabeledExample
	for _, text := range main {
		examples = append(examples, &articlemd.LabeledExample{Text: text, Label: articlemd.LabelMainContent})
	}
	for _, text := range notMain {
		examples = append(examples, &articlemd.LabeledExample{Text: text, Label: articlemd.LabelNotMainContent})
	}
	return examples
}

func trainedModel(t *testing.T) *bayes.Model {
	t.Helper()
	m, err := bayes.Fit(corpus())
	require.NoError(t, err)
	return m
}

func filler() string {
	return strings.Repeat("The quick brown fox jumps over the lazy dog again. ", 3)
}
