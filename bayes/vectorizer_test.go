package bayes_test

import (
	"testing"

	"github.com/fwojciec/articlemd/bayes"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and splits on punctuation", "Hello, World! Foo-bar", []string{"hello", "world", "foo", "bar"}},
		{"drops single characters", "a b cd 7 42", []string{"cd", "42"}},
		{"drops stop words", "the fox and the hound", []string{"fox", "hound"}},
		{"keeps unicode letters", "Zürich café", []string{"zürich", "café"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := bayes.Tokenize(tt.in)

			assert.Equal(t, tt.want, append([]string{}, got...))
		})
	}
}
