package bayes

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Feature is one non-zero entry of a sparse feature vector.
type Feature struct {
	Index  int
	Weight float64
}

// Vector is a sparse TF-IDF vector ordered by feature index.
type Vector []Feature

// Tokenize lowercases text and splits it into terms of at least two letters
// or digits, dropping English stop words.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 || isStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// vectorizer maps text to TF-IDF vectors over a fixed vocabulary.
// It is immutable once built.
type vectorizer struct {
	terms []string
	index map[string]int
	idf   []float64
}

// fitVectorizer builds the vocabulary and smoothed inverse document
// frequencies from docs: idf = ln((1+n)/(1+df)) + 1.
func fitVectorizer(docs []string) *vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return newVectorizer(terms, idf)
}

func newVectorizer(terms []string, idf []float64) *vectorizer {
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}
	return &vectorizer{terms: terms, index: index, idf: idf}
}

// size returns the vocabulary size.
func (v *vectorizer) size() int {
	return len(v.terms)
}

// transform returns the L2-normalized TF-IDF vector of text.
// Terms outside the vocabulary are ignored.
func (v *vectorizer) transform(text string) Vector {
	counts := make(map[int]float64)
	for _, tok := range Tokenize(text) {
		if i, ok := v.index[tok]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(Vector, 0, len(counts))
	for i, tf := range counts {
		vec = append(vec, Feature{Index: i, Weight: tf * v.idf[i]})
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].Index < vec[b].Index })

	var norm float64
	for _, f := range vec {
		norm += f.Weight * f.Weight
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i].Weight /= norm
	}
	return vec
}
