package articlemd

import "strings"

// Default selection policy values. Both were chosen empirically on English
// news and blog pages.
const (
	DefaultThreshold = 0.3
	DefaultMinWords  = 20
)

// SelectPolicy controls which blocks the content selector keeps.
type SelectPolicy struct {
	// Threshold is the minimum main-content probability for a block to be kept.
	Threshold float64 `yaml:"threshold"`

	// MinWords keeps any block with more words than this, whatever its score.
	MinWords int `yaml:"min_words"`
}

// DefaultSelectPolicy returns the policy used when no configuration is given.
func DefaultSelectPolicy() SelectPolicy {
	return SelectPolicy{
		Threshold: DefaultThreshold,
		MinWords:  DefaultMinWords,
	}
}

// Retain decides whether a single block with the given probability is kept.
// Rules are checked in order and the first that applies decides:
// headings, images and code always stay; then the probability threshold;
// then the word count.
func Retain(b Block, prob float64, p SelectPolicy) bool {
	if b.Structural() {
		return true
	}
	if prob >= p.Threshold {
		return true
	}
	return WordCount(b.Raw) > p.MinWords
}

// Select returns the retained blocks in their original order.
// Returns EINVALID if probs is not aligned with blocks.
func Select(blocks []Block, probs []float64, p SelectPolicy) ([]Block, error) {
	if len(blocks) != len(probs) {
		return nil, Errorf(EINVALID, "got %d probabilities for %d blocks", len(probs), len(blocks))
	}

	kept := make([]Block, 0, len(blocks))
	for i, b := range blocks {
		if Retain(b, probs[i], p) {
			kept = append(kept, b)
		}
	}
	return kept, nil
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// JoinBlocks renders blocks as Markdown. Consecutive list items form one list;
// all other blocks are separated by a blank line.
func JoinBlocks(blocks []Block) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			if block.Kind == KindListItem && blocks[i-1].Kind == KindListItem {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(block.Text)
	}
	return b.String()
}
