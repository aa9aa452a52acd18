package textshape

import "strings"

// splitWords splits a run into space-inclusive words: each space stays
// attached to the preceding word, so whitespace advance width is cached per
// word instead of being lost. For right-to-left runs the word order is
// reversed to approximate visual order; characters within each word keep
// logical order, glyph-level reordering being the shaping engine's job.
func splitWords(run Run) []string {
	words := strings.SplitAfter(run.Text, " ")
	// SplitAfter yields a trailing empty element when the text ends with a
	// separator; an empty word would shape to nothing but still occupy a
	// cache entry.
	if n := len(words); n > 0 && words[n-1] == "" {
		words = words[:n-1]
	}

	if run.Direction == DirectionRTL {
		for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
			words[i], words[j] = words[j], words[i]
		}
	}

	return words
}
