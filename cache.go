package textshape

import (
	"hash/fnv"
	"math"
)

// shapingKey identifies one memoized word-shaping result. It is built from
// the shape-relevant subset of TextStyle plus an FNV-1a hash of the word
// text: two calls with identical shape-relevant style fields and identical
// word text always produce the same key. Alignment, baseline, letter
// spacing, blur and render mode never participate, so changing them cannot
// invalidate cached shaping results.
type shapingKey struct {
	// sizeBits is the IEEE 754 bit pattern of the size as float32, so that
	// fractional sizes compare exactly without floating-point surprises.
	sizeBits uint32

	weight Weight
	width  WidthClass
	slant  Slant

	// textHash is the FNV-1a hash of the word text.
	textHash uint64
}

// newShapingKey builds the cache key for shaping word with style.
func newShapingKey(style *TextStyle, word string) shapingKey {
	return shapingKey{
		sizeBits: math.Float32bits(float32(style.Size)),
		weight:   style.weight(),
		width:    style.widthClass(),
		slant:    style.Slant,
		textHash: hashString(word),
	}
}

// hashString computes the FNV-1a hash of a string.
// FNV-1a is fast and has good distribution for short text keys.
func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// shapedWord is a memoized shaping result: either the glyph sequence for a
// word, or the error that shaping it produced. Failures are cached too
// (negative caching), so repeated identical requests do not repeat the
// expensive engine work just to fail again.
type shapedWord struct {
	glyphs []ShapedGlyph
	err    error
}
