package textshape

import "github.com/go-text/typesetting/language"

// GlyphInfo is one glyph produced by a ShapingEngine, in logical order.
// Advances and offsets are de-scaled to pixels at the requested size; the
// engine is responsible for converting whatever fixed-point unit system it
// works in (typically 1/64 font units) consistently.
type GlyphInfo struct {
	// Rune is the source character of the glyph's cluster.
	Rune rune

	// Codepoint is the glyph index in the font; zero signals a missing glyph.
	Codepoint uint32

	// AdvanceX and AdvanceY are the pen displacements after the glyph.
	AdvanceX float64
	AdvanceY float64

	// OffsetX and OffsetY are positioning adjustments relative to the pen.
	OffsetX float64
	OffsetY float64
}

// ShapingEngine converts one word into glyph codepoints with positions,
// applying font-specific substitution and positioning rules. The canonical
// implementation is [HarfbuzzEngine]; tests substitute fakes.
//
// Implementations are not required to be safe for concurrent use; a Shaper
// owns its engine for the duration of each Shape call.
type ShapingEngine interface {
	// ShapeWord shapes word with font at the given pixel size. The run's
	// direction and script select the font's script-specific shaping rules.
	ShapeWord(font *Font, word string, size float64, dir Direction, script language.Script) ([]GlyphInfo, error)
}
