package textshape

import "errors"

// Sentinel errors for the textshape package.
var (
	// ErrNoFontFound is returned when a glyph references a font that is not
	// registered in the FontDB, or when no candidate font exists for a style.
	// A Shape call that hits this error produces no layout.
	ErrNoFontFound = errors.New("textshape: no font found")

	// ErrShapingFailed is returned when the shaping engine could not process
	// a word with any candidate font. The failure is cached, and the affected
	// word contributes no glyphs to the layout.
	ErrShapingFailed = errors.New("textshape: shaping failed")

	// ErrEmptyFontData is returned when registering a font from an empty slice.
	ErrEmptyFontData = errors.New("textshape: empty font data")
)
