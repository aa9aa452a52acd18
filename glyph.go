package textshape

// ShapedGlyph is one positioned glyph instance produced by a Shape call.
// All measurements are in pixels at the requested TextStyle size.
type ShapedGlyph struct {
	// Rune is the source character this glyph was shaped from.
	// For ligatures this is the first character of the cluster.
	Rune rune

	// FontID identifies the font the glyph was resolved against.
	FontID FontID

	// Codepoint is the glyph index in the font. Zero means the font has no
	// glyph for the character and a fallback box should be rendered.
	Codepoint uint32

	// Width and Height are the dimensions of the glyph's ink bounding box.
	Width  float64
	Height float64

	// BearingX and BearingY are the offsets from the pen position to the
	// left and top edges of the ink bounding box.
	BearingX float64
	BearingY float64

	// AdvanceX and AdvanceY are the pen displacements after this glyph.
	AdvanceX float64
	AdvanceY float64

	// OffsetX and OffsetY are the shaping-reported positioning adjustments.
	OffsetX float64
	OffsetY float64

	// X and Y are the final pen position, computed by layout.
	X float64
	Y float64

	// CalcOffsetX and CalcOffsetY are the render offsets from the pen
	// position to the padded glyph box, computed by layout. Renderers use
	// them to compensate for GlyphPadding, blur and stroke widening.
	CalcOffsetX float64
	CalcOffsetY float64
}
