package textshape

// RenderStyle selects fill or stroke rendering for a piece of text.
// Stroke rendering widens the glyph padding by the line width so that the
// stroked outline is not clipped by the rasterizer's glyph box.
type RenderStyle struct {
	Mode RenderMode

	// LineWidth is the stroke width in pixels. Ignored for RenderFill.
	LineWidth float64
}

// TextStyle describes how a piece of text is shaped and laid out.
//
// Only Size, Weight, WidthClass and Slant affect glyph shapes (and therefore
// the shaping cache key); the remaining fields affect layout only and may be
// changed freely without invalidating cached shaping results.
type TextStyle struct {
	// Size is the font size in pixels.
	Size float64

	// Weight is the requested font weight. Zero means WeightNormal.
	Weight Weight

	// WidthClass is the requested font width. Zero means WidthNormal.
	WidthClass WidthClass

	// Slant is the requested font slant.
	Slant Slant

	// FontFamilies lists preferred font families in priority order.
	// Fonts from these families are tried before any other registered font.
	FontFamilies []string

	// Align is the horizontal alignment relative to the shape origin.
	Align Align

	// Baseline is the vertical baseline mode.
	Baseline Baseline

	// LetterSpacing is extra horizontal advance per glyph, in pixels.
	LetterSpacing float64

	// Blur is the blur radius applied by the renderer, in pixels.
	// It widens the glyph padding but does not affect shaping.
	Blur float64

	// Render selects fill or stroke rendering.
	Render RenderStyle
}

// weight returns the effective weight, mapping the zero value to normal.
func (s *TextStyle) weight() Weight {
	if s.Weight == 0 {
		return WeightNormal
	}
	return s.Weight
}

// widthClass returns the effective width class, mapping the zero value to normal.
func (s *TextStyle) widthClass() WidthClass {
	if s.WidthClass == 0 {
		return WidthNormal
	}
	return s.WidthClass
}
