package textshape

// GlyphPadding is the fixed pixel margin baked into every glyph's render
// offset. Rasterizers that pack glyphs into an atlas leave this margin
// around each glyph's ink box; CalcOffsetX/CalcOffsetY compensate for it.
const GlyphPadding = 2.0

// TextLayout is the aggregate result of a Shape call: the alignment-adjusted
// origin, the total bounding metrics, and the positioned glyph sequence in
// logical order. It is transient and owned by the caller.
type TextLayout struct {
	// X and Y are the top-left origin of the laid-out text. X reflects the
	// alignment shift; Y is the minimum pen position over all glyphs,
	// capturing the highest ascent among mixed fonts.
	X float64
	Y float64

	// Width is the sum of all glyph advances plus letter spacing.
	Width float64

	// Height is the maximum line height among the fonts used.
	Height float64

	// Glyphs holds the positioned glyphs.
	Glyphs []ShapedGlyph
}

// layoutGlyphs computes pen positions for every glyph in res and the
// aggregate bounding metrics, walking the glyph sequence once in logical
// order. Any glyph whose font identifier is not present in db aborts with
// ErrNoFontFound; no partial layout survives the error.
func layoutGlyphs(x, y float64, db *FontDB, res *TextLayout, style *TextStyle) error {
	cursorX := x
	cursorY := y

	padding := GlyphPadding + style.Blur*2
	lineWidth := 0.0
	if style.Render.Mode == RenderStroke {
		lineWidth = style.Render.LineWidth
		padding += lineWidth
	}

	res.Width = 0
	for i := range res.Glyphs {
		res.Width += res.Glyphs[i].AdvanceX + style.LetterSpacing
	}

	switch style.Align {
	case AlignCenter:
		cursorX -= res.Width / 2
	case AlignRight:
		cursorX -= res.Width
	}
	res.X = cursorX

	height := 0.0
	minY := cursorY

	for i := range res.Glyphs {
		g := &res.Glyphs[i]

		g.CalcOffsetX = g.OffsetX + g.BearingX - padding - lineWidth/2
		g.CalcOffsetY = g.OffsetY - g.BearingY - padding - lineWidth/2

		font, ok := db.Font(g.FontID)
		if !ok {
			return ErrNoFontFound
		}

		ascender := font.Ascender(style.Size)
		descender := font.Descender(style.Size)

		var baselineDelta float64
		switch style.Baseline {
		case BaselineTop:
			baselineDelta = ascender
		case BaselineMiddle:
			baselineDelta = (ascender + descender) / 2
		case BaselineBottom:
			baselineDelta = descender
		}

		g.X = cursorX + g.CalcOffsetX
		g.Y = cursorY + g.CalcOffsetY + baselineDelta

		height = max(height, font.LineHeight(style.Size))
		minY = min(minY, g.Y)

		cursorX += g.AdvanceX + style.LetterSpacing
		cursorY += g.AdvanceY
	}

	res.Y = minY
	res.Height = height
	return nil
}
