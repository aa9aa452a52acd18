package textshape

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the text direction of a script run.
type Direction int

const (
	// DirectionLTR is left-to-right text (Latin, Cyrillic, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Align specifies horizontal alignment relative to the layout origin.
type Align int

const (
	// AlignLeft places the origin at the left edge of the text (default).
	AlignLeft Align = iota
	// AlignCenter centers the text on the origin.
	AlignCenter
	// AlignRight places the origin at the right edge of the text.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Baseline specifies the vertical reference line for glyph placement.
type Baseline int

const (
	// BaselineAlphabetic places the origin on the alphabetic baseline (default).
	BaselineAlphabetic Baseline = iota
	// BaselineTop places the origin at the font ascender.
	BaselineTop
	// BaselineMiddle places the origin midway between ascender and descender.
	BaselineMiddle
	// BaselineBottom places the origin at the font descender.
	BaselineBottom
)

// String returns the string representation of the baseline.
func (b Baseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "Alphabetic"
	case BaselineTop:
		return "Top"
	case BaselineMiddle:
		return "Middle"
	case BaselineBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// Weight is a font weight on the usual 100–900 OpenType scale.
type Weight uint16

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// WidthClass is a font width on the OpenType usWidthClass scale (1–9).
type WidthClass uint8

const (
	WidthUltraCondensed WidthClass = 1 + iota
	WidthExtraCondensed
	WidthCondensed
	WidthSemiCondensed
	WidthNormal
	WidthSemiExpanded
	WidthExpanded
	WidthExtraExpanded
	WidthUltraExpanded
)

// Slant is the slant style of a font face.
type Slant uint8

const (
	// SlantNormal is an upright face (default).
	SlantNormal Slant = iota
	// SlantItalic is a cursive italic face.
	SlantItalic
	// SlantOblique is a slanted roman face.
	SlantOblique
)

// String returns the string representation of the slant.
func (s Slant) String() string {
	switch s {
	case SlantNormal:
		return "Normal"
	case SlantItalic:
		return "Italic"
	case SlantOblique:
		return "Oblique"
	default:
		return unknownStr
	}
}

// RenderMode selects how the glyphs will be rendered. It only affects
// layout padding, never glyph shapes.
type RenderMode int

const (
	// RenderFill renders filled glyph outlines (default).
	RenderFill RenderMode = iota
	// RenderStroke renders stroked glyph outlines with a line width.
	RenderStroke
)

// String returns the string representation of the render mode.
func (m RenderMode) String() string {
	switch m {
	case RenderFill:
		return "Fill"
	case RenderStroke:
		return "Stroke"
	default:
		return unknownStr
	}
}
