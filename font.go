package textshape

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// FontID identifies a font within a FontDB. IDs are assigned at
// registration time and stay valid until the FontDB is discarded.
type FontID uint32

// InkBounds is the ink bounding box of a glyph, scaled to a font size.
type InkBounds struct {
	// Width and Height are the dimensions of the ink box.
	Width  float64
	Height float64

	// BearingX and BearingY are the offsets from the pen position to the
	// left and top edges of the ink box.
	BearingX float64
	BearingY float64
}

// Font is one registered font face together with its design metrics.
// Metrics queries scale lazily to the requested size; glyph ink extents are
// cached per glyph on first access, which is why the shaper needs mutable
// access to fonts during layout.
//
// Font is not safe for concurrent use (the underlying parsed face keeps
// internal glyph caches), matching the exclusive-access contract of Shaper.
type Font struct {
	id     FontID
	family string
	weight Weight
	width  WidthClass
	slant  Slant

	face *font.Face

	// Design-space metrics, in font units.
	upem      float64
	ascender  float64
	descender float64 // negative below the baseline
	lineGap   float64

	// extents caches glyph ink boxes in font units.
	extents map[uint32]glyphExtents
}

// glyphExtents is a cached ink box in font units. ok records whether the
// font reported an outline for the glyph at all, so that empty outlines
// (e.g. spaces) are negative-cached too.
type glyphExtents struct {
	xBearing float64
	yBearing float64
	width    float64
	height   float64
	ok       bool
}

// newFont parses TTF/OTF data and captures the design metrics used during
// layout. The descriptor fields are used for style matching in FontDB.
func newFont(id FontID, data []byte, family string, weight Weight, width WidthClass, slant Slant) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textshape: parsing font %q: %w", family, err)
	}

	upem := float64(face.Upem())
	if upem == 0 {
		upem = 1000
	}

	f := &Font{
		id:      id,
		family:  family,
		weight:  weight,
		width:   width,
		slant:   slant,
		face:    face,
		upem:    upem,
		extents: make(map[uint32]glyphExtents),
	}

	if ext, ok := face.FontHExtents(); ok {
		f.ascender = float64(ext.Ascender)
		f.descender = float64(ext.Descender)
		f.lineGap = float64(ext.LineGap)
	} else {
		// Fonts without an hhea/OS2 table are rare; approximate with the
		// conventional 80/20 split of the em square.
		f.ascender = 0.8 * upem
		f.descender = -0.2 * upem
	}

	return f, nil
}

// ID returns the identifier assigned by the owning FontDB.
func (f *Font) ID() FontID { return f.id }

// Family returns the family name the font was registered under.
func (f *Font) Family() string { return f.family }

// Face returns the parsed typesetting face, for use by shaping engines.
// It is nil only for synthetic fonts constructed in tests.
func (f *Font) Face() *font.Face { return f.face }

// Scale returns the design-units-to-pixels factor at the given size.
func (f *Font) Scale(size float64) float64 { return size / f.upem }

// Ascender returns the scaled distance from the baseline to the top of the
// font (positive, pointing down-screen in canvas coordinates).
func (f *Font) Ascender(size float64) float64 { return f.ascender * f.Scale(size) }

// Descender returns the scaled distance from the baseline to the bottom of
// the font (negative).
func (f *Font) Descender(size float64) float64 { return f.descender * f.Scale(size) }

// LineHeight returns the scaled recommended distance between baselines.
func (f *Font) LineHeight(size float64) float64 {
	return (f.ascender - f.descender + f.lineGap) * f.Scale(size)
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Font) HasGlyph(r rune) bool {
	if f.face == nil {
		return false
	}
	_, ok := f.face.NominalGlyph(r)
	return ok
}

// GlyphBounds returns the ink bounding box of a glyph scaled to size.
// The box is queried from the font outline once and cached in design units.
// ok is false when the font reports no outline for the glyph (e.g. spaces
// and other blank glyphs).
func (f *Font) GlyphBounds(codepoint uint32, size float64) (InkBounds, bool) {
	ext, cached := f.extents[codepoint]
	if !cached {
		if f.face == nil {
			return InkBounds{}, false
		}
		if ge, ok := f.face.GlyphExtents(font.GID(codepoint)); ok {
			ext = glyphExtents{
				xBearing: float64(ge.XBearing),
				yBearing: float64(ge.YBearing),
				width:    float64(ge.Width),
				height:   -float64(ge.Height), // reported negative (top-to-bottom)
				ok:       true,
			}
		}
		f.extents[codepoint] = ext
	}

	if !ext.ok {
		return InkBounds{}, false
	}

	scale := f.Scale(size)
	return InkBounds{
		Width:    ext.width * scale,
		Height:   ext.height * scale,
		BearingX: ext.xBearing * scale,
		BearingY: ext.yBearing * scale,
	}, true
}
