package textshape

import (
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// HarfbuzzEngine is the default ShapingEngine, backed by
// go-text/typesetting's HarfBuzz implementation. It supports ligature
// substitution, kerning, contextual alternates and complex scripts
// (Arabic joining, Indic reordering, etc.).
//
// HarfbuzzEngine is not safe for concurrent use: the underlying shaper
// keeps an internal buffer between calls. Use one engine per Shaper.
type HarfbuzzEngine struct {
	shaper shaping.HarfbuzzShaper
}

// NewHarfbuzzEngine creates a HarfBuzz-backed shaping engine.
func NewHarfbuzzEngine() *HarfbuzzEngine {
	e := &HarfbuzzEngine{}
	e.shaper.SetFontCacheSize(64)
	return e
}

// ShapeWord implements ShapingEngine.
func (e *HarfbuzzEngine) ShapeWord(f *Font, word string, size float64, dir Direction, script language.Script) ([]GlyphInfo, error) {
	face := f.Face()
	if face == nil {
		return nil, fmt.Errorf("textshape: font %q has no parsed face", f.Family())
	}

	runes := []rune(word)
	if len(runes) == 0 {
		return nil, nil
	}

	output := e.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      face,
		Size:      floatToFixed(size),
		Script:    script,
		Language:  language.NewLanguage("en"),
	})

	glyphs := make([]GlyphInfo, len(output.Glyphs))
	for i, g := range output.Glyphs {
		info := GlyphInfo{
			Codepoint: uint32(g.GlyphID),
			AdvanceX:  fixedToFloat(g.XAdvance),
			AdvanceY:  fixedToFloat(g.YAdvance),
			OffsetX:   fixedToFloat(g.XOffset),
			OffsetY:   fixedToFloat(g.YOffset),
		}
		if idx := g.TextIndex(); idx >= 0 && idx < len(runes) {
			info.Rune = runes[idx]
		}
		glyphs[i] = info
	}

	return glyphs, nil
}

// mapDirection converts a run direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// floatToFixed converts a pixel size to fixed.Int26_6 (6 fractional bits).
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat de-scales a fixed.Int26_6 value to pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
