package textshape

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
)

// FontOption configures font registration.
type FontOption func(*fontConfig)

// fontConfig holds the style descriptor attached to a registered font.
type fontConfig struct {
	weight Weight
	width  WidthClass
	slant  Slant
}

func defaultFontConfig() fontConfig {
	return fontConfig{
		weight: WeightNormal,
		width:  WidthNormal,
		slant:  SlantNormal,
	}
}

// WithWeight sets the weight the font is registered under.
func WithWeight(w Weight) FontOption {
	return func(c *fontConfig) { c.weight = w }
}

// WithWidthClass sets the width class the font is registered under.
func WithWidthClass(w WidthClass) FontOption {
	return func(c *fontConfig) { c.width = w }
}

// WithSlant sets the slant the font is registered under.
func WithSlant(s Slant) FontOption {
	return func(c *fontConfig) { c.slant = s }
}

// FontDB is the registry of loaded fonts consulted by the shaper, both for
// direct lookups by FontID and for style-driven fallback search.
//
// FontDB is not safe for concurrent use. Any mutation of the font set (Add*
// calls) invalidates previously cached shaping results; callers must invoke
// [Shaper.ClearCache] on every shaper that used this FontDB afterwards.
type FontDB struct {
	fonts []*Font
}

// NewFontDB creates an empty font registry.
func NewFontDB() *FontDB {
	return &FontDB{}
}

// AddFont registers a font from raw TTF/OTF data under the given family
// name and returns its FontID. The data slice is read during parsing and
// not retained.
func (db *FontDB) AddFont(data []byte, family string, opts ...FontOption) (FontID, error) {
	if len(data) == 0 {
		return 0, ErrEmptyFontData
	}

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}

	id := FontID(len(db.fonts))
	f, err := newFont(id, data, family, config.weight, config.width, config.slant)
	if err != nil {
		return 0, err
	}
	db.add(f)

	Logger().Debug("font registered",
		slog.String("family", family),
		slog.Uint64("id", uint64(id)),
		slog.String("slant", config.slant.String()))

	return id, nil
}

// AddFontFile registers a font loaded from a file path.
func (db *FontDB) AddFontFile(path, family string, opts ...FontOption) (FontID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("textshape: reading font file: %w", err)
	}
	return db.AddFont(data, family, opts...)
}

// AddSystemFont locates a font installed on the system by name (e.g.
// "DejaVuSans.ttf" or "arial") and registers it under the given family.
func (db *FontDB) AddSystemFont(name, family string, opts ...FontOption) (FontID, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return 0, fmt.Errorf("textshape: locating system font %q: %w", name, err)
	}
	return db.AddFontFile(path, family, opts...)
}

// add appends an already constructed font. Split out from AddFont so tests
// can register synthetic fonts without font data.
func (db *FontDB) add(f *Font) {
	db.fonts = append(db.fonts, f)
}

// Font returns the font registered under id.
func (db *FontDB) Font(id FontID) (*Font, bool) {
	if int(id) >= len(db.fonts) {
		return nil, false
	}
	return db.fonts[id], true
}

// Len returns the number of registered fonts.
func (db *FontDB) Len() int {
	return len(db.fonts)
}

// FindFont drives the fallback search for a word. It calls try with each
// candidate font in priority order: fonts from the style's preferred
// families first, then every other registered font ordered by style-match
// score. try reports the shaped glyphs and whether any glyph came back
// missing; the first font that shapes with zero missing glyphs wins. If no
// font shapes cleanly, the last attempted result is returned best-effort.
//
// ErrNoFontFound is returned when no candidate font exists; engine failures
// are surfaced wrapped in ErrShapingFailed when every candidate fails.
func (db *FontDB) FindFont(style *TextStyle, try func(*Font) (glyphs []ShapedGlyph, missing bool, err error)) ([]ShapedGlyph, error) {
	candidates := db.candidates(style)
	if len(candidates) == 0 {
		return nil, ErrNoFontFound
	}

	var (
		lastGlyphs []ShapedGlyph
		lastErr    error
		attempted  bool
	)

	for _, f := range candidates {
		glyphs, missing, err := try(f)
		if err != nil {
			lastErr = err
			continue
		}
		attempted = true
		lastGlyphs = glyphs
		if !missing {
			return glyphs, nil
		}
	}

	if !attempted {
		return nil, fmt.Errorf("%w: %w", ErrShapingFailed, lastErr)
	}

	Logger().Debug("no font shaped word cleanly, using best-effort result",
		slog.Int("candidates", len(candidates)))
	return lastGlyphs, nil
}

// candidates returns all registered fonts ordered by preference for style:
// preferred families in their listed order, then the remaining fonts by
// ascending style-match score. The sort is stable so that registration
// order breaks ties deterministically.
func (db *FontDB) candidates(style *TextStyle) []*Font {
	out := make([]*Font, 0, len(db.fonts))
	seen := make(map[FontID]bool)

	for _, family := range style.FontFamilies {
		group := make([]*Font, 0, 2)
		for _, f := range db.fonts {
			if !seen[f.id] && strings.EqualFold(f.family, family) {
				group = append(group, f)
			}
		}
		sort.SliceStable(group, func(i, j int) bool {
			return styleScore(group[i], style) < styleScore(group[j], style)
		})
		for _, f := range group {
			seen[f.id] = true
			out = append(out, f)
		}
	}

	rest := make([]*Font, 0, len(db.fonts)-len(out))
	for _, f := range db.fonts {
		if !seen[f.id] {
			rest = append(rest, f)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return styleScore(rest[i], style) < styleScore(rest[j], style)
	})

	return append(out, rest...)
}

// styleScore measures how far a font's descriptor is from the requested
// style. Lower is better. Slant mismatch dominates, then width class, then
// weight distance.
func styleScore(f *Font, style *TextStyle) int {
	score := absInt(int(f.weight) - int(style.weight()))
	score += 100 * absInt(int(f.width)-int(style.widthClass()))
	if f.slant != style.Slant {
		score += 1000
	}
	return score
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
