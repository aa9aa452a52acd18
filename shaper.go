package textshape

import (
	"github.com/gocanvas/textshape/internal/lru"
)

// defaultCacheCapacity bounds the per-shaper word cache.
const defaultCacheCapacity = 1000

// Option configures a Shaper.
type Option func(*shaperConfig)

type shaperConfig struct {
	cacheCapacity int
	engine        ShapingEngine
}

// WithCacheCapacity sets the maximum number of memoized word-shaping
// results. The default is 1000.
func WithCacheCapacity(n int) Option {
	return func(c *shaperConfig) { c.cacheCapacity = n }
}

// WithEngine replaces the default HarfBuzz shaping engine.
func WithEngine(e ShapingEngine) Option {
	return func(c *shaperConfig) { c.engine = e }
}

// Shaper converts text into positioned glyph sequences. It owns a bounded
// LRU cache of per-word shaping results that persists across Shape calls.
//
// A Shaper requires exclusive, non-re-entrant access for the duration of a
// Shape call: no concurrent calls against the same instance. Independent
// Shaper instances share no state and may run on separate goroutines
// without coordination.
type Shaper struct {
	cache  *lru.Cache[shapingKey, shapedWord]
	engine ShapingEngine
}

// NewShaper creates a Shaper with the default HarfBuzz engine and a cache
// of 1000 word entries, unless overridden by options.
func NewShaper(opts ...Option) *Shaper {
	config := shaperConfig{cacheCapacity: defaultCacheCapacity}
	for _, opt := range opts {
		opt(&config)
	}
	if config.engine == nil {
		config.engine = NewHarfbuzzEngine()
	}
	return &Shaper{
		cache:  lru.New[shapingKey, shapedWord](config.cacheCapacity),
		engine: config.engine,
	}
}

// ClearCache drops all memoized shaping results. It must be called after
// any change to the set of fonts in the FontDB used with this shaper:
// cached glyphs carry font identifiers and per-font metrics that would
// otherwise go stale.
func (s *Shaper) ClearCache() {
	s.cache.Clear()
}

// CacheLen returns the number of memoized word-shaping results.
func (s *Shaper) CacheLen() int {
	return s.cache.Len()
}

// Shape shapes and lays out text at origin (x, y) with the given style,
// resolving fonts through db.
//
// The text is segmented into script runs, each run split into
// space-inclusive words, and each word shaped through the cache. A word
// whose shaping fails contributes no glyphs but does not abort the call;
// the failure is memoized. A glyph whose font identifier cannot be resolved
// at layout time aborts the whole call with ErrNoFontFound and no layout is
// returned.
func (s *Shaper) Shape(x, y float64, db *FontDB, style *TextStyle, text string) (TextLayout, error) {
	result := TextLayout{}

	for run := range Runs(text) {
		for _, word := range splitWords(run) {
			res, ok := s.cache.Get(newShapingKey(style, word))
			if !ok {
				res = s.shapeWord(db, style, run, word)
				s.cache.Put(newShapingKey(style, word), res)
			}
			if res.err == nil {
				result.Glyphs = append(result.Glyphs, res.glyphs...)
			}
		}
	}

	if err := layoutGlyphs(x, y, db, &result, style); err != nil {
		return TextLayout{}, err
	}
	return result, nil
}

// shapeWord performs the uncached work for one word: font fallback search,
// engine shaping, and ink-bounds lookup for every resulting glyph.
func (s *Shaper) shapeWord(db *FontDB, style *TextStyle, run Run, word string) shapedWord {
	glyphs, err := db.FindFont(style, func(f *Font) ([]ShapedGlyph, bool, error) {
		infos, err := s.engine.ShapeWord(f, word, style.Size, run.Direction, run.Script)
		if err != nil {
			return nil, false, err
		}

		missing := false
		out := make([]ShapedGlyph, 0, len(infos))
		for _, info := range infos {
			if info.Codepoint == 0 {
				missing = true
			}

			g := ShapedGlyph{
				Rune:      info.Rune,
				FontID:    f.ID(),
				Codepoint: info.Codepoint,
				AdvanceX:  info.AdvanceX,
				AdvanceY:  info.AdvanceY,
				OffsetX:   info.OffsetX,
				OffsetY:   info.OffsetY,
			}
			if b, ok := f.GlyphBounds(info.Codepoint, style.Size); ok {
				g.Width = b.Width
				g.Height = b.Height
				g.BearingX = b.BearingX
				g.BearingY = b.BearingY
			}
			out = append(out, g)
		}
		return out, missing, nil
	})
	if err != nil {
		return shapedWord{err: err}
	}
	return shapedWord{glyphs: glyphs}
}
