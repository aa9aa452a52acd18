// Package textshape turns text strings into positioned glyph sequences for
// 2D canvas rendering. It sits between a font store and a rasterizer: given
// a string and a TextStyle, it segments the text into script runs, shapes
// each word through a HarfBuzz-level shaping engine, and lays the resulting
// glyphs out with alignment, baseline and letter-spacing applied.
//
// The pipeline is:
//
//   - Script segmentation: the input is split into maximal runs of a single
//     Unicode script and direction (see [Runs]).
//   - Word shaping: each run is split into space-inclusive words; every word
//     is shaped independently and memoized in a bounded LRU cache keyed by
//     the shape-relevant style attributes and the word text.
//   - Layout: the concatenated glyphs receive final pen positions, and the
//     bounding metrics of the whole string are computed.
//
// # Example usage
//
//	db := textshape.NewFontDB()
//	if _, err := db.AddFontFile("Roboto-Regular.ttf", "Roboto"); err != nil {
//	    log.Fatal(err)
//	}
//
//	shaper := textshape.NewShaper()
//	style := textshape.TextStyle{
//	    Size:         24,
//	    FontFamilies: []string{"Roboto"},
//	}
//	layout, err := shaper.Shape(100, 100, db, &style, "Hello, world!")
//
// A Shaper owns its cache and requires exclusive access for the duration of
// a Shape call; independent Shaper instances may be used from different
// goroutines without coordination. The cache must be invalidated with
// [Shaper.ClearCache] whenever the set of fonts in the FontDB changes,
// otherwise stale font identifiers and metrics would be returned.
//
// # Known limitation
//
// Right-to-left runs are approximated by reversing their word order; glyphs
// within each word keep logical order and are reordered by the shaping
// engine. This is a run-level approximation of the Unicode bidirectional
// algorithm: embedding levels and reordering of mixed-direction sub-runs are
// not implemented.
package textshape
