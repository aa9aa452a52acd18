package textshape

import (
	"errors"
	"testing"
)

// newTestFont builds a synthetic font with fixed design metrics
// (upem 1000, ascender 800, descender -200) and no parsed face. Glyph ink
// boxes can be injected through the extents cache.
func newTestFont(id FontID, family string, weight Weight, width WidthClass, slant Slant) *Font {
	return &Font{
		id:        id,
		family:    family,
		weight:    weight,
		width:     width,
		slant:     slant,
		upem:      1000,
		ascender:  800,
		descender: -200,
		extents:   make(map[uint32]glyphExtents),
	}
}

func TestAddFontRejectsEmptyData(t *testing.T) {
	db := NewFontDB()
	if _, err := db.AddFont(nil, "Empty"); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Expected ErrEmptyFontData, got %v", err)
	}
	if db.Len() != 0 {
		t.Errorf("Expected no fonts registered, got %d", db.Len())
	}
}

func TestAddFontRejectsGarbageData(t *testing.T) {
	db := NewFontDB()
	_, err := db.AddFont([]byte("definitely not a font"), "Garbage")
	if err == nil {
		t.Fatal("Expected a parse error for garbage data")
	}
	if errors.Is(err, ErrEmptyFontData) {
		t.Error("A parse failure must not be reported as empty data")
	}
}

func TestFontLookup(t *testing.T) {
	db := NewFontDB()
	db.add(newTestFont(0, "Sans", WeightNormal, WidthNormal, SlantNormal))
	db.add(newTestFont(1, "Serif", WeightBold, WidthNormal, SlantItalic))

	if db.Len() != 2 {
		t.Fatalf("Expected Len 2, got %d", db.Len())
	}

	f, ok := db.Font(1)
	if !ok {
		t.Fatal("Expected font 1 to be found")
	}
	if f.ID() != 1 || f.Family() != "Serif" {
		t.Errorf("Expected font 1 Serif, got %d %s", f.ID(), f.Family())
	}

	if _, ok := db.Font(2); ok {
		t.Error("Expected lookup past the end to fail")
	}
}

func TestCandidatesOrdering(t *testing.T) {
	db := NewFontDB()
	db.add(newTestFont(0, "Serif", WeightNormal, WidthNormal, SlantNormal))
	db.add(newTestFont(1, "Sans", WeightBold, WidthNormal, SlantNormal))
	db.add(newTestFont(2, "Sans", WeightNormal, WidthNormal, SlantNormal))
	db.add(newTestFont(3, "Mono", WeightNormal, WidthNormal, SlantItalic))

	style := &TextStyle{Size: 16, FontFamilies: []string{"Sans"}}
	got := db.candidates(style)

	// Preferred family first with the closer style match leading, then the
	// rest by ascending style distance.
	want := []FontID{2, 1, 0, 3}
	if len(got) != len(want) {
		t.Fatalf("Expected %d candidates, got %d", len(want), len(got))
	}
	for i, f := range got {
		if f.ID() != want[i] {
			t.Errorf("Candidate %d: expected font %d, got %d", i, want[i], f.ID())
		}
	}
}

func TestCandidatesFamilyMatchIsCaseInsensitive(t *testing.T) {
	db := NewFontDB()
	db.add(newTestFont(0, "Roboto", WeightNormal, WidthNormal, SlantNormal))

	style := &TextStyle{Size: 16, FontFamilies: []string{"roboto"}}
	got := db.candidates(style)
	if len(got) != 1 || got[0].ID() != 0 {
		t.Errorf("Expected a case-insensitive family match, got %v", got)
	}
}

func TestFindFontEmptyDB(t *testing.T) {
	db := NewFontDB()
	style := &TextStyle{Size: 16}

	_, err := db.FindFont(style, func(*Font) ([]ShapedGlyph, bool, error) {
		t.Fatal("try must not be called without candidates")
		return nil, false, nil
	})
	if !errors.Is(err, ErrNoFontFound) {
		t.Errorf("Expected ErrNoFontFound, got %v", err)
	}
}

func TestFindFontFirstCleanWins(t *testing.T) {
	db := NewFontDB()
	db.add(newTestFont(0, "A", WeightNormal, WidthNormal, SlantNormal))
	db.add(newTestFont(1, "B", WeightNormal, WidthNormal, SlantNormal))
	db.add(newTestFont(2, "C", WeightNormal, WidthNormal, SlantNormal))

	calls := 0
	glyphs, err := db.FindFont(&TextStyle{Size: 16}, func(f *Font) ([]ShapedGlyph, bool, error) {
		calls++
		missing := f.ID() == 0
		return []ShapedGlyph{{FontID: f.ID(), Codepoint: 7}}, missing, nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected the search to stop at the first clean font, got %d calls", calls)
	}
	if len(glyphs) != 1 || glyphs[0].FontID != 1 {
		t.Errorf("Expected glyphs from font 1, got %+v", glyphs)
	}
}

func TestFindFontBestEffort(t *testing.T) {
	db := NewFontDB()
	db.add(newTestFont(0, "A", WeightNormal, WidthNormal, SlantNormal))
	db.add(newTestFont(1, "B", WeightNormal, WidthNormal, SlantNormal))

	// Every font reports a missing glyph, so the last attempt is kept.
	glyphs, err := db.FindFont(&TextStyle{Size: 16}, func(f *Font) ([]ShapedGlyph, bool, error) {
		return []ShapedGlyph{{FontID: f.ID()}}, true, nil
	})
	if err != nil {
		t.Fatalf("Best-effort result must not error: %v", err)
	}
	if len(glyphs) != 1 || glyphs[0].FontID != 1 {
		t.Errorf("Expected the last attempted font's glyphs, got %+v", glyphs)
	}
}

func TestFindFontAllErrors(t *testing.T) {
	db := NewFontDB()
	db.add(newTestFont(0, "A", WeightNormal, WidthNormal, SlantNormal))

	engineErr := errors.New("engine down")
	_, err := db.FindFont(&TextStyle{Size: 16}, func(*Font) ([]ShapedGlyph, bool, error) {
		return nil, false, engineErr
	})
	if !errors.Is(err, ErrShapingFailed) {
		t.Errorf("Expected ErrShapingFailed, got %v", err)
	}
	if !errors.Is(err, engineErr) {
		t.Errorf("Expected the engine error to be wrapped, got %v", err)
	}
}

func TestStyleScore(t *testing.T) {
	style := &TextStyle{Size: 16, Weight: WeightNormal, WidthClass: WidthNormal}

	exact := newTestFont(0, "A", WeightNormal, WidthNormal, SlantNormal)
	bold := newTestFont(1, "A", WeightBold, WidthNormal, SlantNormal)
	narrow := newTestFont(2, "A", WeightNormal, WidthCondensed, SlantNormal)
	italic := newTestFont(3, "A", WeightNormal, WidthNormal, SlantItalic)

	if got := styleScore(exact, style); got != 0 {
		t.Errorf("Expected exact match score 0, got %d", got)
	}
	if got := styleScore(bold, style); got != 300 {
		t.Errorf("Expected weight distance 300, got %d", got)
	}
	if got := styleScore(narrow, style); got != 200 {
		t.Errorf("Expected two width steps to score 200, got %d", got)
	}
	if got := styleScore(italic, style); got != 1000 {
		t.Errorf("Expected slant mismatch to score 1000, got %d", got)
	}
	if !(styleScore(italic, style) > styleScore(bold, style)) {
		t.Error("A slant mismatch must outweigh any weight distance")
	}
}
