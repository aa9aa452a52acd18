// Command shapecli shapes a string with the given fonts and prints the
// resulting script runs, glyph table and layout box.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gocanvas/textshape"
)

func main() {
	var (
		fonts      = flag.String("fonts", "", "comma-separated font file paths (family defaults to file name)")
		systemFont = flag.String("system", "", "system font name to locate and register (e.g. DejaVuSans.ttf)")
		size       = flag.Float64("size", 24, "font size in pixels")
		align      = flag.String("align", "left", "alignment: left, center, right")
		input      = flag.String("text", "Hello, world!", "text to shape")
	)
	flag.Parse()

	db := textshape.NewFontDB()
	var families []string

	for _, path := range splitList(*fonts) {
		family := familyFromPath(path)
		if _, err := db.AddFontFile(path, family); err != nil {
			log.Fatalf("Failed to load %s: %v", path, err)
		}
		families = append(families, family)
	}
	if *systemFont != "" {
		family := familyFromPath(*systemFont)
		if _, err := db.AddSystemFont(*systemFont, family); err != nil {
			log.Fatalf("Failed to locate system font %s: %v", *systemFont, err)
		}
		families = append(families, family)
	}
	if db.Len() == 0 {
		log.Fatal("No fonts registered; pass -fonts or -system")
	}

	style := textshape.TextStyle{
		Size:         *size,
		FontFamilies: families,
		Align:        parseAlign(*align),
	}

	printRuns(*input)

	shaper := textshape.NewShaper()
	layout, err := shaper.Shape(0, 0, db, &style, *input)
	if err != nil {
		log.Fatalf("Shaping failed: %v", err)
	}

	printGlyphs(&layout)
	pterm.Info.Printf("layout origin=(%.1f, %.1f) width=%.1f height=%.1f glyphs=%d\n",
		layout.X, layout.Y, layout.Width, layout.Height, len(layout.Glyphs))
}

func printRuns(text string) {
	data := pterm.TableData{{"Script", "Direction", "Text"}}
	for run := range textshape.Runs(text) {
		data = append(data, []string{run.Script.String(), run.Direction.String(), run.Text})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printGlyphs(layout *textshape.TextLayout) {
	data := pterm.TableData{{"Rune", "Glyph", "Font", "X", "Y", "AdvX"}}
	for _, g := range layout.Glyphs {
		data = append(data, []string{
			fmt.Sprintf("%q", g.Rune),
			fmt.Sprintf("%d", g.Codepoint),
			fmt.Sprintf("%d", g.FontID),
			fmt.Sprintf("%.1f", g.X),
			fmt.Sprintf("%.1f", g.Y),
			fmt.Sprintf("%.1f", g.AdvanceX),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func parseAlign(s string) textshape.Align {
	switch strings.ToLower(s) {
	case "center":
		return textshape.AlignCenter
	case "right":
		return textshape.AlignRight
	default:
		return textshape.AlignLeft
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// familyFromPath derives a family name from a font file path, e.g.
// "fonts/Roboto-Regular.ttf" becomes "Roboto-Regular".
func familyFromPath(path string) string {
	name := path
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}
