package textshape

import (
	"iter"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Run is a maximal substring sharing one Unicode script and one direction.
// Runs are transient: they exist only while iterating a sequence produced
// by Runs and are never stored by the shaper.
type Run struct {
	// Script is the concrete script of the run, or a wildcard script
	// (Common/Inherited) when the run contains no concrete-script character.
	Script language.Script

	// Direction is fixed by the bidi class of the run's first character.
	Direction Direction

	// Text is the run's substring of the original input.
	Text string
}

// Runs returns a lazily evaluated sequence of script runs for text.
// The sequence is finite and restartable: ranging over it again re-walks
// the input from the start.
//
// A run accumulates consecutive characters while script compatibility
// holds. The pseudo-scripts Common and Inherited act as wildcards: a run
// whose concrete script is still undetermined adopts the next concrete
// script it meets, and a wildcard character extends the current run
// regardless of its script. A boundary is emitted when two concrete
// scripts differ. Empty input yields an empty sequence; input with only
// wildcard characters yields a single left-to-right run.
func Runs(text string) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		var (
			start     int
			runScript language.Script
			runDir    Direction
			active    bool
		)

		for i, r := range text {
			sc := language.LookupScript(r)
			if !active {
				start, runScript, runDir = i, sc, runeDirection(r)
				active = true
				continue
			}

			next := sc
			if isWildcardScript(next) {
				next = runScript
			}
			if isWildcardScript(runScript) {
				runScript = next
			}
			if next == runScript {
				continue
			}

			if !yield(Run{Script: runScript, Direction: runDir, Text: text[start:i]}) {
				return
			}
			start, runScript, runDir = i, sc, runeDirection(r)
		}

		if active {
			yield(Run{Script: runScript, Direction: runDir, Text: text[start:]})
		}
	}
}

// isWildcardScript reports whether sc is one of the pseudo-scripts that
// extend any run.
func isWildcardScript(sc language.Script) bool {
	return sc == language.Common || sc == language.Inherited
}

// runeDirection maps a character's bidi class to a binary run direction.
// Strong right-to-left classes (R, AL) select RTL; everything else,
// including neutrals and weak classes, defaults to LTR.
func runeDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.R, bidi.AL:
		return DirectionRTL
	default:
		return DirectionLTR
	}
}
