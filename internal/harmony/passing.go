package harmony

import "github.com/Conceptual-Machines/magda-arranger/internal/theory"

// PassingMode selects how passing chords are generated
type PassingMode string

const (
	// PassingChromatic inserts a diminished 7th a half step below the target
	PassingChromatic PassingMode = "chromatic"
	// PassingDiatonic inserts the target's dominant 7th
	PassingDiatonic PassingMode = "diatonic"
)

// PassingChord computes the chord to insert between from and to. The from
// chord only gates degenerate cases (identical roots yield nothing to pass
// through).
func PassingChord(from, to theory.Chord, mode PassingMode) (theory.Chord, bool) {
	if from.Root == to.Root && from.Quality == to.Quality {
		return theory.Chord{}, false
	}

	switch mode {
	case PassingDiatonic:
		return theory.NewChord(to.Root+7, theory.QualityDom7, theory.NoBass, nil), true
	default:
		return theory.NewChord(to.Root-1, theory.QualityDim7, theory.NoBass, nil), true
	}
}

// InsertPassingChords walks a progression and inserts passing chords
// between adjacent pairs. Density in [0, 1] gates how many pairs receive
// one: 0 inserts nothing, 1 fills every gap, intermediate values fill
// every k-th gap deterministically.
func InsertPassingChords(progression []theory.Chord, mode PassingMode, density float64) []theory.Chord {
	if len(progression) < 2 || density <= 0 {
		return append([]theory.Chord(nil), progression...)
	}
	if density > 1 {
		density = 1
	}

	// Every k-th gap gets a passing chord: k = round(1/density).
	stride := int(1/density + 0.5)
	if stride < 1 {
		stride = 1
	}

	out := make([]theory.Chord, 0, len(progression)*2)
	for i, chord := range progression {
		out = append(out, chord)
		if i == len(progression)-1 {
			break
		}
		if i%stride != 0 {
			continue
		}
		if passing, ok := PassingChord(chord, progression[i+1], mode); ok {
			out = append(out, passing)
		}
	}
	return out
}
