package harmony

import "github.com/Conceptual-Machines/magda-arranger/internal/theory"

// Per-item tension contributions on top of the quality base weight
const (
	extensionWeight  = 0.1
	alterationWeight = 0.15
)

// qualityTension assigns each quality a fixed dissonance weight. Consonant
// triads sit near zero, extended chords in the 0.35-0.45 band, diminished
// and augmented colors above 0.55.
var qualityTension = map[theory.Quality]float64{
	theory.QualityMajor:    0.0,
	theory.QualityMinor:    0.05,
	theory.QualityPower:    0.0,
	theory.QualitySix:      0.15,
	theory.QualityMin6:     0.2,
	theory.QualitySus2:     0.2,
	theory.QualitySus4:     0.2,
	theory.QualityMaj7:     0.25,
	theory.QualityMin7:     0.25,
	theory.QualityDom7:     0.3,
	theory.QualityNine:     0.35,
	theory.QualityMin9:     0.35,
	theory.QualityMaj9:     0.35,
	theory.QualityEleven:   0.4,
	theory.QualityMin11:    0.4,
	theory.QualityThirteen: 0.45,
	theory.QualityMin13:    0.45,
	theory.QualityHalfDim7: 0.55,
	theory.QualityAug:      0.6,
	theory.QualityDim:      0.6,
	theory.QualityDim7:     0.7,
}

// TensionScore rates a chord's harmonic tension in [0, 1]
func TensionScore(chord theory.Chord) float64 {
	score := qualityTension[chord.Quality]
	score += float64(len(chord.Extensions)) * extensionWeight
	score += float64(len(chord.Alterations)) * alterationWeight
	if score > 1 {
		score = 1
	}
	return score
}

// AdjustTension rewrites the chord toward a target tension. Raising adds
// extensions (9 first, then 11); lowering strips extensions and
// alterations, collapsing to the plain triad when the target is low enough.
// Returns a new chord; the input is untouched.
func AdjustTension(chord theory.Chord, target float64) theory.Chord {
	if target < 0 {
		target = 0
	}
	if target > 1 {
		target = 1
	}

	current := TensionScore(chord)
	switch {
	case target > current:
		return raiseTension(chord, target)
	case target < current:
		return lowerTension(chord, target)
	default:
		return chord
	}
}

func raiseTension(chord theory.Chord, target float64) theory.Chord {
	out := chord
	out.Extensions = append([]int(nil), chord.Extensions...)
	out.Alterations = append([]string(nil), chord.Alterations...)

	for _, degree := range []int{9, 11} {
		if TensionScore(out) >= target {
			break
		}
		if containsInt(out.Extensions, degree) {
			continue
		}
		out.Extensions = append(out.Extensions, degree)
	}
	return out
}

func lowerTension(chord theory.Chord, target float64) theory.Chord {
	out := chord
	out.Extensions = nil
	out.Alterations = nil

	if TensionScore(out) > target {
		out = theory.NewChord(out.Root, TriadOf(out.Quality), out.Bass, out.SourceNotes)
	}
	return out
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
