// Package harmony provides pure chord-to-chord rewrite functions:
// substitutions, tension shaping, passing chords, pedal tones, complexity
// tiers and modal recolorings. No function mutates its input.
package harmony

import "github.com/Conceptual-Machines/magda-arranger/internal/theory"

// SubstitutionKind names a harmonic substitution strategy
type SubstitutionKind string

const (
	SubTritone          SubstitutionKind = "tritone"
	SubRelativeMinor    SubstitutionKind = "relative_minor"
	SubRelativeMajor    SubstitutionKind = "relative_major"
	SubSecondaryDom     SubstitutionKind = "secondary_dominant"
	SubDiminishedPass   SubstitutionKind = "diminished_passing"
	SubModalInterchange SubstitutionKind = "modal_interchange"
	SubExtension        SubstitutionKind = "extension"
	SubSimplification   SubstitutionKind = "simplification"
)

// Substitution pairs an alternative chord with the strategy that produced it
type Substitution struct {
	Kind  SubstitutionKind `json:"kind"`
	Chord theory.Chord     `json:"chord"`
}

// Substitutions computes the alternative chords available for the input
// under the requested strategies (all strategies when kinds is empty).
// Strategies that do not apply to the chord's quality contribute nothing.
func Substitutions(chord theory.Chord, kinds ...SubstitutionKind) []Substitution {
	if len(kinds) == 0 {
		kinds = []SubstitutionKind{
			SubTritone, SubRelativeMinor, SubRelativeMajor, SubSecondaryDom,
			SubDiminishedPass, SubModalInterchange, SubExtension, SubSimplification,
		}
	}

	out := make([]Substitution, 0, len(kinds))
	for _, kind := range kinds {
		if sub, ok := substitute(chord, kind); ok {
			out = append(out, Substitution{Kind: kind, Chord: sub})
		}
	}
	return out
}

func substitute(chord theory.Chord, kind SubstitutionKind) (theory.Chord, bool) {
	switch kind {
	case SubTritone:
		// Dominant function survives a root a tritone away.
		return theory.NewChord(chord.Root+6, theory.QualityDom7, theory.NoBass, nil), true

	case SubRelativeMinor:
		if isMinorFamily(chord.Quality) {
			return theory.Chord{}, false
		}
		return theory.NewChord(chord.Root+9, theory.QualityMinor, theory.NoBass, nil), true

	case SubRelativeMajor:
		if !isMinorFamily(chord.Quality) {
			return theory.Chord{}, false
		}
		return theory.NewChord(chord.Root+3, theory.QualityMajor, theory.NoBass, nil), true

	case SubSecondaryDom:
		// V7 of the chord: a fifth above the target root.
		return theory.NewChord(chord.Root+7, theory.QualityDom7, theory.NoBass, nil), true

	case SubDiminishedPass:
		return theory.NewChord(chord.Root+1, theory.QualityDim7, theory.NoBass, nil), true

	case SubModalInterchange:
		// Borrow the parallel quality.
		if isMinorFamily(chord.Quality) {
			return theory.NewChord(chord.Root, theory.QualityMajor, theory.NoBass, nil), true
		}
		return theory.NewChord(chord.Root, theory.QualityMinor, theory.NoBass, nil), true

	case SubExtension:
		next, ok := extendedQuality(chord.Quality)
		if !ok {
			return theory.Chord{}, false
		}
		return theory.NewChord(chord.Root, next, theory.NoBass, nil), true

	case SubSimplification:
		simple := TriadOf(chord.Quality)
		if simple == chord.Quality {
			return theory.Chord{}, false
		}
		return theory.NewChord(chord.Root, simple, theory.NoBass, nil), true
	}

	return theory.Chord{}, false
}

// extendedQuality promotes a quality one vocabulary step upward
func extendedQuality(q theory.Quality) (theory.Quality, bool) {
	switch q {
	case theory.QualityMajor:
		return theory.QualityMaj7, true
	case theory.QualityMinor:
		return theory.QualityMin7, true
	case theory.QualityDom7:
		return theory.QualityNine, true
	case theory.QualityMaj7:
		return theory.QualityMaj9, true
	case theory.QualityMin7:
		return theory.QualityMin9, true
	case theory.QualityNine:
		return theory.QualityEleven, true
	case theory.QualityMin9:
		return theory.QualityMin11, true
	case theory.QualityEleven:
		return theory.QualityThirteen, true
	case theory.QualityMin11:
		return theory.QualityMin13, true
	}
	return q, false
}

// TriadOf collapses any quality to its underlying triad
func TriadOf(q theory.Quality) theory.Quality {
	switch q {
	case theory.QualityMinor, theory.QualityMin7, theory.QualityMin6,
		theory.QualityMin9, theory.QualityMin11, theory.QualityMin13:
		return theory.QualityMinor
	case theory.QualityDim, theory.QualityDim7, theory.QualityHalfDim7:
		return theory.QualityDim
	case theory.QualityAug:
		return theory.QualityAug
	case theory.QualitySus2:
		return theory.QualitySus2
	case theory.QualitySus4:
		return theory.QualitySus4
	default:
		return theory.QualityMajor
	}
}

func isMinorFamily(q theory.Quality) bool {
	switch q {
	case theory.QualityMinor, theory.QualityMin6, theory.QualityMin7,
		theory.QualityMin9, theory.QualityMin11, theory.QualityMin13:
		return true
	}
	return false
}

// ApplyPedalTone overwrites the chord's bass with a fixed pitch class and
// regenerates its symbol as a slash chord. The input is not modified.
func ApplyPedalTone(chord theory.Chord, pedal int) theory.Chord {
	return chord.WithBass(pedal)
}
