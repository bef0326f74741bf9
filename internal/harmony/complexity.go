package harmony

import "github.com/Conceptual-Machines/magda-arranger/internal/theory"

// ComplexityTier names a vocabulary tier for chord complexity
type ComplexityTier int

const (
	TierTriad ComplexityTier = iota + 1
	TierSeventh
	TierNinth
	TierEleventh
	TierThirteenth
)

// AdjustComplexity maps a chord onto the requested vocabulary tier by
// quality substitution and extension-list replacement. Tiers outside the
// known range clamp to the nearest tier. The input is not modified.
func AdjustComplexity(chord theory.Chord, tier ComplexityTier) theory.Chord {
	if tier < TierTriad {
		tier = TierTriad
	}
	if tier > TierThirteenth {
		tier = TierThirteenth
	}

	minor := isMinorFamily(chord.Quality)

	var quality theory.Quality
	var extensions []int

	switch tier {
	case TierTriad:
		quality = TriadOf(chord.Quality)
	case TierSeventh:
		if minor {
			quality = theory.QualityMin7
		} else if chord.Quality == theory.QualityMaj7 || chord.Quality == theory.QualityMaj9 {
			quality = theory.QualityMaj7
		} else {
			quality = theory.QualityDom7
		}
	case TierNinth:
		if minor {
			quality = theory.QualityMin9
		} else if chord.Quality == theory.QualityMaj7 || chord.Quality == theory.QualityMaj9 {
			quality = theory.QualityMaj9
		} else {
			quality = theory.QualityNine
		}
		extensions = []int{9}
	case TierEleventh:
		if minor {
			quality = theory.QualityMin11
		} else {
			quality = theory.QualityEleven
		}
		extensions = []int{9, 11}
	case TierThirteenth:
		if minor {
			quality = theory.QualityMin13
		} else {
			quality = theory.QualityThirteen
		}
		extensions = []int{9, 11, 13}
	}

	out := theory.NewChord(chord.Root, quality, chord.Bass, chord.SourceNotes)
	out.Extensions = extensions
	return out
}
