package harmony

import "github.com/Conceptual-Machines/magda-arranger/internal/theory"

// Mode names a modal color for recoloring suggestions
type Mode string

const (
	ModeMajor      Mode = "major"
	ModeMinor      Mode = "minor"
	ModeDorian     Mode = "dorian"
	ModeMixolydian Mode = "mixolydian"
	ModeLydian     Mode = "lydian"
	ModePhrygian   Mode = "phrygian"
	ModeLocrian    Mode = "locrian"
)

// ColorSuggestion proposes an alternative quality/alteration set for the
// same root, in a given modal color.
type ColorSuggestion struct {
	Mode  Mode         `json:"mode"`
	Chord theory.Chord `json:"chord"`
}

// modeColors maps each mode to the quality and alterations it implies on a
// chord root treated as the mode's tonal center.
var modeColors = map[Mode]struct {
	quality     theory.Quality
	alterations []string
}{
	ModeMajor:      {theory.QualityMaj7, nil},
	ModeMinor:      {theory.QualityMin7, []string{"b6"}},
	ModeDorian:     {theory.QualityMin7, []string{"13"}},
	ModeMixolydian: {theory.QualityDom7, nil},
	ModeLydian:     {theory.QualityMaj7, []string{"#11"}},
	ModePhrygian:   {theory.QualityMin7, []string{"b9"}},
	ModeLocrian:    {theory.QualityHalfDim7, []string{"b9"}},
}

// colorOrder fixes the order suggestions are produced in
var colorOrder = []Mode{
	ModeMajor, ModeMinor, ModeDorian, ModeMixolydian,
	ModeLydian, ModePhrygian, ModeLocrian,
}

// SuggestColors proposes modal recolorings of the chord on the same root,
// one per mode, in a fixed order.
func SuggestColors(chord theory.Chord) []ColorSuggestion {
	out := make([]ColorSuggestion, 0, len(colorOrder))
	for _, mode := range colorOrder {
		out = append(out, ColorSuggestion{Mode: mode, Chord: colorChord(chord, mode)})
	}
	return out
}

// SuggestColorForKey auto-selects one modal recoloring by comparing the
// chord's position in the prevailing key to its circle-of-fifths function:
// dominant-function chords bias toward mixolydian, subdominant toward
// lydian or dorian, tonic toward major or minor, and the rest keep their
// diatonic color.
func SuggestColorForKey(chord theory.Chord, keyRoot int, keyMinor bool) ColorSuggestion {
	degree := theory.PitchClass(chord.Root - keyRoot)

	var mode Mode
	switch degree {
	case 7: // dominant
		mode = ModeMixolydian
	case 5: // subdominant
		if keyMinor {
			mode = ModeDorian
		} else {
			mode = ModeLydian
		}
	case 0: // tonic
		if keyMinor {
			mode = ModeMinor
		} else {
			mode = ModeMajor
		}
	case 2:
		mode = ModeDorian
	case 4:
		mode = ModePhrygian
	case 9:
		mode = ModeMinor
	case 11:
		mode = ModeLocrian
	default:
		// Chromatic root: keep the chord's own family.
		if isMinorFamily(chord.Quality) {
			mode = ModeMinor
		} else {
			mode = ModeMajor
		}
	}

	return ColorSuggestion{Mode: mode, Chord: colorChord(chord, mode)}
}

func colorChord(chord theory.Chord, mode Mode) theory.Chord {
	color := modeColors[mode]
	out := theory.NewChord(chord.Root, color.quality, chord.Bass, chord.SourceNotes)
	if len(color.alterations) > 0 {
		out.Alterations = append([]string(nil), color.alterations...)
		out = out.WithQuality(out.Quality) // regenerate symbol with alterations
	}
	return out
}
