package harmony

import (
	"testing"

	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
)

func TestSubstitutions_Tritone(t *testing.T) {
	g7 := theory.NewChord(7, theory.QualityDom7, theory.NoBass, nil)

	subs := Substitutions(g7, SubTritone)
	if len(subs) != 1 {
		t.Fatalf("Expected 1 substitution, got %d", len(subs))
	}
	got := subs[0].Chord
	if got.Root != 1 || got.Quality != theory.QualityDom7 {
		t.Errorf("Expected Db7 tritone sub for G7, got %s", got.Symbol)
	}
}

func TestSubstitutions_RelativePair(t *testing.T) {
	c := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	subs := Substitutions(c, SubRelativeMinor)
	if len(subs) != 1 || subs[0].Chord.Root != 9 || subs[0].Chord.Quality != theory.QualityMinor {
		t.Fatalf("Expected Am for C, got %+v", subs)
	}

	am := theory.NewChord(9, theory.QualityMinor, theory.NoBass, nil)
	subs = Substitutions(am, SubRelativeMajor)
	if len(subs) != 1 || subs[0].Chord.Root != 0 || subs[0].Chord.Quality != theory.QualityMajor {
		t.Fatalf("Expected C for Am, got %+v", subs)
	}

	// Relative minor of a minor chord does not apply
	if subs = Substitutions(am, SubRelativeMinor); len(subs) != 0 {
		t.Errorf("Expected no relative-minor sub for a minor chord, got %+v", subs)
	}
}

func TestSubstitutions_SecondaryDominant(t *testing.T) {
	d := theory.NewChord(2, theory.QualityMinor, theory.NoBass, nil)
	subs := Substitutions(d, SubSecondaryDom)
	if len(subs) != 1 || subs[0].Chord.Root != 9 || subs[0].Chord.Quality != theory.QualityDom7 {
		t.Fatalf("Expected A7 (V7 of Dm), got %+v", subs)
	}
}

func TestSubstitutions_AllKindsNeverMutateInput(t *testing.T) {
	chord := theory.NewChord(5, theory.QualityMaj7, theory.NoBass, nil)
	before := chord.Symbol

	Substitutions(chord)

	if chord.Symbol != before {
		t.Error("Substitutions mutated the input chord")
	}
}

func TestTensionScore(t *testing.T) {
	tests := []struct {
		name    string
		quality theory.Quality
		min     float64
		max     float64
	}{
		{"major triad is consonant", theory.QualityMajor, 0, 0.01},
		{"ninth chord", theory.QualityNine, 0.35, 0.45},
		{"thirteenth chord", theory.QualityThirteen, 0.35, 0.45},
		{"diminished", theory.QualityDim, 0.55, 0.7},
		{"diminished seventh", theory.QualityDim7, 0.55, 0.7},
		{"augmented", theory.QualityAug, 0.55, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord := theory.NewChord(0, tt.quality, theory.NoBass, nil)
			score := TensionScore(chord)
			if score < tt.min || score > tt.max {
				t.Errorf("Expected tension in [%.2f, %.2f], got %.2f", tt.min, tt.max, score)
			}
		})
	}
}

func TestTensionScore_ExtensionsAndAlterationsCapAtOne(t *testing.T) {
	chord := theory.NewChord(0, theory.QualityDim7, theory.NoBass, nil)
	chord.Extensions = []int{9, 11, 13}
	chord.Alterations = []string{"b9", "#11"}

	if score := TensionScore(chord); score != 1 {
		t.Errorf("Expected capped score 1, got %.2f", score)
	}

	plain := theory.NewChord(0, theory.QualityMaj7, theory.NoBass, nil)
	withExt := plain
	withExt.Extensions = []int{9}
	if TensionScore(withExt) <= TensionScore(plain) {
		t.Error("Expected an extension to raise tension")
	}
}

func TestAdjustTension_Raise(t *testing.T) {
	c := theory.NewChord(0, theory.QualityMaj7, theory.NoBass, nil)

	raised := AdjustTension(c, 0.5)
	if len(raised.Extensions) == 0 {
		t.Fatal("Expected extensions to be added")
	}
	if raised.Extensions[0] != 9 {
		t.Errorf("Expected the 9 to be added first, got %v", raised.Extensions)
	}
	if TensionScore(raised) <= TensionScore(c) {
		t.Error("Expected tension to rise")
	}
	if len(c.Extensions) != 0 {
		t.Error("Input chord was mutated")
	}
}

func TestAdjustTension_Lower(t *testing.T) {
	c13 := theory.NewChord(0, theory.QualityThirteen, theory.NoBass, nil)
	c13.Extensions = []int{9, 11, 13}

	lowered := AdjustTension(c13, 0)
	if lowered.Quality != theory.QualityMajor {
		t.Errorf("Expected collapse to the plain triad, got %s", lowered.Quality)
	}
	if len(lowered.Extensions) != 0 || len(lowered.Alterations) != 0 {
		t.Errorf("Expected extensions stripped, got %v / %v", lowered.Extensions, lowered.Alterations)
	}
}

func TestPassingChord(t *testing.T) {
	c := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	f := theory.NewChord(5, theory.QualityMajor, theory.NoBass, nil)

	chromatic, ok := PassingChord(c, f, PassingChromatic)
	if !ok {
		t.Fatal("Expected a chromatic passing chord")
	}
	if chromatic.Root != 4 || chromatic.Quality != theory.QualityDim7 {
		t.Errorf("Expected Edim7 a half step below F, got %s", chromatic.Symbol)
	}

	diatonic, ok := PassingChord(c, f, PassingDiatonic)
	if !ok {
		t.Fatal("Expected a diatonic passing chord")
	}
	if diatonic.Root != 0 || diatonic.Quality != theory.QualityDom7 {
		t.Errorf("Expected C7 (V7 of F), got %s", diatonic.Symbol)
	}

	// Identical chords leave nothing to pass through
	if _, ok := PassingChord(c, c, PassingChromatic); ok {
		t.Error("Expected no passing chord between identical chords")
	}
}

func TestInsertPassingChords_Density(t *testing.T) {
	progression := []theory.Chord{
		theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil),
		theory.NewChord(5, theory.QualityMajor, theory.NoBass, nil),
		theory.NewChord(7, theory.QualityDom7, theory.NoBass, nil),
	}

	if got := InsertPassingChords(progression, PassingChromatic, 0); len(got) != 3 {
		t.Errorf("Density 0: expected unchanged progression, got %d chords", len(got))
	}

	full := InsertPassingChords(progression, PassingChromatic, 1)
	if len(full) != 5 {
		t.Errorf("Density 1: expected 5 chords, got %d", len(full))
	}

	// Inserted chord sits between its neighbors
	if full[1].Quality != theory.QualityDim7 {
		t.Errorf("Expected dim7 passing chord, got %s", full[1].Symbol)
	}

	// Input untouched
	if len(progression) != 3 {
		t.Error("Input progression was modified")
	}
}

func TestApplyPedalTone(t *testing.T) {
	g := theory.NewChord(7, theory.QualityMajor, theory.NoBass, nil)
	overC := ApplyPedalTone(g, 0)

	if overC.Bass != 0 {
		t.Errorf("Expected bass C, got %d", overC.Bass)
	}
	if overC.Symbol != "G/C" {
		t.Errorf("Expected symbol G/C, got %s", overC.Symbol)
	}
	if g.Bass != theory.NoBass {
		t.Error("Input chord was mutated")
	}
}

func TestAdjustComplexity(t *testing.T) {
	tests := []struct {
		name     string
		input    theory.Quality
		tier     ComplexityTier
		expected theory.Quality
	}{
		{"13th down to triad", theory.QualityThirteen, TierTriad, theory.QualityMajor},
		{"minor 9 down to triad", theory.QualityMin9, TierTriad, theory.QualityMinor},
		{"major up to dominant 7", theory.QualityMajor, TierSeventh, theory.QualityDom7},
		{"major7 stays major at 7th tier", theory.QualityMaj7, TierSeventh, theory.QualityMaj7},
		{"minor up to minor 9", theory.QualityMinor, TierNinth, theory.QualityMin9},
		{"minor up to minor 13", theory.QualityMin7, TierThirteenth, theory.QualityMin13},
		{"tier clamped high", theory.QualityMajor, ComplexityTier(99), theory.QualityThirteen},
		{"tier clamped low", theory.QualityMin7, ComplexityTier(-1), theory.QualityMinor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord := theory.NewChord(0, tt.input, theory.NoBass, nil)
			got := AdjustComplexity(chord, tt.tier)
			if got.Quality != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got.Quality)
			}
		})
	}
}

func TestSuggestColors(t *testing.T) {
	c := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	suggestions := SuggestColors(c)

	if len(suggestions) != 7 {
		t.Fatalf("Expected 7 modal colors, got %d", len(suggestions))
	}
	if suggestions[0].Mode != ModeMajor {
		t.Errorf("Expected major first, got %s", suggestions[0].Mode)
	}
	for _, s := range suggestions {
		if s.Chord.Root != c.Root {
			t.Errorf("Mode %s changed the root: %d", s.Mode, s.Chord.Root)
		}
	}
}

func TestSuggestColorForKey(t *testing.T) {
	// G7 in C major is the dominant: mixolydian
	g7 := theory.NewChord(7, theory.QualityDom7, theory.NoBass, nil)
	if got := SuggestColorForKey(g7, 0, false); got.Mode != ModeMixolydian {
		t.Errorf("Expected mixolydian for the dominant, got %s", got.Mode)
	}

	// F in C major is the subdominant: lydian
	f := theory.NewChord(5, theory.QualityMajor, theory.NoBass, nil)
	if got := SuggestColorForKey(f, 0, false); got.Mode != ModeLydian {
		t.Errorf("Expected lydian for the subdominant, got %s", got.Mode)
	}

	// Tonic in a minor key: minor
	am := theory.NewChord(9, theory.QualityMinor, theory.NoBass, nil)
	if got := SuggestColorForKey(am, 9, true); got.Mode != ModeMinor {
		t.Errorf("Expected minor for the minor tonic, got %s", got.Mode)
	}
}
