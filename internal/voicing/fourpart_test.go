package voicing

import (
	"testing"

	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
)

func checkRanges(t *testing.T, v FourPartVoicing, ranges FourPartRanges, label string) {
	t.Helper()
	if !ranges.Soprano.Contains(v.Soprano) {
		t.Errorf("%s: soprano %d outside [%d, %d]", label, v.Soprano, ranges.Soprano.Min, ranges.Soprano.Max)
	}
	if !ranges.Alto.Contains(v.Alto) {
		t.Errorf("%s: alto %d outside [%d, %d]", label, v.Alto, ranges.Alto.Min, ranges.Alto.Max)
	}
	if !ranges.Tenor.Contains(v.Tenor) {
		t.Errorf("%s: tenor %d outside [%d, %d]", label, v.Tenor, ranges.Tenor.Min, ranges.Tenor.Max)
	}
	if !ranges.Bass.Contains(v.Bass) {
		t.Errorf("%s: bass %d outside [%d, %d]", label, v.Bass, ranges.Bass.Min, ranges.Bass.Max)
	}
}

func TestApplyVoiceLeading_InitialVoicing(t *testing.T) {
	ranges := DefaultFourPartRanges()
	chord := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)

	v := ApplyVoiceLeading(chord, nil, ranges)
	checkRanges(t, v, ranges, "C major initial")

	if theory.PitchClass(v.Bass) != 0 {
		t.Errorf("Expected bass on the root, got pitch %d", v.Bass)
	}
}

func TestApplyVoiceLeading_RangeContainment(t *testing.T) {
	ranges := DefaultFourPartRanges()
	progression := []theory.Chord{
		theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil),
		theory.NewChord(9, theory.QualityMin7, theory.NoBass, nil),
		theory.NewChord(5, theory.QualityMaj7, theory.NoBass, nil),
		theory.NewChord(7, theory.QualityDom7, theory.NoBass, nil),
		theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil),
	}

	var prev *FourPartVoicing
	for _, chord := range progression {
		v := ApplyVoiceLeading(chord, prev, ranges)
		checkRanges(t, v, ranges, chord.Symbol)
		prev = &v
	}
}

func TestApplyVoiceLeading_SlashBassPinned(t *testing.T) {
	ranges := DefaultFourPartRanges()
	chord := theory.NewChord(0, theory.QualityMajor, 4, nil) // C/E

	initial := ApplyVoiceLeading(theory.NewChord(7, theory.QualityMajor, theory.NoBass, nil), nil, ranges)
	v := ApplyVoiceLeading(chord, &initial, ranges)

	if theory.PitchClass(v.Bass) != 4 {
		t.Errorf("Expected bass pinned to the slash bass E, got pitch %d", v.Bass)
	}
}

func TestApplyVoiceLeading_SmallMovements(t *testing.T) {
	ranges := DefaultFourPartRanges()
	c := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	f := theory.NewChord(5, theory.QualityMajor, theory.NoBass, nil)

	first := ApplyVoiceLeading(c, nil, ranges)
	second := ApplyVoiceLeading(f, &first, ranges)

	// Upper voices stay within the max-movement window when candidates exist
	for _, pair := range [][2]int{
		{first.Tenor, second.Tenor},
		{first.Alto, second.Alto},
		{first.Soprano, second.Soprano},
	} {
		if abs(pair[1]-pair[0]) > maxMovement {
			t.Errorf("Voice jumped %d semitones (%d -> %d)", abs(pair[1]-pair[0]), pair[0], pair[1])
		}
	}
}

func TestApplyVoiceLeading_ChordTonesOnly(t *testing.T) {
	ranges := DefaultFourPartRanges()
	g7 := theory.NewChord(7, theory.QualityDom7, theory.NoBass, nil)

	first := ApplyVoiceLeading(theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil), nil, ranges)
	v := ApplyVoiceLeading(g7, &first, ranges)

	tones := map[int]bool{7: true, 11: true, 2: true, 5: true}
	for _, pitch := range []int{v.Tenor, v.Alto, v.Soprano} {
		if !tones[theory.PitchClass(pitch)] {
			t.Errorf("Upper voice %d is not a G7 chord tone", pitch)
		}
	}
}

func TestVoiceRange_Contains(t *testing.T) {
	r := VoiceRange{Min: 48, Max: 60}
	if !r.Contains(48) || !r.Contains(60) || !r.Contains(54) {
		t.Error("Expected boundary and interior pitches inside the range")
	}
	if r.Contains(47) || r.Contains(61) {
		t.Error("Expected pitches outside the bounds to be excluded")
	}
}

func TestFourPartVoicing_Pitches(t *testing.T) {
	v := FourPartVoicing{Soprano: 72, Alto: 64, Tenor: 55, Bass: 48}
	got := v.Pitches()
	expected := []int{48, 55, 64, 72}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Pitches()[%d]: expected %d, got %d", i, expected[i], got[i])
		}
	}
}
