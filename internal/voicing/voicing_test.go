package voicing

import (
	"testing"

	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
)

var allStyles = []Style{
	StyleClose, StyleOpen, StyleDrop2, StyleDrop3, StyleRootless, StyleSpread,
}

func TestAllocate_VoiceCountPreserved(t *testing.T) {
	chords := []theory.Chord{
		theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil),
		theory.NewChord(7, theory.QualityDom7, theory.NoBass, nil),
		theory.NewChord(9, theory.QualityMin7, theory.NoBass, nil),
		theory.NewChord(2, theory.QualityMin13, theory.NoBass, nil),
		theory.NewChord(4, theory.QualityPower, theory.NoBass, nil),
	}

	for _, style := range allStyles {
		for _, chord := range chords {
			for voiceCount := 1; voiceCount <= 8; voiceCount++ {
				got := Allocate(chord, nil, voiceCount, style)
				if len(got) != voiceCount {
					t.Errorf("style %s, chord %s, %d voices: got %d pitches",
						style, chord.Symbol, voiceCount, len(got))
				}
			}
		}
	}
}

func TestAllocate_ZeroVoices(t *testing.T) {
	chord := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	if got := Allocate(chord, nil, 0, StyleClose); len(got) != 0 {
		t.Errorf("Expected empty voicing for 0 voices, got %v", got)
	}
}

func TestAllocate_ClosePosition(t *testing.T) {
	chord := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	got := Allocate(chord, nil, 3, StyleClose)
	expected := []int{48, 52, 55} // C3 E3 G3

	for i, pitch := range expected {
		if got[i] != pitch {
			t.Errorf("Voice %d: expected %d, got %d (full: %v)", i, pitch, got[i], got)
		}
	}
}

func TestAllocate_CloseOctaveStacking(t *testing.T) {
	// Octave stacking kicks in every 4 voices, so a triad revisits its root
	// at voice 3 before voice 4 climbs an octave.
	chord := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	got := Allocate(chord, nil, 5, StyleClose)

	if got[3] != 48 {
		t.Errorf("Voice 3: expected the root revisited (48), got %d", got[3])
	}
	if got[4] != 52+12 {
		t.Errorf("Voice 4: expected the third an octave up (64), got %d", got[4])
	}

	// A four-tone pattern climbs cleanly
	maj7 := theory.NewChord(0, theory.QualityMaj7, theory.NoBass, nil)
	got = Allocate(maj7, nil, 5, StyleClose)
	if got[4] != 48+12 {
		t.Errorf("Voice 4: expected the root an octave up (60), got %d", got[4])
	}
}

func TestAllocate_RootlessOmitsRoot(t *testing.T) {
	chord := theory.NewChord(0, theory.QualityMin7, theory.NoBass, nil)
	got := Allocate(chord, nil, 3, StyleRootless)

	for _, pitch := range got {
		if theory.PitchClass(pitch) == chord.Root {
			t.Errorf("Rootless voicing contains the root: %v", got)
		}
	}
	// First tone is the 3rd
	if theory.PitchClass(got[0]) != theory.PitchClass(chord.Root+3) {
		t.Errorf("Expected voicing to start at the 3rd, got %v", got)
	}
}

func TestAllocate_Drop2(t *testing.T) {
	chord := theory.NewChord(0, theory.QualityMaj7, theory.NoBass, nil)
	got := Allocate(chord, nil, 4, StyleDrop2)

	// Close stack is C3 E3 G3 B3 (48 52 55 59); drop2 lowers the second
	// voice from the top (G3) an octave.
	expected := []int{48, 52, 43, 59}
	for i, pitch := range expected {
		if got[i] != pitch {
			t.Errorf("Voice %d: expected %d, got %d (full: %v)", i, pitch, got[i], got)
		}
	}
}

func TestAllocate_MovementMinimization(t *testing.T) {
	c := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	g := theory.NewChord(7, theory.QualityMajor, theory.NoBass, nil)

	previous := Allocate(c, nil, 3, StyleClose) // 48 52 55
	naive := Allocate(g, nil, 3, StyleClose)    // 55 59 62
	led := Allocate(g, previous, 3, StyleClose)

	if len(led) != 3 {
		t.Fatalf("Expected 3 voices, got %d", len(led))
	}

	naiveSum := 0
	ledSum := 0
	for i := range previous {
		naiveSum += abs(naive[i] - previous[i])
		ledSum += abs(led[i] - previous[i])
	}

	if ledSum > naiveSum {
		t.Errorf("Voice leading increased movement: led=%d naive=%d (led: %v)", ledSum, naiveSum, led)
	}

	// Pitch classes survive the octave transpositions
	for i := range led {
		if theory.PitchClass(led[i]) != theory.PitchClass(naive[i]) {
			t.Errorf("Voice %d changed pitch class: %d -> %d", i, naive[i], led[i])
		}
	}
}

func TestAllocate_NeighborTriadStaysClose(t *testing.T) {
	c := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	d := theory.NewChord(2, theory.QualityMinor, theory.NoBass, nil)

	previous := Allocate(c, nil, 3, StyleClose)
	led := Allocate(d, previous, 3, StyleClose)

	for i := range led {
		if abs(led[i]-previous[i]) > 12 {
			t.Errorf("Voice %d moved more than an octave: %d -> %d", i, previous[i], led[i])
		}
	}
}

func TestAllocate_MismatchedPreviousIgnored(t *testing.T) {
	chord := theory.NewChord(0, theory.QualityMajor, theory.NoBass, nil)
	base := Allocate(chord, nil, 4, StyleClose)
	got := Allocate(chord, []int{60, 64}, 4, StyleClose)

	for i := range base {
		if got[i] != base[i] {
			t.Errorf("Previous voicing of wrong length should be ignored: %v vs %v", got, base)
		}
	}
}
