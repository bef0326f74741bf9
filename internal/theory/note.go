package theory

import (
	"fmt"
	"strings"
)

// PitchClasses is the number of semitones in an octave
const PitchClasses = 12

// noteNames maps pitch classes to note names (sharps convention)
var noteNames = [PitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// noteOffsets maps note letters to semitone offsets from C
var noteOffsets = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// PitchClass reduces an absolute pitch number to 0-11
func PitchClass(pitch int) int {
	pc := pitch % PitchClasses
	if pc < 0 {
		pc += PitchClasses
	}
	return pc
}

// NoteName returns the name of a pitch class (e.g. 0 -> "C", 10 -> "A#")
func NoteName(pitchClass int) string {
	return noteNames[PitchClass(pitchClass)]
}

// NoteNameToMIDI converts a note name like "E1", "C4", "F#3", "Bb2" to a MIDI
// note number. Format: <letter><accidental?><octave> where octave may be
// negative (C4 = 60 = middle C).
func NoteNameToMIDI(noteName string) (int, error) {
	if len(noteName) < 2 {
		return 0, fmt.Errorf("note name too short: %s", noteName)
	}

	letter := strings.ToUpper(string(noteName[0]))
	semitone, ok := noteOffsets[letter]
	if !ok {
		return 0, fmt.Errorf("invalid note letter: %s", letter)
	}

	idx := 1
	if idx < len(noteName) {
		if noteName[idx] == '#' {
			semitone++
			idx++
		} else if noteName[idx] == 'b' {
			semitone--
			idx++
		}
	}

	if idx >= len(noteName) {
		return 0, fmt.Errorf("missing octave in note name: %s", noteName)
	}

	var octave int
	if _, err := fmt.Sscanf(noteName[idx:], "%d", &octave); err != nil {
		return 0, fmt.Errorf("invalid octave in note name %s: %w", noteName, err)
	}

	// C-1 = 0, C0 = 12, C4 = 60
	midiNote := (octave+1)*PitchClasses + semitone
	if midiNote < 0 {
		midiNote = 0
	}
	if midiNote > 127 {
		midiNote = 127
	}

	return midiNote, nil
}
