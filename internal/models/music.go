// Package models holds the plain data types exchanged with hosts: note
// events for the downstream renderer and the HTTP payload shapes.
package models

// NoteEvent is one note for the downstream renderer
type NoteEvent struct {
	MidiNoteNumber int     `json:"midi_note_number"`
	Velocity       int     `json:"velocity"`
	StartBeats     float64 `json:"start_beats"`
	DurationBeats  float64 `json:"duration_beats"`
}

// VoicePart groups the note events rendered for one accompaniment voice
type VoicePart struct {
	VoiceID string      `json:"voice_id"`
	Muted   bool        `json:"muted"`
	Volume  int         `json:"volume"`
	Events  []NoteEvent `json:"events"`
}
