// Package arranger owns the playback session state machine: a pure reducer
// over an immutable state snapshot, and a controller that wires the chord
// recognizer and voice-leading engine into chord changes.
package arranger

import "github.com/Conceptual-Machines/magda-arranger/internal/theory"

// Section is the playback section of the arrangement
type Section string

const (
	SectionIntro  Section = "intro"
	SectionMain   Section = "main"
	SectionFill   Section = "fill"
	SectionBreak  Section = "break"
	SectionEnding Section = "ending"
)

// Numeric bounds enforced by the reducer
const (
	MinTempo  = 40.0
	MaxTempo  = 240.0
	MinLevel  = 1
	MaxLevel  = 5
	MinVolume = 0
	MaxVolume = 127
)

// TicksPerQuarter is the fixed transport resolution for DAW position
// conversion.
const TicksPerQuarter = 960

// maxTapSamples bounds the tap-tempo history (up to 4 intervals)
const maxTapSamples = 5

// State is one immutable snapshot of an arranger session. The reducer
// replaces fields wholesale; nothing mutates a snapshot in place, so a
// snapshot may be handed to another thread freely.
type State struct {
	IsPlaying     bool    `json:"is_playing"`
	Tempo         float64 `json:"tempo"`
	PositionTicks int     `json:"position_ticks"`

	StyleID        string `json:"style_id,omitempty"`
	VariationIndex int    `json:"variation_index"`

	CurrentChord   *theory.Chord `json:"current_chord,omitempty"`
	PreviousChord  *theory.Chord `json:"previous_chord,omitempty"`
	ChordDefaulted bool          `json:"chord_defaulted,omitempty"`

	CurrentSection Section `json:"current_section"`
	FillQueued     bool    `json:"fill_queued"`
	EndingQueued   bool    `json:"ending_queued"`

	SyncStart   bool `json:"sync_start"`
	SyncStop    bool `json:"sync_stop"`
	ChordMemory bool `json:"chord_memory"`

	VoiceMutes   map[string]bool `json:"voice_mutes"`
	VoiceSolos   map[string]bool `json:"voice_solos"`
	VoiceVolumes map[string]int  `json:"voice_volumes"`

	EnergyLevel     int `json:"energy_level"`
	ComplexityLevel int `json:"complexity_level"`

	SplitPoint    int     `json:"split_point"`
	MinChordNotes int     `json:"min_chord_notes"`
	Swing         float64 `json:"swing"`
	Humanize      float64 `json:"humanize"`

	SyncToDAW             bool    `json:"sync_to_daw"`
	ExternalTempo         float64 `json:"external_tempo"`
	ExternalPositionTicks int     `json:"external_position_ticks"`

	// TapTimesMS holds the recent tap-tempo timestamps the next tap
	// averages against.
	TapTimesMS []int64 `json:"-"`
}

// NewState returns the session's initial snapshot
func NewState() State {
	return State{
		Tempo:           120,
		CurrentSection:  SectionMain,
		VoiceMutes:      map[string]bool{},
		VoiceSolos:      map[string]bool{},
		VoiceVolumes:    map[string]int{},
		EnergyLevel:     3,
		ComplexityLevel: 3,
		SplitPoint:      60,
		MinChordNotes:   theory.DefaultMinNotes,
	}
}

// EffectiveTempo returns the tempo the renderer should follow: the
// external one while DAW sync is active, the internal one otherwise.
func (s State) EffectiveTempo() float64 {
	if s.SyncToDAW {
		return s.ExternalTempo
	}
	return s.Tempo
}

// EffectivePositionTicks returns the transport position the renderer
// should follow.
func (s State) EffectivePositionTicks() int {
	if s.SyncToDAW {
		return s.ExternalPositionTicks
	}
	return s.PositionTicks
}

// BeatsToTicks converts DAW beats to transport ticks
func BeatsToTicks(beats float64) int {
	return int(beats * TicksPerQuarter)
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
