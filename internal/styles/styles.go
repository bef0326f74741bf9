// Package styles holds the read-only table of accompaniment style records.
// The arranger core looks styles up by id and never mutates them; pattern
// data is rendered by a downstream playback engine.
package styles

import (
	"fmt"
	"sort"

	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
	"github.com/Conceptual-Machines/magda-arranger/internal/voicing"
)

// mustNote resolves a note name for the static style table; a typo in a
// built-in record is a programming error.
func mustNote(name string) int {
	n, err := theory.NoteNameToMIDI(name)
	if err != nil {
		panic(fmt.Sprintf("styles: bad note name %q: %v", name, err))
	}
	return n
}

// VoiceConfig describes one accompaniment voice of a style
type VoiceConfig struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	VoicingStyle  voicing.Style `json:"voicing_style"`
	VoiceCount    int           `json:"voice_count"`
	RangeLow      int           `json:"range_low"`
	RangeHigh     int           `json:"range_high"`
	DefaultVolume int           `json:"default_volume"`
}

// Style is a read-only accompaniment style record
type Style struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Genre        string        `json:"genre"`
	DefaultTempo float64       `json:"default_tempo"`
	Variations   int           `json:"variations"`
	Voices       []VoiceConfig `json:"voices"`
	// PatternSlots names the pattern data the playback engine renders for
	// each section; the data itself lives outside this core.
	PatternSlots []string `json:"pattern_slots"`
}

var defaultSlots = []string{"intro", "main_a", "main_b", "fill", "break", "ending"}

// registry is the built-in style table, keyed by id
var registry = map[string]Style{
	"pop_ballad": {
		ID: "pop_ballad", Name: "Pop Ballad", Genre: "pop",
		DefaultTempo: 72, Variations: 4,
		Voices: []VoiceConfig{
			{ID: "bass", Name: "Bass", VoicingStyle: voicing.StyleRootless, VoiceCount: 1, RangeLow: mustNote("E1"), RangeHigh: mustNote("E3"), DefaultVolume: 100},
			{ID: "chord", Name: "Piano", VoicingStyle: voicing.StyleClose, VoiceCount: 4, RangeLow: mustNote("C3"), RangeHigh: mustNote("C6"), DefaultVolume: 90},
			{ID: "pad", Name: "Strings", VoicingStyle: voicing.StyleSpread, VoiceCount: 4, RangeLow: mustNote("C3"), RangeHigh: mustNote("C7"), DefaultVolume: 70},
		},
		PatternSlots: defaultSlots,
	},
	"jazz_swing": {
		ID: "jazz_swing", Name: "Jazz Swing", Genre: "jazz",
		DefaultTempo: 140, Variations: 4,
		Voices: []VoiceConfig{
			{ID: "bass", Name: "Walking Bass", VoicingStyle: voicing.StyleRootless, VoiceCount: 1, RangeLow: mustNote("E1"), RangeHigh: mustNote("G3"), DefaultVolume: 105},
			{ID: "chord", Name: "Comp Piano", VoicingStyle: voicing.StyleRootless, VoiceCount: 4, RangeLow: mustNote("D3"), RangeHigh: mustNote("Ab5"), DefaultVolume: 85},
			{ID: "pad", Name: "Guitar", VoicingStyle: voicing.StyleDrop2, VoiceCount: 4, RangeLow: mustNote("A2"), RangeHigh: mustNote("E5"), DefaultVolume: 75},
		},
		PatternSlots: defaultSlots,
	},
	"bossa": {
		ID: "bossa", Name: "Bossa Nova", Genre: "latin",
		DefaultTempo: 120, Variations: 2,
		Voices: []VoiceConfig{
			{ID: "bass", Name: "Bass", VoicingStyle: voicing.StyleRootless, VoiceCount: 1, RangeLow: mustNote("E1"), RangeHigh: mustNote("E3"), DefaultVolume: 100},
			{ID: "chord", Name: "Nylon Guitar", VoicingStyle: voicing.StyleDrop2, VoiceCount: 4, RangeLow: mustNote("C3"), RangeHigh: mustNote("G5"), DefaultVolume: 90},
		},
		PatternSlots: defaultSlots,
	},
	"rock_8beat": {
		ID: "rock_8beat", Name: "8-Beat Rock", Genre: "rock",
		DefaultTempo: 118, Variations: 4,
		Voices: []VoiceConfig{
			{ID: "bass", Name: "Bass", VoicingStyle: voicing.StyleRootless, VoiceCount: 1, RangeLow: mustNote("E1"), RangeHigh: mustNote("D3"), DefaultVolume: 110},
			{ID: "chord", Name: "Power Guitar", VoicingStyle: voicing.StyleOpen, VoiceCount: 3, RangeLow: mustNote("E2"), RangeHigh: mustNote("C5"), DefaultVolume: 100},
			{ID: "pad", Name: "Organ", VoicingStyle: voicing.StyleClose, VoiceCount: 4, RangeLow: mustNote("G3"), RangeHigh: mustNote("C6"), DefaultVolume: 80},
		},
		PatternSlots: defaultSlots,
	},
}

// Lookup finds a style by id
func Lookup(id string) (Style, bool) {
	s, ok := registry[id]
	return s, ok
}

// List returns all built-in styles sorted by id
func List() []Style {
	out := make([]Style, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Voice finds a voice config by id within a style
func (s Style) Voice(voiceID string) (VoiceConfig, bool) {
	for _, v := range s.Voices {
		if v.ID == voiceID {
			return v, true
		}
	}
	return VoiceConfig{}, false
}
