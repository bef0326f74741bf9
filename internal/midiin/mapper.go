// Package midiin maps raw MIDI input to arranger commands: left-hand note
// groups become chord commands, CC64 drives chord memory, a configurable
// tap controller drives tap tempo. The mapper holds no goroutines or
// timers; the host feeds it timestamped messages from its MIDI callback
// and flushes on its own tick.
package midiin

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"

	"github.com/Conceptual-Machines/magda-arranger/internal/arranger"
	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
)

// DefaultTapCC is the controller number mapped to tap tempo
const DefaultTapCC = 80

// sustainCC is the damper pedal controller, repurposed for chord memory
const sustainCC = 64

// Mapper accumulates note-ons below the split point into chord gestures.
// Not safe for concurrent use; the host's MIDI callback is single-threaded.
type Mapper struct {
	cfg   theory.RecognizerConfig
	tapCC uint8

	held         map[uint8]bool
	pending      []int
	pendingStart int64
	chordSounded bool
}

// NewMapper creates a mapper with the given recognition settings
func NewMapper(cfg theory.RecognizerConfig) *Mapper {
	return &Mapper{
		cfg:   cfg,
		tapCC: DefaultTapCC,
		held:  map[uint8]bool{},
	}
}

// SetTapCC overrides the controller number that triggers tap tempo
func (m *Mapper) SetTapCC(cc uint8) {
	m.tapCC = cc
}

// HandleMessage consumes one timestamped MIDI message and returns the
// arranger commands it implies. A note-on arriving after the grouping
// tolerance closes the previous gesture, so a chord command may be emitted
// together with the start of the next gesture.
func (m *Mapper) HandleMessage(msg midi.Message, atMS int64) []arranger.Command {
	var ch, key, vel, cc, val uint8

	switch {
	case msg.GetNoteOn(&ch, &key, &vel):
		if vel == 0 {
			return m.noteOff(key)
		}
		return m.noteOn(key, atMS)

	case msg.GetNoteOff(&ch, &key, &vel):
		return m.noteOff(key)

	case msg.GetControlChange(&ch, &cc, &val):
		return m.controlChange(cc, val, atMS)
	}

	return nil
}

// Flush closes the pending gesture if its tolerance window has elapsed.
// Hosts call this from their tick so the last chord of a gesture is not
// held hostage by the next note-on.
func (m *Mapper) Flush(nowMS int64) []arranger.Command {
	if len(m.pending) == 0 {
		return nil
	}
	if nowMS-m.pendingStart < int64(m.tolerance()) {
		return nil
	}
	return m.emitPending()
}

func (m *Mapper) noteOn(key uint8, atMS int64) []arranger.Command {
	if int(key) > m.cfg.SplitPoint {
		// Right hand is melody; the arranger only reads the left hand.
		return nil
	}

	m.held[key] = true

	var out []arranger.Command
	if len(m.pending) > 0 && atMS-m.pendingStart >= int64(m.tolerance()) {
		out = m.emitPending()
	}
	if len(m.pending) == 0 {
		m.pendingStart = atMS
	}
	m.pending = append(m.pending, int(key))
	return out
}

func (m *Mapper) noteOff(key uint8) []arranger.Command {
	if !m.held[key] {
		return nil
	}
	delete(m.held, key)

	if len(m.held) == 0 && m.chordSounded {
		m.chordSounded = false
		m.pending = nil
		return []arranger.Command{arranger.ReleaseChord()}
	}
	return nil
}

func (m *Mapper) controlChange(cc, val uint8, atMS int64) []arranger.Command {
	switch cc {
	case sustainCC:
		return []arranger.Command{arranger.SetChordMemory(val >= 64)}
	case m.tapCC:
		if val >= 64 {
			return []arranger.Command{arranger.TapTempo(atMS)}
		}
	}
	return nil
}

func (m *Mapper) emitPending() []arranger.Command {
	notes := append([]int(nil), m.pending...)
	sort.Ints(notes)
	m.pending = nil
	m.chordSounded = true
	return []arranger.Command{arranger.SetChord(notes)}
}

func (m *Mapper) tolerance() int {
	if m.cfg.GroupToleranceMS > 0 {
		return m.cfg.GroupToleranceMS
	}
	return theory.DefaultRecognizerConfig().GroupToleranceMS
}
