package arranger

import (
	"sync"

	"github.com/Conceptual-Machines/magda-arranger/internal/models"
	"github.com/Conceptual-Machines/magda-arranger/internal/styles"
	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
	"github.com/Conceptual-Machines/magda-arranger/internal/voicing"
)

// defaultVelocity is the base velocity for emitted accompaniment notes
const defaultVelocity = 96

// Controller owns one session: the current state snapshot, the previous
// voicing per accompaniment voice, and the four-part voicing seed. The
// reducer itself stays pure; the mutex only serializes hosts that dispatch
// from more than one goroutine (the HTTP surface does).
type Controller struct {
	mu sync.Mutex

	state          State
	prevVoicings   map[string][]int
	prevFourPart   *voicing.FourPartVoicing
	fourPartRanges voicing.FourPartRanges
}

// NewController creates a session controller with an initial snapshot
func NewController() *Controller {
	return &Controller{
		state:          NewState(),
		prevVoicings:   map[string][]int{},
		fourPartRanges: voicing.DefaultFourPartRanges(),
	}
}

// NewControllerWithRecognizer creates a controller whose initial snapshot
// carries the host's recognition settings. Zero values keep the defaults.
func NewControllerWithRecognizer(cfg theory.RecognizerConfig) *Controller {
	c := NewController()
	if cfg.MinNotes > 0 {
		c.state.MinChordNotes = cfg.MinNotes
	}
	if cfg.SplitPoint > 0 {
		c.state.SplitPoint = cfg.SplitPoint
	}
	return c
}

// Snapshot returns the current state. The returned value is an immutable
// snapshot; callers may hand it to other goroutines freely.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies one command and returns the resulting snapshot. Chord
// changes recompute the per-voice voicings against the previous ones.
func (c *Controller) Dispatch(cmd Command) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.state.CurrentChord
	c.state = Reduce(c.state, cmd)

	if cmd.Type == CmdSetChord && c.state.CurrentChord != nil && c.state.CurrentChord != before {
		c.recomputeVoicings()
	}
	if cmd.Type == CmdReleaseChord && c.state.CurrentChord == nil {
		c.prevVoicings = map[string][]int{}
		c.prevFourPart = nil
	}

	return c.state
}

// ClearQueuedFlags resets the one-shot fill/ending flags once the pattern
// engine has consumed them, returning the section to main.
func (c *Controller) ClearQueuedFlags() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.FillQueued || c.state.EndingQueued {
		c.state.FillQueued = false
		c.state.EndingQueued = false
		if c.state.CurrentSection == SectionFill {
			c.state.CurrentSection = SectionMain
		}
	}
	return c.state
}

// Voicing returns the last computed pitch set for a voice id
func (c *Controller) Voicing(voiceID string) []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.prevVoicings[voiceID]...)
}

// FourPartVoicing returns the last computed SATB voicing, or nil before
// the first chord.
func (c *Controller) FourPartVoicing() *voicing.FourPartVoicing {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prevFourPart == nil {
		return nil
	}
	v := *c.prevFourPart
	return &v
}

// recomputeVoicings runs the voice-leading engine for every voice of the
// loaded style, seeding each from its previous voicing. Caller holds mu.
func (c *Controller) recomputeVoicings() {
	chord := c.state.CurrentChord
	if chord == nil {
		return
	}

	style, ok := styles.Lookup(c.state.StyleID)
	if !ok {
		// No style loaded yet: keep a generic close-position chord voice.
		c.prevVoicings["chord"] = voicing.Allocate(*chord, c.prevVoicings["chord"], 4, voicing.StyleClose)
	} else {
		next := make(map[string][]int, len(style.Voices))
		for _, voice := range style.Voices {
			next[voice.ID] = voicing.Allocate(*chord, c.prevVoicings[voice.ID], voice.VoiceCount, voice.VoicingStyle)
		}
		c.prevVoicings = next
	}

	fp := voicing.ApplyVoiceLeading(*chord, c.prevFourPart, c.fourPartRanges)
	c.prevFourPart = &fp
}

// RenderParts emits the current voicings as renderer note events, one part
// per style voice, honoring mutes, solos and volumes. Swing delays offbeat
// events; humanize widens the velocity spread deterministically by voice
// index.
func (c *Controller) RenderParts(lengthBeats float64) []models.VoicePart {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentChord == nil || lengthBeats <= 0 {
		return nil
	}

	style, ok := styles.Lookup(c.state.StyleID)
	if !ok {
		return nil
	}

	anySolo := false
	for _, on := range c.state.VoiceSolos {
		if on {
			anySolo = true
			break
		}
	}

	parts := make([]models.VoicePart, 0, len(style.Voices))
	for _, voice := range style.Voices {
		muted := c.state.VoiceMutes[voice.ID]
		if anySolo && !c.state.VoiceSolos[voice.ID] {
			muted = true
		}

		volume := voice.DefaultVolume
		if v, set := c.state.VoiceVolumes[voice.ID]; set {
			volume = v
		}

		part := models.VoicePart{VoiceID: voice.ID, Muted: muted, Volume: volume}
		if !muted {
			part.Events = c.renderVoice(voice, lengthBeats)
		}
		parts = append(parts, part)
	}
	return parts
}

// renderVoice lays the voicing out on half-beat hits across the window.
// Caller holds mu.
func (c *Controller) renderVoice(voice styles.VoiceConfig, lengthBeats float64) []models.NoteEvent {
	pitches := c.prevVoicings[voice.ID]
	if len(pitches) == 0 {
		return nil
	}

	swing := c.state.Swing
	humanize := c.state.Humanize

	events := make([]models.NoteEvent, 0, len(pitches)*int(lengthBeats*2))
	for beat := 0.0; beat < lengthBeats; beat += 0.5 {
		start := beat
		offbeat := int(beat*2)%2 == 1
		if offbeat {
			// Swing pushes offbeats toward the triplet position.
			start += swing * (1.0/3.0 - 0.0) / 2
		}

		for i, pitch := range pitches {
			velocity := defaultVelocity
			if offbeat {
				velocity -= 12
			}
			// Deterministic humanize spread keeps the reducer and renderer
			// replayable: voice index modulates velocity, not a RNG.
			velocity += int(humanize * float64((i%3)-1) * 8)
			if velocity < 1 {
				velocity = 1
			}
			if velocity > 127 {
				velocity = 127
			}

			events = append(events, models.NoteEvent{
				MidiNoteNumber: pitch,
				Velocity:       velocity,
				StartBeats:     start,
				DurationBeats:  0.5,
			})
		}
	}
	return events
}
