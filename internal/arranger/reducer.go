package arranger

import (
	"github.com/Conceptual-Machines/magda-arranger/internal/styles"
	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
)

// Reduce maps (state, command) to a new state. It is pure and total: every
// command variant yields a well-defined snapshot, unknown style ids and
// unknown command types leave the state unchanged, and numeric inputs are
// clamped rather than rejected. The input state is never modified.
func Reduce(state State, cmd Command) State {
	switch cmd.Type {
	case CmdLoadStyle:
		return reduceLoadStyle(state, cmd.StyleID)

	case CmdPlay:
		state.IsPlaying = true
		return state

	case CmdStop:
		state.IsPlaying = false
		state.PositionTicks = 0
		return state

	case CmdSetVariation:
		state.VariationIndex = clampVariation(state, cmd.Variation)
		return state

	case CmdTriggerIntro:
		state.CurrentSection = SectionIntro
		return state

	case CmdTriggerFill:
		state.CurrentSection = SectionFill
		state.FillQueued = true
		return state

	case CmdTriggerBreak:
		state.CurrentSection = SectionBreak
		return state

	case CmdTriggerEnding:
		state.CurrentSection = SectionEnding
		state.EndingQueued = true
		return state

	case CmdSetChord:
		return reduceSetChord(state, cmd.Notes)

	case CmdReleaseChord:
		return reduceReleaseChord(state)

	case CmdSetTempo:
		state.Tempo = clampTempo(cmd.Tempo)
		return state

	case CmdTapTempo:
		return reduceTapTempo(state, cmd.AtMS)

	case CmdSetEnergy:
		state.EnergyLevel = clampLevel(cmd.Level)
		return state

	case CmdSetComplexity:
		state.ComplexityLevel = clampLevel(cmd.Level)
		return state

	case CmdMuteVoice:
		mutes := cloneBoolMap(state.VoiceMutes)
		mutes[cmd.VoiceID] = cmd.On
		state.VoiceMutes = mutes
		return state

	case CmdSoloVoice:
		solos := cloneBoolMap(state.VoiceSolos)
		solos[cmd.VoiceID] = cmd.On
		state.VoiceSolos = solos
		return state

	case CmdSetVoiceVolume:
		volumes := cloneIntMap(state.VoiceVolumes)
		volumes[cmd.VoiceID] = clampVolume(cmd.Volume)
		state.VoiceVolumes = volumes
		return state

	case CmdSetSyncStart:
		state.SyncStart = cmd.On
		return state

	case CmdSetSyncStop:
		state.SyncStop = cmd.On
		return state

	case CmdSetChordMemory:
		state.ChordMemory = cmd.On
		return state

	case CmdSetSplitPoint:
		state.SplitPoint = clampInt(cmd.SplitPoint, 0, 127)
		return state

	case CmdSetSwing:
		state.Swing = clampFloat(cmd.Amount, 0, 1)
		return state

	case CmdSetHumanize:
		state.Humanize = clampFloat(cmd.Amount, 0, 1)
		return state

	case CmdSetSyncToDAW:
		state.SyncToDAW = cmd.On
		return state

	case CmdSyncFromDAW:
		// Only meaningful while the DAW owns the transport. Both the
		// external-tracking fields and the primary fields adopt the host
		// values so the snapshot is consistent either way it is read.
		if !state.SyncToDAW {
			return state
		}
		tempo := clampTempo(cmd.Tempo)
		state.ExternalTempo = tempo
		state.Tempo = tempo
		state.ExternalPositionTicks = cmd.PositionTicks
		state.PositionTicks = cmd.PositionTicks
		return state
	}

	return state
}

func reduceLoadStyle(state State, styleID string) State {
	style, ok := styles.Lookup(styleID)
	if !ok {
		// Absence is silently a no-op; the host checks the table when it
		// wants a user-visible signal.
		return state
	}

	state.StyleID = style.ID
	state.VariationIndex = 0
	state.Tempo = clampTempo(style.DefaultTempo)

	volumes := cloneIntMap(state.VoiceVolumes)
	for _, voice := range style.Voices {
		if _, set := volumes[voice.ID]; !set {
			volumes[voice.ID] = clampVolume(voice.DefaultVolume)
		}
	}
	state.VoiceVolumes = volumes
	return state
}

func reduceSetChord(state State, notes []int) State {
	cfg := theory.DefaultRecognizerConfig()
	cfg.SplitPoint = state.SplitPoint
	cfg.MinNotes = state.MinChordNotes

	recognition := theory.Recognize(notes, cfg)

	state.PreviousChord = state.CurrentChord
	state.CurrentChord = recognition.Chord
	state.ChordDefaulted = recognition.Defaulted

	if state.SyncStart {
		state.IsPlaying = true
	}
	return state
}

func reduceReleaseChord(state State) State {
	if state.ChordMemory {
		return state
	}
	state.CurrentChord = nil
	state.ChordDefaulted = false
	if state.SyncStop {
		state.IsPlaying = false
	}
	return state
}

func reduceTapTempo(state State, atMS int64) State {
	taps := append(append([]int64(nil), state.TapTimesMS...), atMS)
	if len(taps) > maxTapSamples {
		taps = taps[len(taps)-maxTapSamples:]
	}
	state.TapTimesMS = taps

	if len(taps) < 2 {
		return state
	}

	var total int64
	for i := 1; i < len(taps); i++ {
		total += taps[i] - taps[i-1]
	}
	avgMS := float64(total) / float64(len(taps)-1)
	if avgMS <= 0 {
		return state
	}

	state.Tempo = clampTempo(60000 / avgMS)
	return state
}

func clampVariation(state State, index int) int {
	if index < 0 {
		return 0
	}
	if style, ok := styles.Lookup(state.StyleID); ok && style.Variations > 0 && index >= style.Variations {
		return style.Variations - 1
	}
	return index
}

func clampTempo(bpm float64) float64 {
	return clampFloat(bpm, MinTempo, MaxTempo)
}

func clampLevel(level int) int {
	return clampInt(level, MinLevel, MaxLevel)
}

func clampVolume(volume int) int {
	return clampInt(volume, MinVolume, MaxVolume)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
