package arranger

// CommandType tags an arranger command variant
type CommandType string

const (
	CmdLoadStyle      CommandType = "load_style"
	CmdPlay           CommandType = "play"
	CmdStop           CommandType = "stop"
	CmdSetVariation   CommandType = "set_variation"
	CmdTriggerIntro   CommandType = "trigger_intro"
	CmdTriggerFill    CommandType = "trigger_fill"
	CmdTriggerBreak   CommandType = "trigger_break"
	CmdTriggerEnding  CommandType = "trigger_ending"
	CmdSetChord       CommandType = "set_chord"
	CmdReleaseChord   CommandType = "release_chord"
	CmdSetTempo       CommandType = "set_tempo"
	CmdTapTempo       CommandType = "tap_tempo"
	CmdSetEnergy      CommandType = "set_energy"
	CmdSetComplexity  CommandType = "set_complexity"
	CmdMuteVoice      CommandType = "mute_voice"
	CmdSoloVoice      CommandType = "solo_voice"
	CmdSetVoiceVolume CommandType = "set_voice_volume"
	CmdSetSyncStart   CommandType = "set_sync_start"
	CmdSetSyncStop    CommandType = "set_sync_stop"
	CmdSetChordMemory CommandType = "set_chord_memory"
	CmdSetSplitPoint  CommandType = "set_split_point"
	CmdSetSwing       CommandType = "set_swing"
	CmdSetHumanize    CommandType = "set_humanize"
	CmdSetSyncToDAW   CommandType = "set_sync_to_daw"
	CmdSyncFromDAW    CommandType = "sync_from_daw"
)

// Command is one arranger command. Type selects the variant; only the
// fields that variant carries are meaningful. Commands are constructed by
// the caller, consumed once by Reduce and discarded.
type Command struct {
	Type CommandType `json:"type"`

	StyleID       string  `json:"style_id,omitempty"`
	Variation     int     `json:"variation,omitempty"`
	Notes         []int   `json:"notes,omitempty"`
	Tempo         float64 `json:"tempo,omitempty"`
	AtMS          int64   `json:"at_ms,omitempty"`
	Level         int     `json:"level,omitempty"`
	VoiceID       string  `json:"voice_id,omitempty"`
	On            bool    `json:"on,omitempty"`
	Volume        int     `json:"volume,omitempty"`
	SplitPoint    int     `json:"split_point,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	PositionTicks int     `json:"position_ticks,omitempty"`
}

// Constructors for the common variants keep call sites terse.

func LoadStyle(styleID string) Command { return Command{Type: CmdLoadStyle, StyleID: styleID} }
func Play() Command                    { return Command{Type: CmdPlay} }
func Stop() Command                    { return Command{Type: CmdStop} }

func SetVariation(index int) Command { return Command{Type: CmdSetVariation, Variation: index} }

func SetChord(notes []int) Command { return Command{Type: CmdSetChord, Notes: notes} }
func ReleaseChord() Command        { return Command{Type: CmdReleaseChord} }

func SetTempo(bpm float64) Command { return Command{Type: CmdSetTempo, Tempo: bpm} }
func TapTempo(atMS int64) Command  { return Command{Type: CmdTapTempo, AtMS: atMS} }

func SetEnergy(level int) Command     { return Command{Type: CmdSetEnergy, Level: level} }
func SetComplexity(level int) Command { return Command{Type: CmdSetComplexity, Level: level} }

func MuteVoice(voiceID string, on bool) Command {
	return Command{Type: CmdMuteVoice, VoiceID: voiceID, On: on}
}

func SoloVoice(voiceID string, on bool) Command {
	return Command{Type: CmdSoloVoice, VoiceID: voiceID, On: on}
}

func SetVoiceVolume(voiceID string, volume int) Command {
	return Command{Type: CmdSetVoiceVolume, VoiceID: voiceID, Volume: volume}
}

func SetSyncStart(on bool) Command   { return Command{Type: CmdSetSyncStart, On: on} }
func SetSyncStop(on bool) Command    { return Command{Type: CmdSetSyncStop, On: on} }
func SetChordMemory(on bool) Command { return Command{Type: CmdSetChordMemory, On: on} }

func SetSplitPoint(note int) Command { return Command{Type: CmdSetSplitPoint, SplitPoint: note} }

func SetSwing(amount float64) Command    { return Command{Type: CmdSetSwing, Amount: amount} }
func SetHumanize(amount float64) Command { return Command{Type: CmdSetHumanize, Amount: amount} }

func SetSyncToDAW(on bool) Command { return Command{Type: CmdSetSyncToDAW, On: on} }

func SyncFromDAW(tempo float64, positionTicks int) Command {
	return Command{Type: CmdSyncFromDAW, Tempo: tempo, PositionTicks: positionTicks}
}
