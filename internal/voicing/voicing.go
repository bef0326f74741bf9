// Package voicing turns recognized chords into concrete pitch assignments
// for accompaniment parts, minimizing motion from the previous assignment.
package voicing

import "github.com/Conceptual-Machines/magda-arranger/internal/theory"

// Style selects how chord tones are distributed across voices
type Style string

const (
	StyleClose    Style = "close"
	StyleOpen     Style = "open"
	StyleDrop2    Style = "drop2"
	StyleDrop3    Style = "drop3"
	StyleRootless Style = "rootless"
	StyleSpread   Style = "spread"
)

// baseRegister anchors the chord root near C3 (MIDI 48)
const baseRegister = 48

// octaveSearchRange bounds the voice-leading octave search to -2..+2
// octaves, keeping the hot path constant-time per voice.
const octaveSearchRange = 2

// Allocate maps a chord to voiceCount absolute pitches in the requested
// style. When previous has the same length, a greedy voice-leading pass
// transposes each voice by octaves toward the nearest unclaimed previous
// pitch. The result always has exactly voiceCount entries.
func Allocate(chord theory.Chord, previous []int, voiceCount int, style Style) []int {
	if voiceCount <= 0 {
		return []int{}
	}

	base := basePitches(chord, voiceCount, style)

	if len(previous) == len(base) && len(previous) > 0 {
		base = leadVoices(base, previous)
	}

	return base
}

// basePitches computes the style's deterministic pitch set before any
// voice-leading adjustment.
func basePitches(chord theory.Chord, voiceCount int, style Style) []int {
	intervals := chord.Intervals()
	root := baseRegister + chord.Root

	tones := make([]int, 0, voiceCount)

	switch style {
	case StyleDrop2, StyleDrop3:
		// Take the first four chord tones in close position, then drop the
		// 2nd or 3rd voice from the top an octave.
		stack := make([]int, 0, 4)
		for i := 0; i < 4; i++ {
			iv := intervals[i%len(intervals)]
			stack = append(stack, root+iv+(i/len(intervals))*theory.PitchClasses)
		}
		dropIdx := 2
		if style == StyleDrop3 {
			dropIdx = 1
		}
		stack[dropIdx] -= theory.PitchClasses
		for i := 0; i < voiceCount; i++ {
			tones = append(tones, stack[i%len(stack)]+(i/len(stack))*theory.PitchClasses)
		}

	case StyleRootless:
		// Omit the root; voicing starts at the 3rd.
		upper := intervals
		if len(upper) > 1 {
			upper = upper[1:]
		}
		for i := 0; i < voiceCount; i++ {
			iv := upper[i%len(upper)]
			tones = append(tones, root+iv+(i/len(upper))*theory.PitchClasses)
		}

	case StyleOpen:
		// Alternate voices into the next octave for a wider spacing.
		for i := 0; i < voiceCount; i++ {
			iv := intervals[i%len(intervals)]
			pitch := root + iv + (i/len(intervals))*theory.PitchClasses
			if i%2 == 1 {
				pitch += theory.PitchClasses
			}
			tones = append(tones, pitch)
		}

	case StyleSpread:
		// Stride upward: every second voice climbs another octave on top of
		// the four-tone octave stacking.
		for i := 0; i < voiceCount; i++ {
			iv := intervals[i%len(intervals)]
			tones = append(tones, root+iv+(i/4)*theory.PitchClasses+(i/2)*theory.PitchClasses)
		}

	default: // StyleClose
		// Octave stacking assumes four tones per octave, so triads revisit a
		// tone before climbing.
		for i := 0; i < voiceCount; i++ {
			iv := intervals[i%len(intervals)]
			tones = append(tones, root+iv+(i/4)*theory.PitchClasses)
		}
	}

	return tones
}

// leadVoices replaces each computed pitch with the octave transposition of
// itself closest to some not-yet-claimed previous pitch. Voices are
// processed in declaration order and claiming is greedy: after choosing a
// transposition, the previous pitch nearest the transposed result is
// removed from the pool. Locally minimal, not globally optimal.
func leadVoices(pitches, previous []int) []int {
	claimed := make([]bool, len(previous))
	out := make([]int, len(pitches))

	for v, pitch := range pitches {
		bestPitch := pitch
		bestDist := -1

		for oct := -octaveSearchRange; oct <= octaveSearchRange; oct++ {
			candidate := pitch + oct*theory.PitchClasses
			for p, prev := range previous {
				if claimed[p] {
					continue
				}
				dist := abs(candidate - prev)
				if bestDist < 0 || dist < bestDist {
					bestDist = dist
					bestPitch = candidate
				}
			}
		}

		out[v] = bestPitch

		// Claim the previous pitch nearest the chosen result, which is not
		// necessarily the one that drove the transposition.
		nearest := -1
		nearestDist := -1
		for p, prev := range previous {
			if claimed[p] {
				continue
			}
			dist := abs(bestPitch - prev)
			if nearestDist < 0 || dist < nearestDist {
				nearestDist = dist
				nearest = p
			}
		}
		if nearest >= 0 {
			claimed[nearest] = true
		}
	}

	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
