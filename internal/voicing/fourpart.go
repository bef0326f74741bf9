package voicing

import "github.com/Conceptual-Machines/magda-arranger/internal/theory"

// maxMovement is the widest jump a voice takes before candidates outside
// the window are ignored (a perfect fifth).
const maxMovement = 7

// diversityBonus shrinks the effective distance of candidates whose pitch
// class is not yet sounding in another voice.
const diversityBonus = 2

// bassOctave pins the bass voice register (slash bass or root near E1-E2)
const bassOctave = 36

// VoiceRange bounds one voice of a four-part texture
type VoiceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether a pitch lies inside the range
func (r VoiceRange) Contains(pitch int) bool {
	return pitch >= r.Min && pitch <= r.Max
}

// FourPartRanges configures the pitch range of each SATB voice
type FourPartRanges struct {
	Soprano VoiceRange `json:"soprano"`
	Alto    VoiceRange `json:"alto"`
	Tenor   VoiceRange `json:"tenor"`
	Bass    VoiceRange `json:"bass"`
}

// DefaultFourPartRanges returns conventional SATB ranges
func DefaultFourPartRanges() FourPartRanges {
	return FourPartRanges{
		Soprano: VoiceRange{Min: 60, Max: 81}, // C4-A5
		Alto:    VoiceRange{Min: 55, Max: 74}, // G3-D5
		Tenor:   VoiceRange{Min: 48, Max: 67}, // C3-G4
		Bass:    VoiceRange{Min: 36, Max: 60}, // C2-C4
	}
}

// FourPartVoicing is a named SATB pitch assignment
type FourPartVoicing struct {
	Soprano int `json:"soprano"`
	Alto    int `json:"alto"`
	Tenor   int `json:"tenor"`
	Bass    int `json:"bass"`
}

// Pitches returns the voicing as a bass-to-soprano slice
func (v FourPartVoicing) Pitches() []int {
	return []int{v.Bass, v.Tenor, v.Alto, v.Soprano}
}

// ApplyVoiceLeading produces a four-part voicing for the chord. The bass is
// pinned to the slash bass (or root) in a fixed low octave searched within
// the bass range; tenor, alto and soprano each pick the chord tone, across
// octaves 2-6, closest to their previous pitch within maxMovement, with a
// small bonus for pitch classes no other voice has taken this pass. When no
// candidate fits the window the nearest one is used regardless, so the
// function is total. With no previous voicing a close position is built and
// octave-shifted into each range.
func ApplyVoiceLeading(chord theory.Chord, previous *FourPartVoicing, ranges FourPartRanges) FourPartVoicing {
	if previous == nil {
		return initialFourPart(chord, ranges)
	}

	out := FourPartVoicing{}
	out.Bass = placeBass(chord, ranges.Bass)

	tones := chordTonePitchClasses(chord)
	used := map[int]bool{theory.PitchClass(out.Bass): true}

	out.Tenor = leadUpperVoice(tones, previous.Tenor, ranges.Tenor, used)
	used[theory.PitchClass(out.Tenor)] = true
	out.Alto = leadUpperVoice(tones, previous.Alto, ranges.Alto, used)
	used[theory.PitchClass(out.Alto)] = true
	out.Soprano = leadUpperVoice(tones, previous.Soprano, ranges.Soprano, used)

	return out
}

// placeBass anchors the bass pitch class in the fixed low octave, then
// shifts by octaves until it sits inside the bass range.
func placeBass(chord theory.Chord, r VoiceRange) int {
	pitch := bassOctave + chord.BassOrRoot()
	return clampToRange(pitch, r)
}

// leadUpperVoice searches every chord tone across octaves 2-6 for the
// in-range candidate with the smallest effective distance to the previous
// pitch. Candidates beyond maxMovement are skipped; if none qualify, the
// nearest candidate wins unclamped.
func leadUpperVoice(tones []int, prev int, r VoiceRange, used map[int]bool) int {
	best := -1
	bestDist := -1
	fallback := -1
	fallbackDist := -1

	for _, pc := range tones {
		for oct := 2; oct <= 6; oct++ {
			candidate := oct*theory.PitchClasses + pc
			dist := abs(candidate - prev)

			if fallbackDist < 0 || dist < fallbackDist {
				fallbackDist = dist
				fallback = candidate
			}

			if !r.Contains(candidate) || dist > maxMovement {
				continue
			}

			effective := dist
			if !used[pc] {
				effective -= diversityBonus
			}
			if bestDist < 0 || effective < bestDist {
				bestDist = effective
				best = candidate
			}
		}
	}

	if best >= 0 {
		return best
	}
	return fallback
}

// initialFourPart builds a close-position voicing from the chord tones and
// clamps each voice into its range.
func initialFourPart(chord theory.Chord, ranges FourPartRanges) FourPartVoicing {
	intervals := chord.Intervals()
	root := baseRegister + chord.Root

	pick := func(i int) int {
		return root + intervals[i%len(intervals)] + (i/len(intervals))*theory.PitchClasses
	}

	return FourPartVoicing{
		Bass:    clampToRange(bassOctave+chord.BassOrRoot(), ranges.Bass),
		Tenor:   clampToRange(pick(0), ranges.Tenor),
		Alto:    clampToRange(pick(1), ranges.Alto),
		Soprano: clampToRange(pick(2), ranges.Soprano),
	}
}

// clampToRange octave-shifts a pitch until it lies inside the range, then
// hard-clamps if the range is narrower than an octave.
func clampToRange(pitch int, r VoiceRange) int {
	for pitch < r.Min {
		pitch += theory.PitchClasses
	}
	for pitch > r.Max {
		pitch -= theory.PitchClasses
	}
	if pitch < r.Min {
		pitch = r.Min
	}
	return pitch
}

// chordTonePitchClasses reduces the chord's interval pattern to distinct
// pitch classes, preserving pattern order.
func chordTonePitchClasses(chord theory.Chord) []int {
	seen := make(map[int]bool)
	out := make([]int, 0, 8)
	for _, iv := range chord.Intervals() {
		pc := theory.PitchClass(chord.Root + iv)
		if !seen[pc] {
			seen[pc] = true
			out = append(out, pc)
		}
	}
	return out
}
