package theory

import "sort"

// exactSizeBonus rewards interpretations that explain every sounding pitch
// class with no leftovers.
const exactSizeBonus = 10

// DefaultMinNotes is the minimum number of unique pitch classes required
// before recognition is attempted.
const DefaultMinNotes = 3

// RecognizerConfig controls chord recognition. GroupToleranceMS and
// SplitPoint are consumed by the note-grouping host layer before Recognize
// is invoked; they live here so hosts share one configuration record.
type RecognizerConfig struct {
	MinNotes         int  `json:"min_notes"`
	SplitPoint       int  `json:"split_point"`
	DetectSlash      bool `json:"detect_slash"`
	GroupToleranceMS int  `json:"group_tolerance_ms"`
}

// DefaultRecognizerConfig returns the standard recognition settings
func DefaultRecognizerConfig() RecognizerConfig {
	return RecognizerConfig{
		MinNotes:         DefaultMinNotes,
		SplitPoint:       60, // middle C
		DetectSlash:      true,
		GroupToleranceMS: 30,
	}
}

// Recognition is the tri-state result of Recognize: Chord is nil when too
// few pitch classes were present, and Defaulted reports that no interval
// pattern matched and the major-triad fallback was used.
type Recognition struct {
	Chord     *Chord `json:"chord,omitempty"`
	Defaulted bool   `json:"defaulted,omitempty"`
}

// NoChord reports whether recognition found nothing to name
func (r Recognition) NoChord() bool {
	return r.Chord == nil
}

// Recognize identifies the chord sounding in a set of absolute pitch
// numbers. For every pitch class as a candidate root it scores the fixed
// interval-pattern library against the sounding set; the best-scoring
// (root, quality) pair wins, ties favoring the lowest root. When nothing
// matches the result defaults to a major triad on the lowest pitch class.
// Recognize never fails on valid input.
func Recognize(notes []int, cfg RecognizerConfig) Recognition {
	minNotes := cfg.MinNotes
	if minNotes <= 0 {
		minNotes = DefaultMinNotes
	}

	pcs := uniquePitchClasses(notes)
	if len(pcs) < 2 || len(pcs) < minNotes {
		return Recognition{}
	}

	pcSet := make(map[int]bool, len(pcs))
	for _, pc := range pcs {
		pcSet[pc] = true
	}

	bestScore := 0
	bestRoot := -1
	var bestQuality Quality

	for _, root := range pcs {
		for _, quality := range recognitionOrder {
			pattern := qualityIntervals[quality]
			size, matched := matchPattern(root, pattern, pcSet)
			if !matched {
				continue
			}
			score := size
			if size == len(pcs) {
				score += exactSizeBonus
			}
			if score > bestScore {
				bestScore = score
				bestRoot = root
				bestQuality = quality
			}
		}
	}

	lowest := lowestNote(notes)
	defaulted := false
	if bestRoot < 0 {
		// Nothing in the library explains this set; best effort.
		bestRoot = PitchClass(lowest)
		bestQuality = QualityMajor
		defaulted = true
	}

	bass := NoBass
	if cfg.DetectSlash {
		if bassPC := PitchClass(lowest); bassPC != bestRoot {
			bass = bassPC
		}
	}

	src := append([]int(nil), notes...)
	chord := NewChord(bestRoot, bestQuality, bass, src)
	return Recognition{Chord: &chord, Defaulted: defaulted}
}

// matchPattern tests whether every interval of the pattern (mod 12,
// relative to root) is present in the sounding pitch-class set. It returns
// the number of distinct pitch classes the pattern covers.
func matchPattern(root int, pattern []int, pcSet map[int]bool) (int, bool) {
	covered := make(map[int]bool, len(pattern))
	for _, interval := range pattern {
		pc := PitchClass(root + interval)
		if !pcSet[pc] {
			return 0, false
		}
		covered[pc] = true
	}
	return len(covered), true
}

func uniquePitchClasses(notes []int) []int {
	seen := make(map[int]bool, len(notes))
	pcs := make([]int, 0, PitchClasses)
	for _, n := range notes {
		pc := PitchClass(n)
		if !seen[pc] {
			seen[pc] = true
			pcs = append(pcs, pc)
		}
	}
	sort.Ints(pcs)
	return pcs
}

func lowestNote(notes []int) int {
	lowest := notes[0]
	for _, n := range notes[1:] {
		if n < lowest {
			lowest = n
		}
	}
	return lowest
}
