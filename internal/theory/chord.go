package theory

// Quality represents the quality/type of a chord
type Quality string

const (
	QualityMajor    Quality = "major"
	QualityMinor    Quality = "minor"
	QualityDim      Quality = "diminished"
	QualityAug      Quality = "augmented"
	QualityDom7     Quality = "dominant7"
	QualityMaj7     Quality = "major7"
	QualityMin7     Quality = "minor7"
	QualityDim7     Quality = "diminished7"
	QualityHalfDim7 Quality = "halfdiminished7"
	QualitySus2     Quality = "sus2"
	QualitySus4     Quality = "sus4"
	QualityPower    Quality = "power"
	QualitySix      Quality = "6"
	QualityMin6     Quality = "minor6"
	QualityNine     Quality = "9"
	QualityMin9     Quality = "minor9"
	QualityMaj9     Quality = "major9"
	QualityEleven   Quality = "11"
	QualityMin11    Quality = "minor11"
	QualityThirteen Quality = "13"
	QualityMin13    Quality = "minor13"
)

// qualityIntervals maps each quality to its interval pattern in semitones
// from the root. Intervals above 12 are compound (9th = 14, 11th = 17,
// 13th = 21); they reduce mod 12 for recognition but keep their register
// for voicing.
var qualityIntervals = map[Quality][]int{
	QualityMajor:    {0, 4, 7},
	QualityMinor:    {0, 3, 7},
	QualityDim:      {0, 3, 6},
	QualityAug:      {0, 4, 8},
	QualityDom7:     {0, 4, 7, 10},
	QualityMaj7:     {0, 4, 7, 11},
	QualityMin7:     {0, 3, 7, 10},
	QualityDim7:     {0, 3, 6, 9},
	QualityHalfDim7: {0, 3, 6, 10},
	QualitySus2:     {0, 2, 7},
	QualitySus4:     {0, 5, 7},
	QualityPower:    {0, 7},
	QualitySix:      {0, 4, 7, 9},
	QualityMin6:     {0, 3, 7, 9},
	QualityNine:     {0, 4, 7, 10, 14},
	QualityMin9:     {0, 3, 7, 10, 14},
	QualityMaj9:     {0, 4, 7, 11, 14},
	QualityEleven:   {0, 4, 7, 10, 14, 17},
	QualityMin11:    {0, 3, 7, 10, 14, 17},
	QualityThirteen: {0, 4, 7, 10, 14, 21},
	QualityMin13:    {0, 3, 7, 10, 14, 17, 21},
}

// qualitySuffixes maps each quality to its chord symbol suffix
var qualitySuffixes = map[Quality]string{
	QualityMajor:    "",
	QualityMinor:    "m",
	QualityDim:      "dim",
	QualityAug:      "aug",
	QualityDom7:     "7",
	QualityMaj7:     "maj7",
	QualityMin7:     "m7",
	QualityDim7:     "dim7",
	QualityHalfDim7: "m7b5",
	QualitySus2:     "sus2",
	QualitySus4:     "sus4",
	QualityPower:    "5",
	QualitySix:      "6",
	QualityMin6:     "m6",
	QualityNine:     "9",
	QualityMin9:     "m9",
	QualityMaj9:     "maj9",
	QualityEleven:   "11",
	QualityMin11:    "m11",
	QualityThirteen: "13",
	QualityMin13:    "m13",
}

// recognitionOrder fixes the order qualities are tested during recognition
// so that scoring ties resolve deterministically. Larger patterns first so
// an exact seventh-chord match beats its embedded triad before the size
// bonus is even considered.
var recognitionOrder = []Quality{
	QualityMin13, QualityThirteen, QualityMin11, QualityEleven,
	QualityMin9, QualityMaj9, QualityNine,
	QualityDom7, QualityMaj7, QualityMin7, QualityDim7, QualityHalfDim7,
	QualitySix, QualityMin6,
	QualityMajor, QualityMinor, QualityDim, QualityAug,
	QualitySus2, QualitySus4,
	QualityPower,
}

// Intervals returns the interval pattern for a quality. Unknown qualities
// fall back to a major triad, preserving the total-function contract.
func (q Quality) Intervals() []int {
	if iv, ok := qualityIntervals[q]; ok {
		out := make([]int, len(iv))
		copy(out, iv)
		return out
	}
	return []int{0, 4, 7}
}

// Suffix returns the chord symbol suffix for a quality (e.g. "m7")
func (q Quality) Suffix() string {
	if s, ok := qualitySuffixes[q]; ok {
		return s
	}
	return ""
}

// NoBass marks the absence of a slash bass on a Chord
const NoBass = -1

// Chord is an immutable recognized chord. Root and Bass are pitch classes
// (0-11); Bass is NoBass unless the chord is a slash chord.
type Chord struct {
	Root        int      `json:"root"`
	Quality     Quality  `json:"quality"`
	Bass        int      `json:"bass"`
	Extensions  []int    `json:"extensions,omitempty"`
	Alterations []string `json:"alterations,omitempty"`
	SourceNotes []int    `json:"source_notes,omitempty"`
	Symbol      string   `json:"symbol"`
}

// NewChord builds a chord and generates its symbol. Root and bass are
// reduced mod 12; pass NoBass when the bass equals the root.
func NewChord(root int, quality Quality, bass int, sourceNotes []int) Chord {
	root = PitchClass(root)
	if bass != NoBass {
		bass = PitchClass(bass)
		if bass == root {
			bass = NoBass
		}
	}
	c := Chord{
		Root:        root,
		Quality:     quality,
		Bass:        bass,
		SourceNotes: sourceNotes,
	}
	c.Symbol = c.symbol()
	return c
}

// IsSlash reports whether the chord has a bass note different from its root
func (c Chord) IsSlash() bool {
	return c.Bass != NoBass
}

// BassOrRoot returns the slash bass when present, the root otherwise
func (c Chord) BassOrRoot() int {
	if c.IsSlash() {
		return c.Bass
	}
	return c.Root
}

// Intervals returns the chord's interval pattern (copy, safe to modify)
func (c Chord) Intervals() []int {
	return c.Quality.Intervals()
}

// WithQuality returns a copy of the chord with a different quality and a
// regenerated symbol. The receiver is not modified.
func (c Chord) WithQuality(q Quality) Chord {
	out := c
	out.Quality = q
	out.Extensions = append([]int(nil), c.Extensions...)
	out.Alterations = append([]string(nil), c.Alterations...)
	out.Symbol = out.symbol()
	return out
}

// WithBass returns a copy of the chord with the given slash bass and a
// regenerated symbol
func (c Chord) WithBass(bass int) Chord {
	out := c
	bass = PitchClass(bass)
	if bass == out.Root {
		out.Bass = NoBass
	} else {
		out.Bass = bass
	}
	out.Extensions = append([]int(nil), c.Extensions...)
	out.Alterations = append([]string(nil), c.Alterations...)
	out.Symbol = out.symbol()
	return out
}

func (c Chord) symbol() string {
	sym := NoteName(c.Root) + c.Quality.Suffix()
	for _, alt := range c.Alterations {
		sym += alt
	}
	if c.IsSlash() {
		sym += "/" + NoteName(c.Bass)
	}
	return sym
}
