package beatmap

import "time"

// SampleSet selects the bank a hit sample is played from. SampleNone means
// inherit from the next level up (object base, then timing point).
type SampleSet uint8

const (
	SampleNone SampleSet = iota
	SampleNormal
	SampleSoft
	SampleDrum
)

func (s SampleSet) String() string {
	switch s {
	case SampleNormal:
		return "normal"
	case SampleSoft:
		return "soft"
	case SampleDrum:
		return "drum"
	}
	return "none"
}

// Additions is the raw hitsound bitfield of an object or slider edge.
// Bit 0 is the always-implied normal hit and is carried through untouched.
type Additions uint8

const (
	AdditionWhistle Additions = 1 << 1
	AdditionFinish  Additions = 1 << 2
	AdditionClap    Additions = 1 << 3
)

func (a Additions) Has(add Additions) bool {
	return a&add != 0
}

// SampleInfo is the sample block of an object, "ns:as:index:volume:filename"
// in the file.
type SampleInfo struct {
	NormalSet   SampleSet
	AdditionSet SampleSet
	Index       int
	Volume      int
	Filename    string
}

// EdgePair is the per-edge sample set override of a slider, "ns:as" in the
// file. The zero value means no override.
type EdgePair struct {
	NormalSet   SampleSet
	AdditionSet SampleSet
}

type ObjectKind uint8

const (
	KindCircle ObjectKind = iota
	KindSlider
	KindSpinner
	KindHold
)

// Base holds the fields shared by every hit object. Type keeps the raw
// object type bits so combo flags survive a rewrite.
type Base struct {
	X, Y      int
	Time      time.Duration
	Type      int
	Additions Additions
	Sample    SampleInfo
}

type HitObject interface {
	Kind() ObjectKind
	Base() *Base
}

type Circle struct {
	B Base
}

func (c *Circle) Kind() ObjectKind { return KindCircle }
func (c *Circle) Base() *Base      { return &c.B }

// Slider plays a hitsound on every edge: the head, each repeat, and the
// tail. EdgeSounds and EdgeSets are indexed by edge and may be shorter than
// Slides+1 in the file.
type Slider struct {
	B          Base
	PathSpec   string
	Slides     int
	Length     float64
	EdgeSounds []Additions
	EdgeSets   []EdgePair
}

func (s *Slider) Kind() ObjectKind { return KindSlider }
func (s *Slider) Base() *Base      { return &s.B }

type Spinner struct {
	B       Base
	EndTime time.Duration
}

func (s *Spinner) Kind() ObjectKind { return KindSpinner }
func (s *Spinner) Base() *Base      { return &s.B }

// Hold is a mania hold note. Its sample plays when the hold is pressed.
type Hold struct {
	B       Base
	EndTime time.Duration
}

func (h *Hold) Kind() ObjectKind { return KindHold }
func (h *Hold) Base() *Base      { return &h.B }
