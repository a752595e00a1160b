package beatmap

import (
	"fmt"
	"sort"
	"time"
)

// Section is one "[Name]" block of a .osu document. Sections the copier
// never modifies keep their raw lines and are written back verbatim;
// [TimingPoints] and [HitObjects] are regenerated from the parsed model and
// carry no lines here.
type Section struct {
	Name  string
	Lines []string
}

// DefaultSliderMultiplier is used when the [Difficulty] section does not
// specify one.
const DefaultSliderMultiplier = 1.4

type Beatmap struct {
	FormatVersion    int
	SliderMultiplier float64
	HitObjects       []HitObject
	TimingPoints     []TimingPoint
	Sections         []Section
}

// SortObjects stable-sorts the hit objects by start time. Objects sharing a
// start time keep their file order.
func (b *Beatmap) SortObjects() {
	sort.SliceStable(b.HitObjects, func(i, j int) bool {
		return b.HitObjects[i].Base().Time < b.HitObjects[j].Base().Time
	})
}

func (b *Beatmap) SortTimingPoints() {
	sort.SliceStable(b.TimingPoints, func(i, j int) bool {
		return b.TimingPoints[i].Time < b.TimingPoints[j].Time
	})
}

// TimingPointAt returns the last timing point at or before t, or the first
// point if t precedes all of them. ok is false when the map has none.
func (b *Beatmap) TimingPointAt(t time.Duration) (*TimingPoint, bool) {
	if len(b.TimingPoints) == 0 {
		return nil, false
	}
	sel := 0
	for i := range b.TimingPoints {
		if b.TimingPoints[i].Time > t {
			break
		}
		sel = i
	}
	return &b.TimingPoints[sel], true
}

// UninheritedAt returns the uninherited timing point governing the tempo at
// t, following the same at-or-before rule as TimingPointAt.
func (b *Beatmap) UninheritedAt(t time.Duration) (*TimingPoint, bool) {
	var sel *TimingPoint
	for i := range b.TimingPoints {
		tp := &b.TimingPoints[i]
		if !tp.Uninherited {
			continue
		}
		if tp.Time > t && sel != nil {
			break
		}
		sel = tp
	}
	return sel, sel != nil
}

// SliderDuration computes the full duration of a slider across all of its
// slides from the timing context at its start time.
func (b *Beatmap) SliderDuration(s *Slider) (time.Duration, error) {
	u, ok := b.UninheritedAt(s.B.Time)
	if !ok {
		return 0, fmt.Errorf("no uninherited timing point at %v", s.B.Time)
	}
	if u.BeatLength <= 0 {
		return 0, fmt.Errorf("invalid beat length %v at %v", u.BeatLength, u.Time)
	}
	velocity := 1.0
	if tp, ok := b.TimingPointAt(s.B.Time); ok {
		velocity = tp.Velocity()
	}
	multiplier := b.SliderMultiplier
	if multiplier <= 0 {
		multiplier = DefaultSliderMultiplier
	}
	slides := s.Slides
	if slides < 1 {
		slides = 1
	}
	beats := s.Length / (multiplier * 100.0 * velocity)
	ms := beats * u.BeatLength * float64(slides)
	return time.Duration(ms * float64(time.Millisecond)), nil
}

// Clone deep-copies the beatmap. Callers that need all-or-nothing mutation
// apply to a clone and swap on success.
func (b *Beatmap) Clone() *Beatmap {
	c := &Beatmap{
		FormatVersion:    b.FormatVersion,
		SliderMultiplier: b.SliderMultiplier,
		HitObjects:       make([]HitObject, len(b.HitObjects)),
		TimingPoints:     append([]TimingPoint(nil), b.TimingPoints...),
		Sections:         make([]Section, len(b.Sections)),
	}
	for i, ho := range b.HitObjects {
		switch o := ho.(type) {
		case *Circle:
			oc := *o
			c.HitObjects[i] = &oc
		case *Slider:
			oc := *o
			oc.EdgeSounds = append([]Additions(nil), o.EdgeSounds...)
			oc.EdgeSets = append([]EdgePair(nil), o.EdgeSets...)
			c.HitObjects[i] = &oc
		case *Spinner:
			oc := *o
			c.HitObjects[i] = &oc
		case *Hold:
			oc := *o
			c.HitObjects[i] = &oc
		}
	}
	for i, s := range b.Sections {
		c.Sections[i] = Section{Name: s.Name, Lines: append([]string(nil), s.Lines...)}
	}
	return c
}
