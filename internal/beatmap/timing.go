package beatmap

import "time"

// TimingPoint is one row of the [TimingPoints] section. An uninherited
// point defines the tempo; an inherited point reuses the previous tempo and
// encodes a slider velocity multiplier in its negative BeatLength.
type TimingPoint struct {
	Time        time.Duration
	BeatLength  float64 // milliseconds per beat, negative when inherited
	Meter       int
	SampleSet   SampleSet
	SampleIndex int
	Volume      int
	Uninherited bool
	Effects     int
}

func (tp *TimingPoint) Kiai() bool {
	return tp.Effects&1 != 0
}

// Velocity returns the slider velocity multiplier active in this section.
func (tp *TimingPoint) Velocity() float64 {
	if !tp.Uninherited && tp.BeatLength < 0 {
		return 100.0 / -tp.BeatLength
	}
	return 1.0
}
