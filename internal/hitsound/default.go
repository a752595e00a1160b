package hitsound

import (
	"log/slog"
	"sort"
	"time"

	"git.lost.host/meutraa/hscopy/internal/beatmap"
)

// DefaultCopier aligns hitsound instants between maps by time, within
// Leniency. SliderBody additionally treats a slider's start as an instant
// of its own, for the sustained body sample.
type DefaultCopier struct {
	Leniency   time.Duration
	SliderBody bool
	Log        *slog.Logger
}

func (c *DefaultCopier) logger() *slog.Logger {
	if nil != c.Log {
		return c.Log
	}
	return slog.Default()
}

func (c *DefaultCopier) Copy(src *beatmap.Beatmap, dsts []*beatmap.Beatmap) error {
	data, err := c.Collect(src)
	if nil != err {
		return err
	}
	for _, dst := range dsts {
		if err := c.Apply(data, dst); nil != err {
			return err
		}
	}
	return nil
}

// Collect resolves the hitsound at every instant of the map. The timing
// point cursor only ever moves forward over a time-sorted copy, so the
// source map itself is never reordered.
func (c *DefaultCopier) Collect(b *beatmap.Beatmap) (*Data, error) {
	times, err := hitTimes(b, c.SliderBody)
	if nil != err {
		return nil, err
	}

	tps := append([]beatmap.TimingPoint(nil), b.TimingPoints...)
	sort.SliceStable(tps, func(i, j int) bool { return tps[i].Time < tps[j].Time })

	hits := make([]Hit, 0, len(times))
	tpIdx := 0
	for _, ht := range times {
		for tpIdx+1 < len(tps) && tps[tpIdx+1].Time <= ht.Time {
			tpIdx++
		}
		var tp *beatmap.TimingPoint
		if len(tps) > 0 {
			tp = &tps[tpIdx]
		}

		if ht.Object < 0 || ht.Object >= len(b.HitObjects) {
			c.logger().Debug("instant references missing object", "object", ht.Object)
			continue
		}
		additions, sample := resolve(b.HitObjects[ht.Object], ht.Repeat, tp)
		hits = append(hits, Hit{
			Time:      ht.Time,
			Additions: additions,
			Sample:    sample,
			Edge:      ht.Repeat >= 0,
		})
	}

	sections := make([]SectionProps, 0, len(tps))
	for i := range tps {
		tp := &tps[i]
		if n := len(sections); n > 0 && sections[n-1].Volume == tp.Volume {
			continue
		}
		sections = append(sections, SectionProps{
			Time:        tp.Time,
			Volume:      tp.Volume,
			Kiai:        tp.Kiai(),
			SampleIndex: tp.SampleIndex,
		})
	}

	return &Data{Hits: hits, Sections: sections}, nil
}

// Reset clears every hitsound attribute, leaving a map that re-applies
// identically no matter what it held before.
func (c *DefaultCopier) Reset(b *beatmap.Beatmap) {
	for _, ho := range b.HitObjects {
		base := ho.Base()
		base.Additions = 0
		base.Sample = beatmap.SampleInfo{}
		if s, ok := ho.(*beatmap.Slider); ok {
			for i := range s.EdgeSounds {
				s.EdgeSounds[i] = 0
			}
			for i := range s.EdgeSets {
				s.EdgeSets[i] = beatmap.EdgePair{}
			}
		}
	}
}
