package hitsound

import (
	"time"

	"git.lost.host/meutraa/hscopy/internal/beatmap"
)

// Apply enumerates the destination's instants and, for each one that has a
// source hit within leniency, writes the resolved attributes onto the
// destination object. Instants with no match are left untouched. Volume
// changes are then walked onto the destination timing points.
func (c *DefaultCopier) Apply(data *Data, b *beatmap.Beatmap) error {
	log := c.logger()

	// the algorithm indexes into both lists, so make sure they are sorted
	b.SortObjects()
	b.SortTimingPoints()

	times, err := hitTimes(b, c.SliderBody)
	if nil != err {
		return err
	}

	for _, ht := range times {
		idx, ok := matchHit(data.Hits, ht.Time, c.Leniency, ht.Repeat >= 0)
		if !ok {
			log.Debug("no hitsound within leniency", "time", ht.Time)
			continue
		}
		hit := &data.Hits[idx]

		if ht.Object < 0 || ht.Object >= len(b.HitObjects) {
			log.Debug("instant references missing object", "object", ht.Object)
			continue
		}
		ho := b.HitObjects[ht.Object]

		if ht.Repeat >= 0 {
			s, ok := ho.(*beatmap.Slider)
			if !ok {
				continue
			}
			growEdges(s, ht.Repeat)
			s.EdgeSounds[ht.Repeat] = hit.Additions
			s.EdgeSets[ht.Repeat] = beatmap.EdgePair{
				NormalSet:   hit.Sample.NormalSet,
				AdditionSet: hit.Sample.AdditionSet,
			}
		} else {
			base := ho.Base()
			base.Additions = hit.Additions
			base.Sample = hit.Sample
		}
	}

	c.applyVolumes(data, b)
	return nil
}

// matchHit finds the record for an instant. When several records share the
// window, one of the same kind wins over a closer one of the other kind: a
// slider body and its first edge sit at the exact same time, and each must
// take its own record. Instants with no like-kind candidate still fall back
// to the closest record, so differently shaped maps keep matching.
func matchHit(hits []Hit, needle, leniency time.Duration, edge bool) (int, bool) {
	idx, ok := searchLenient(len(hits), func(i int) time.Duration {
		return hits[i].Time
	}, needle, leniency)
	if !ok {
		return idx, false
	}

	best := idx
	better := func(i int) bool {
		if hits[i].Edge != hits[best].Edge {
			return hits[i].Edge == edge
		}
		return abs(hits[i].Time-needle) < abs(hits[best].Time-needle)
	}
	for i := idx - 1; i >= 0 && needle-hits[i].Time <= leniency; i-- {
		if better(i) {
			best = i
		}
	}
	for i := idx + 1; i < len(hits) && hits[i].Time-needle <= leniency; i++ {
		if better(i) {
			best = i
		}
	}
	return best, true
}

// applyVolumes writes each collected volume change onto the timing point
// nearest in time, or inserts a new point cloned from the predecessor when
// none is close enough.
func (c *DefaultCopier) applyVolumes(data *Data, b *beatmap.Beatmap) {
	log := c.logger()
	for _, sec := range data.Sections {
		idx, ok := searchLenient(len(b.TimingPoints), func(i int) time.Duration {
			return b.TimingPoints[i].Time
		}, sec.Time, c.Leniency)
		if !ok {
			if len(b.TimingPoints) == 0 {
				log.Debug("no timing points to carry volume", "time", sec.Time)
				continue
			}
			src := idx - 1
			if src < 0 {
				src = 0
			}
			tp := b.TimingPoints[src]
			tp.Time = sec.Time
			b.TimingPoints = append(b.TimingPoints, beatmap.TimingPoint{})
			copy(b.TimingPoints[idx+1:], b.TimingPoints[idx:])
			b.TimingPoints[idx] = tp
			log.Debug("inserted timing point for volume", "time", sec.Time)
		}
		tp := &b.TimingPoints[idx]
		tp.Volume = sec.Volume
		tp.SampleIndex = sec.SampleIndex
	}
}

// growEdges pads the per-edge lists with unset entries up to edge+1 slots.
func growEdges(s *beatmap.Slider, edge int) {
	for len(s.EdgeSounds) <= edge {
		s.EdgeSounds = append(s.EdgeSounds, 0)
	}
	for len(s.EdgeSets) <= edge {
		s.EdgeSets = append(s.EdgeSets, beatmap.EdgePair{})
	}
}
