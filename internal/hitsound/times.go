package hitsound

import (
	"fmt"
	"sort"
	"time"

	"git.lost.host/meutraa/hscopy/internal/beatmap"
)

// hitTime is one instant at which a hitsound can play. Repeat is the slider
// edge index, or -1 when the instant is not a slider edge.
type hitTime struct {
	Time   time.Duration
	Object int
	Repeat int
}

// hitTimes enumerates every instant in object order, then stable-sorts by
// time so coincident instants keep object order then edge order. Assumes
// b.HitObjects is sorted by start time.
func hitTimes(b *beatmap.Beatmap, sliderBody bool) ([]hitTime, error) {
	times := []hitTime{}
	for idx, ho := range b.HitObjects {
		switch o := ho.(type) {
		case *beatmap.Circle:
			times = append(times, hitTime{Time: o.B.Time, Object: idx, Repeat: -1})

		case *beatmap.Slider:
			if sliderBody {
				times = append(times, hitTime{Time: o.B.Time, Object: idx, Repeat: -1})
			}
			duration, err := b.SliderDuration(o)
			if nil != err {
				return nil, fmt.Errorf("unable to resolve duration of slider at %v: %w", o.B.Time, err)
			}
			slides := o.Slides
			if slides < 1 {
				slides = 1
			}
			edge := duration / time.Duration(slides)
			for k := 0; k <= slides; k++ {
				times = append(times, hitTime{
					Time:   o.B.Time + time.Duration(k)*edge,
					Object: idx,
					Repeat: k,
				})
			}

		case *beatmap.Spinner:
			times = append(times, hitTime{Time: o.EndTime, Object: idx, Repeat: -1})

		case *beatmap.Hold:
			// A hold's sample plays when the hold is pressed.
			times = append(times, hitTime{Time: o.B.Time, Object: idx, Repeat: -1})
		}
	}

	sort.SliceStable(times, func(i, j int) bool {
		return times[i].Time < times[j].Time
	})
	return times, nil
}
