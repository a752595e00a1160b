package hitsound

import (
	"testing"
	"time"

	"git.lost.host/meutraa/hscopy/internal/beatmap"
	"git.lost.host/meutraa/hscopy/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitTimesFixture(t *testing.T) {
	b, err := testdata.GetBeatmap()
	require.NoError(t, err)

	times, err := hitTimes(b, false)
	require.NoError(t, err)

	ms := time.Millisecond
	expected := []hitTime{
		{Time: 1000 * ms, Object: 0, Repeat: -1}, // circle
		{Time: 2000 * ms, Object: 1, Repeat: 0},  // slider head
		{Time: 2500 * ms, Object: 1, Repeat: 1},  // slider repeat
		{Time: 3000 * ms, Object: 1, Repeat: 2},  // slider tail
		{Time: 6000 * ms, Object: 2, Repeat: -1}, // spinner end
		{Time: 7000 * ms, Object: 3, Repeat: -1}, // hold press
	}
	assert.Equal(t, expected, times)
}

func TestHitTimesSliderBody(t *testing.T) {
	b, err := testdata.GetBeatmap()
	require.NoError(t, err)

	times, err := hitTimes(b, true)
	require.NoError(t, err)

	// one extra instant at the slider's start, without an edge index
	require.Len(t, times, 7)
	assert.Equal(t, hitTime{Time: 2000 * time.Millisecond, Object: 1, Repeat: -1}, times[1])
	assert.Equal(t, hitTime{Time: 2000 * time.Millisecond, Object: 1, Repeat: 0}, times[2])
}

func TestHitTimesEvenSpacing(t *testing.T) {
	b := &beatmap.Beatmap{
		SliderMultiplier: 1.0,
		TimingPoints: []beatmap.TimingPoint{
			{Time: 0, BeatLength: 400, Meter: 4, Volume: 100, Uninherited: true},
		},
		HitObjects: []beatmap.HitObject{
			// 300 length over 1.0x100 = 3 beats of 400ms per slide
			&beatmap.Slider{B: beatmap.Base{Time: time.Second}, Slides: 4, Length: 300},
		},
	}

	times, err := hitTimes(b, false)
	require.NoError(t, err)
	require.Len(t, times, 5)
	for k, ht := range times {
		assert.Equal(t, time.Second+time.Duration(k)*1200*time.Millisecond, ht.Time)
		assert.Equal(t, k, ht.Repeat)
	}
}

func TestHitTimesNoTimingPoints(t *testing.T) {
	b := &beatmap.Beatmap{
		HitObjects: []beatmap.HitObject{
			&beatmap.Slider{B: beatmap.Base{Time: time.Second}, Slides: 1, Length: 100},
		},
	}

	_, err := hitTimes(b, false)
	assert.Error(t, err)
}

// Coincident instants keep object order.
func TestHitTimesStableOrder(t *testing.T) {
	b := &beatmap.Beatmap{
		HitObjects: []beatmap.HitObject{
			&beatmap.Circle{B: beatmap.Base{Time: time.Second}},
			&beatmap.Spinner{B: beatmap.Base{Time: 500 * time.Millisecond}, EndTime: time.Second},
			&beatmap.Circle{B: beatmap.Base{Time: time.Second}},
		},
	}

	times, err := hitTimes(b, false)
	require.NoError(t, err)
	require.Len(t, times, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{times[0].Object, times[1].Object, times[2].Object})
}
