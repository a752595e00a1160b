package hitsound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(times []time.Duration) func(int) time.Duration {
	return func(i int) time.Duration { return times[i] }
}

func TestSearchLenient(t *testing.T) {
	ms := time.Millisecond
	list := []time.Duration{0, 1 * ms, 2 * ms, 3 * ms, 4 * ms}

	tests := []struct {
		name     string
		needle   time.Duration
		leniency time.Duration
		index    int
		found    bool
	}{
		{"just after within window", 2050 * time.Microsecond, 100 * time.Microsecond, 2, true},
		{"just before within window", 1950 * time.Microsecond, 100 * time.Microsecond, 2, true},
		{"just after outside window", 2050 * time.Microsecond, 30 * time.Microsecond, 3, false},
		{"just before outside window", 1950 * time.Microsecond, 30 * time.Microsecond, 2, false},
		{"exact with zero leniency", 3 * ms, 0, 3, true},
		{"near miss with zero leniency", 3*ms + 1, 0, 4, false},
		{"before everything", -5 * ms, 100 * time.Microsecond, 0, false},
		{"after everything", 10 * ms, 100 * time.Microsecond, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := searchLenient(len(list), at(list), tt.needle, tt.leniency)
			assert.Equal(t, tt.index, index)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestSearchLenientEmpty(t *testing.T) {
	index, found := searchLenient(0, at(nil), time.Second, time.Millisecond)
	assert.Equal(t, 0, index)
	assert.False(t, found)
}

// With several entries crowded inside one window, the scan must reach past
// the immediate neighbors of the descent's landing point to the true
// closest.
func TestSearchLenientCrowdedWindow(t *testing.T) {
	list := []time.Duration{
		10000 * time.Microsecond,
		10020 * time.Microsecond,
		10500 * time.Microsecond,
		10900 * time.Microsecond,
	}

	index, found := searchLenient(len(list), at(list), 10030*time.Microsecond, time.Millisecond)
	assert.True(t, found)
	assert.Equal(t, 1, index)
}

// When two entries both fall inside the window, the closer one wins.
func TestSearchLenientTieBreak(t *testing.T) {
	ms := time.Millisecond
	list := []time.Duration{10 * ms, 10800 * time.Microsecond}

	index, found := searchLenient(len(list), at(list), 10500*time.Microsecond, ms)
	assert.True(t, found)
	assert.Equal(t, 1, index)

	index, found = searchLenient(len(list), at(list), 10200*time.Microsecond, ms)
	assert.True(t, found)
	assert.Equal(t, 0, index)
}
