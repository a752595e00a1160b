package hitsound

import "time"

// searchLenient binary searches n time-sorted entries for needle, treating
// two times within leniency of each other as equal. On a match it returns
// (index, true), scanning outward over every entry still inside the window
// so the closest candidate wins. Otherwise it returns (insertion point,
// false).
func searchLenient(n int, at func(int) time.Duration, needle, leniency time.Duration) (int, bool) {
	if n == 0 {
		return 0, false
	}

	base, size := 0, n
	for size > 1 {
		half := size / 2
		mid := base + half
		// keep the lower half only when mid is strictly past the window
		if at(mid)-needle <= leniency {
			base = mid
		}
		size -= half
	}

	if abs(at(base)-needle) <= leniency {
		best := base
		for i := base - 1; i >= 0 && needle-at(i) <= leniency; i-- {
			if abs(at(i)-needle) < abs(at(best)-needle) {
				best = i
			}
		}
		for i := base + 1; i < n && at(i)-needle <= leniency; i++ {
			if abs(at(i)-needle) < abs(at(best)-needle) {
				best = i
			}
		}
		return best, true
	}
	if at(base) < needle {
		return base + 1, false
	}
	return base, false
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}
