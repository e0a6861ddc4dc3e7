package habit

import (
	"math"
	"time"
)

// clampPercent bounds a percentage to [0,100]. Out-of-range values can only
// come from anomalous data (e.g. completions logged before CreatedAt after a
// migration) and are clamped rather than surfaced as errors.
func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// percentOf rounds completed/possible to a whole percentage, clamped.
// possible <= 0 is defined as 0, never a division error.
func percentOf(completed, possible int) int {
	if possible <= 0 {
		return 0
	}
	return clampPercent(int(math.Round(float64(completed) / float64(possible) * 100)))
}

// CompletionRate returns the habit's lifetime completion percentage as of
// the given instant: actual completed entries over expected occurrences
// since CreatedAt. Daily habits expect one occurrence per elapsed day,
// weekly habits one per elapsed week (ceiling), both floored at one.
// A CreatedAt in the future yields 0.
func CompletionRate(h Habit, now time.Time) int {
	created, err := ParseDateKey(h.CreatedAt)
	if err != nil {
		return 0
	}
	days := DaysBetween(created, now)
	if days < 0 {
		return 0
	}

	var expected int
	switch h.Frequency {
	case FrequencyWeekly:
		expected = int(math.Ceil(float64(days) / 7))
	default:
		expected = days + 1
	}
	if expected < 1 {
		expected = 1
	}

	actual := 0
	for _, c := range h.Completions {
		if c.IsCompleted(h.Target) {
			actual++
		}
	}
	return percentOf(actual, expected)
}
