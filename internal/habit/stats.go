package habit

import (
	"math"
	"time"
)

// Overview is the all-time headline block: totals across every habit.
type Overview struct {
	DaysTracked      int // distinct days with at least one completion
	TotalCompletions int
	AvgConsistency   int // mean lifetime completion rate, rounded
	LongestStreak    int // max persisted best streak
}

// Summarize computes the overview across all habits.
func Summarize(habits []Habit, now time.Time) Overview {
	var o Overview
	if len(habits) == 0 {
		return o
	}

	days := map[string]bool{}
	totalRate := 0
	for _, h := range habits {
		for key, c := range h.Completions {
			if c.IsCompleted(h.Target) {
				days[key] = true
				o.TotalCompletions++
			}
		}
		if h.BestStreak > o.LongestStreak {
			o.LongestStreak = h.BestStreak
		}
		totalRate += CompletionRate(h, now)
	}
	o.DaysTracked = len(days)
	o.AvgConsistency = int(math.Round(float64(totalRate) / float64(len(habits))))
	return o
}

// DayCounts returns, for each of the given date keys, how many habits were
// completed that day. Used by the heatmap.
func DayCounts(habits []Habit, days []string) map[string]int {
	counts := make(map[string]int, len(days))
	for _, key := range days {
		n := 0
		for _, h := range habits {
			if h.IsCompletedOn(key) {
				n++
			}
		}
		counts[key] = n
	}
	return counts
}

// IntensityLevel buckets a day's completion count into 0-4 relative to the
// busiest day in the window.
func IntensityLevel(count, maxCount int) int {
	if count == 0 {
		return 0
	}
	if maxCount < 1 {
		maxCount = 1
	}
	ratio := float64(count) / float64(maxCount)
	switch {
	case ratio <= 0.25:
		return 1
	case ratio <= 0.5:
		return 2
	case ratio <= 0.75:
		return 3
	default:
		return 4
	}
}
