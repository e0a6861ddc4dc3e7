package habit

import "time"

// CurrentStreak returns the count of consecutive completed days ending at
// and including today. A streak requires completion through today; there is
// no grace period, so an incomplete today always yields 0. Weekly habits
// never carry a streak.
func CurrentStreak(h Habit, now time.Time) int {
	if !h.TracksStreak() {
		return 0
	}
	day := startOfDay(now)
	if !h.IsCompletedOn(DateKey(day)) {
		return 0
	}
	streak := 0
	for h.IsCompletedOn(DateKey(day)) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// UpdateBestStreak returns the running maximum of the best streak. Called
// on every completion-affecting mutation, never on reads, so the persisted
// best streak is monotonically non-decreasing.
func UpdateBestStreak(previousBest, current int) int {
	if current > previousBest {
		return current
	}
	return previousBest
}
