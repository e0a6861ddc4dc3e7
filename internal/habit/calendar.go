package habit

import "time"

// RefZone is the fixed reference zone for all civil-day math (UTC+5:30, no
// DST). Day boundaries are identical for every device regardless of its
// local clock.
var RefZone = time.FixedZone("IST", 5*3600+30*60)

const dayLayout = "2006-01-02"

// DateKey returns the canonical YYYY-MM-DD key for an instant, in RefZone.
func DateKey(t time.Time) string {
	return t.In(RefZone).Format(dayLayout)
}

// Today returns the current date key as of the given instant.
func Today(now time.Time) string {
	return DateKey(now)
}

// ParseDateKey reconstructs the day a key names, at midnight in RefZone.
// The key is treated as a calendar date, never as a UTC instant, so it
// round-trips with DateKey without an off-by-one day shift.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, key, RefZone)
}

// startOfDay truncates an instant to midnight in RefZone.
func startOfDay(t time.Time) time.Time {
	t = t.In(RefZone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, RefZone)
}

// DaysBetween counts whole civil days from a to b. Both instants are
// day-truncated first; RefZone has no DST so the difference is exact.
// The result is negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}

// LastNDays returns the n most recent date keys ending at Today(now),
// oldest first.
func LastNDays(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	keys := make([]string, 0, n)
	day := startOfDay(now).AddDate(0, 0, -(n - 1))
	for i := 0; i < n; i++ {
		keys = append(keys, DateKey(day))
		day = day.AddDate(0, 0, 1)
	}
	return keys
}

// InYear reports whether a date key falls in the given calendar year.
func InYear(key string, year int) bool {
	d, err := ParseDateKey(key)
	if err != nil {
		return false
	}
	return d.Year() == year
}

// isAnchorDay reports whether a day is the weekly sampling anchor (Sunday).
// Weekly habits contribute to windowed aggregates only on this day.
func isAnchorDay(d time.Time) bool {
	return d.In(RefZone).Weekday() == time.Sunday
}

var shortMonthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var fullMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the abbreviated name of a month (1-12).
func MonthName(month time.Month) string {
	return shortMonthNames[int(month)-1]
}

// FullMonthName returns the full name of a month (1-12).
func FullMonthName(month time.Month) string {
	return fullMonthNames[int(month)-1]
}
