package habit

import (
	"fmt"
	"time"
)

// Window sizes for the productivity trend.
const (
	TrendWeeks  = 8
	TrendMonths = 6
)

// TrendPoint is one window of the multi-habit productivity series.
type TrendPoint struct {
	Label      string
	Completed  int
	Possible   int
	Percentage int
	Start      time.Time
	End        time.Time
}

// tallyWindow walks each day of [start, end] clipped to today and counts
// contributions across all habits. Daily habits contribute every day on or
// after their creation; weekly habits are sampled once per week on the
// Sunday anchor.
func tallyWindow(habits []Habit, start, end, today time.Time) (completed, possible int) {
	for d := start; !d.After(end) && !d.After(today); d = d.AddDate(0, 0, 1) {
		key := DateKey(d)
		for _, h := range habits {
			created, err := ParseDateKey(h.CreatedAt)
			if err != nil || d.Before(created) {
				continue
			}
			switch h.Frequency {
			case FrequencyWeekly:
				if !isAnchorDay(d) {
					continue
				}
			}
			possible++
			if h.IsCompletedOn(key) {
				completed++
			}
		}
	}
	return completed, possible
}

// WeeklyTrend returns the last TrendWeeks 7-day windows ending today,
// oldest first, labelled W1..Wn.
func WeeklyTrend(habits []Habit, now time.Time) []TrendPoint {
	today := startOfDay(now)
	points := make([]TrendPoint, 0, TrendWeeks)
	for offset := TrendWeeks - 1; offset >= 0; offset-- {
		end := today.AddDate(0, 0, -offset*7)
		start := end.AddDate(0, 0, -6)
		completed, possible := tallyWindow(habits, start, end, today)
		points = append(points, TrendPoint{
			Label:      fmt.Sprintf("W%d", TrendWeeks-offset),
			Completed:  completed,
			Possible:   possible,
			Percentage: percentOf(completed, possible),
			Start:      start,
			End:        end,
		})
	}
	return points
}

// MonthlyTrend returns the last TrendMonths calendar months including the
// current one, oldest first, labelled with short month names.
func MonthlyTrend(habits []Habit, now time.Time) []TrendPoint {
	today := startOfDay(now)
	points := make([]TrendPoint, 0, TrendMonths)
	for offset := TrendMonths - 1; offset >= 0; offset-- {
		start := time.Date(today.Year(), today.Month()-time.Month(offset), 1, 0, 0, 0, 0, RefZone)
		end := start.AddDate(0, 1, -1)
		completed, possible := tallyWindow(habits, start, end, today)
		points = append(points, TrendPoint{
			Label:      MonthName(start.Month()),
			Completed:  completed,
			Possible:   possible,
			Percentage: percentOf(completed, possible),
			Start:      start,
			End:        end,
		})
	}
	return points
}

// TrendDirection classifies the change between the last two windows.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// trendDeadBand absorbs ±2% fluctuations so tiny movements read as stable.
const trendDeadBand = 2

// TrendInsight compares the latest window against the previous one and
// locates the best window of the series.
type TrendInsight struct {
	Direction TrendDirection
	Change    int // latest minus previous percentage, bounded to ±100
	Current   int
	Best      TrendPoint
	BestIndex int // zero-based index of the first maximum
}

// AnalyzeTrend derives the insight for a series. It reports false when
// fewer than two windows exist.
func AnalyzeTrend(points []TrendPoint) (TrendInsight, bool) {
	if len(points) < 2 {
		return TrendInsight{}, false
	}

	current := points[len(points)-1]
	previous := points[len(points)-2]
	change := current.Percentage - previous.Percentage
	if change > 100 {
		change = 100
	}
	if change < -100 {
		change = -100
	}

	direction := TrendStable
	if change > trendDeadBand {
		direction = TrendUp
	} else if change < -trendDeadBand {
		direction = TrendDown
	}

	bestIdx := 0
	for i, p := range points {
		if p.Percentage > points[bestIdx].Percentage {
			bestIdx = i
		}
	}

	return TrendInsight{
		Direction: direction,
		Change:    change,
		Current:   current.Percentage,
		Best:      points[bestIdx],
		BestIndex: bestIdx,
	}, true
}

// HabitMonth is one habit's share of the current calendar month.
type HabitMonth struct {
	ID        string
	Name      string
	Completed int
	Possible  int
	Rate      int
}

// MonthSummary aggregates the current calendar month up to today.
type MonthSummary struct {
	Month      string // full month name
	Completed  int
	Possible   int
	Rate       int
	DaysActive int // distinct days with at least one completion
	Habits     []HabitMonth
	Best       *HabitMonth
	Worst      *HabitMonth
}

// SummarizeMonth walks the current month day by day using the same
// contribution rules as the trend windows and ranks habits by rate.
func SummarizeMonth(habits []Habit, now time.Time) MonthSummary {
	today := startOfDay(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, RefZone)
	monthEnd := monthStart.AddDate(0, 1, -1)

	summary := MonthSummary{Month: FullMonthName(today.Month())}
	activeDays := map[string]bool{}

	for _, h := range habits {
		created, err := ParseDateKey(h.CreatedAt)
		if err != nil {
			continue
		}
		hm := HabitMonth{ID: h.ID, Name: h.Name}
		for d := monthStart; !d.After(monthEnd) && !d.After(today); d = d.AddDate(0, 0, 1) {
			if d.Before(created) {
				continue
			}
			if h.Frequency == FrequencyWeekly && !isAnchorDay(d) {
				continue
			}
			key := DateKey(d)
			hm.Possible++
			if h.IsCompletedOn(key) {
				hm.Completed++
				activeDays[key] = true
			}
		}
		hm.Rate = percentOf(hm.Completed, hm.Possible)
		summary.Completed += hm.Completed
		summary.Possible += hm.Possible
		summary.Habits = append(summary.Habits, hm)
	}

	summary.Rate = percentOf(summary.Completed, summary.Possible)
	summary.DaysActive = len(activeDays)

	for i := range summary.Habits {
		hm := &summary.Habits[i]
		if summary.Best == nil || hm.Rate > summary.Best.Rate {
			summary.Best = hm
		}
		if summary.Worst == nil || hm.Rate < summary.Worst.Rate {
			summary.Worst = hm
		}
	}
	// A single habit is its own best; suppress the redundant worst entry.
	if summary.Best != nil && summary.Worst != nil && summary.Best.ID == summary.Worst.ID {
		summary.Worst = nil
	}
	return summary
}
