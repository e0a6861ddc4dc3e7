package habit

import (
	"math"
	"time"
)

// Discipline score weights and heuristics. The recovery thresholds are
// deliberately plain constants: the heuristic tolerates tuning, the weights
// and band edges are part of the contract.
const (
	weightCompletion = 0.40
	weightStreak     = 0.30
	weightRecovery   = 0.30

	// streakHorizonDays caps the streak-strength benefit at a 30-day run,
	// the habit-formation threshold.
	streakHorizonDays = 30

	// A month below slumpPercent is a slump; a month below recoveryPercent
	// followed by a higher month is a recovery.
	slumpPercent    = 40
	recoveryPercent = 50

	// With no slumps at all, a showing-up rate above steadyRatePercent earns
	// the flat steadyRecoveryScore; with fewer than two data months the
	// neutral default applies.
	steadyRatePercent    = 60
	steadyRecoveryScore  = 80
	neutralRecoveryScore = 50
)

// MonthReview is one month of the yearly breakdown.
type MonthReview struct {
	Month      string // short month name
	Completed  int
	Possible   int
	Percentage int
}

// HabitYear is one habit's year-level totals.
type HabitYear struct {
	ID          string
	Name        string
	Completions int
	Rate        int
	BestStreak  int
}

// YearReview is the full yearly report including the discipline score.
type YearReview struct {
	Year             int
	DaysTracked      int // distinct days with at least one completion
	TotalCompletions int
	AvgRate          int // overall showing-up percentage across the year
	LongestStreak    int
	Months           []MonthReview // Jan through the current month
	Best             MonthReview
	Worst            MonthReview
	MostConsistent   HabitYear
	MostStruggled    HabitYear
	Score            int
	HasData          bool
}

// ReviewYear assembles the yearly report for the given calendar year as of
// now. Months entirely in the future are omitted; the current month is
// clipped to today.
func ReviewYear(habits []Habit, year int, now time.Time) YearReview {
	today := startOfDay(now)
	review := YearReview{Year: year}

	// Distinct completed days and total completions within the year.
	days := map[string]bool{}
	for _, h := range habits {
		for key, c := range h.Completions {
			if c.IsCompleted(h.Target) && InYear(key, year) {
				days[key] = true
				review.TotalCompletions++
			}
		}
		if h.BestStreak > review.LongestStreak {
			review.LongestStreak = h.BestStreak
		}
	}
	review.DaysTracked = len(days)

	// Monthly breakdown with the same daily-grid rules as the trend windows.
	for m := time.January; m <= time.December; m++ {
		monthStart := time.Date(year, m, 1, 0, 0, 0, 0, RefZone)
		if monthStart.After(today) {
			break
		}
		monthEnd := monthStart.AddDate(0, 1, -1)
		completed, possible := tallyWindow(habits, monthStart, monthEnd, today)
		review.Months = append(review.Months, MonthReview{
			Month:      MonthName(m),
			Completed:  completed,
			Possible:   possible,
			Percentage: percentOf(completed, possible),
		})
	}

	totalCompleted, totalPossible := 0, 0
	withData := review.monthsWithData()
	for _, m := range review.Months {
		totalCompleted += m.Completed
		totalPossible += m.Possible
	}
	review.AvgRate = percentOf(totalCompleted, totalPossible)

	if len(withData) > 0 {
		review.Best = withData[0]
		review.Worst = withData[0]
		for _, m := range withData[1:] {
			if m.Percentage > review.Best.Percentage {
				review.Best = m
			}
			if m.Percentage < review.Worst.Percentage {
				review.Worst = m
			}
		}
	}

	// Per-habit year analysis.
	for _, h := range habits {
		hy := HabitYear{ID: h.ID, Name: h.Name, BestStreak: h.BestStreak}
		for key, c := range h.Completions {
			if c.IsCompleted(h.Target) && InYear(key, year) {
				hy.Completions++
			}
		}
		hy.Rate = percentOf(hy.Completions, yearOccurrences(h, year, today))

		if review.MostConsistent.ID == "" || hy.Rate > review.MostConsistent.Rate {
			review.MostConsistent = hy
		}
		if review.MostStruggled.ID == "" || hy.Rate < review.MostStruggled.Rate {
			review.MostStruggled = hy
		}
	}

	review.Score = disciplineScore(review.AvgRate, review.LongestStreak, review.DaysTracked, withData)
	review.HasData = len(habits) > 0 && review.TotalCompletions > 0
	return review
}

func (r YearReview) monthsWithData() []MonthReview {
	var out []MonthReview
	for _, m := range r.Months {
		if m.Possible > 0 {
			out = append(out, m)
		}
	}
	return out
}

// yearOccurrences counts a habit's expected occurrences within a year,
// clipped to its creation date and to today: one per day for daily habits,
// one per Sunday anchor for weekly habits.
func yearOccurrences(h Habit, year int, today time.Time) int {
	created, err := ParseDateKey(h.CreatedAt)
	if err != nil {
		return 0
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, RefZone)
	if created.After(start) {
		start = created
	}
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, RefZone)
	if today.Before(end) {
		end = today
	}

	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if h.Frequency == FrequencyWeekly && !isAnchorDay(d) {
			continue
		}
		n++
	}
	return n
}

// disciplineScore blends the three sub-scores. Each is bounded, so the sum
// lands in [0,100] by construction.
func disciplineScore(avgRate, longestStreak, daysTracked int, months []MonthReview) int {
	completionScore := float64(avgRate) * weightCompletion

	streakScore := 0.0
	if daysTracked > 0 {
		horizon := daysTracked
		if horizon > streakHorizonDays {
			horizon = streakHorizonDays
		}
		strength := float64(longestStreak) / float64(horizon) * 100
		if strength > 100 {
			strength = 100
		}
		streakScore = strength * weightStreak
	}

	recovery := float64(neutralRecoveryScore)
	if len(months) >= 2 {
		recoveries, slumps := 0, 0
		for i := 1; i < len(months); i++ {
			prev, cur := months[i-1], months[i]
			if prev.Percentage < recoveryPercent && cur.Percentage > prev.Percentage {
				recoveries++
			}
			if prev.Percentage < slumpPercent {
				slumps++
			}
		}
		if slumps > 0 {
			recovery = float64(recoveries) / float64(slumps) * 100
			if recovery > 100 {
				recovery = 100
			}
		} else if avgRate > steadyRatePercent {
			recovery = steadyRecoveryScore
		}
	}
	recoveryScore := recovery * weightRecovery

	return int(math.Round(completionScore + streakScore + recoveryScore))
}

// ScoreLabel maps a discipline score onto its band. The band edges are part
// of the contract; the wording is presentation.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Elite. You showed up."
	case score >= 60:
		return "Solid. Room to push harder."
	case score >= 40:
		return "Mid. You know you can do better."
	case score >= 20:
		return "Struggling. But aware. That's step one."
	default:
		return "Reset. Next year is yours if you want it."
	}
}
