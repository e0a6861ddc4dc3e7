package cli

import (
	"fmt"
	"time"

	"github.com/oguzhnd/ritual/internal/habit"
)

type StatsCmd struct {
	Monthly bool `short:"m" help:"Show the monthly trend instead of weekly."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}
	now := time.Now()

	overview := habit.Summarize(habits, now)
	fmt.Printf("Days tracked: %d   Completions: %d   Consistency: %d%%   Longest streak: %d\n",
		overview.DaysTracked, overview.TotalCompletions, overview.AvgConsistency, overview.LongestStreak)

	var points []habit.TrendPoint
	if c.Monthly {
		points = habit.MonthlyTrend(habits, now)
		fmt.Println("\nMonthly trend:")
	} else {
		points = habit.WeeklyTrend(habits, now)
		fmt.Println("\nWeekly trend:")
	}

	for _, p := range points {
		fmt.Printf("  %-4s %3d%%  (%d/%d)\n", p.Label, p.Percentage, p.Completed, p.Possible)
	}

	if insight, ok := habit.AnalyzeTrend(points); ok {
		switch insight.Direction {
		case habit.TrendUp:
			fmt.Printf("\nTrending up: %+d%% vs the previous window\n", insight.Change)
		case habit.TrendDown:
			fmt.Printf("\nTrending down: %+d%% vs the previous window\n", insight.Change)
		default:
			fmt.Println("\nHolding steady")
		}
		fmt.Printf("Best window: %s at %d%%\n", insight.Best.Label, insight.Best.Percentage)
	}

	month := habit.SummarizeMonth(habits, now)
	fmt.Printf("\n%s: %d%% (%d/%d), active %d days\n",
		month.Month, month.Rate, month.Completed, month.Possible, month.DaysActive)
	if month.Best != nil {
		fmt.Printf("  Best: %s %d%%\n", month.Best.Name, month.Best.Rate)
	}
	if month.Worst != nil {
		fmt.Printf("  Worst: %s %d%%\n", month.Worst.Name, month.Worst.Rate)
	}

	return nil
}
