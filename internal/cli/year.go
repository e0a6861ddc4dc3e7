package cli

import (
	"fmt"
	"time"

	"github.com/oguzhnd/ritual/internal/habit"
)

type YearCmd struct {
	Year int `arg:"" optional:"" help:"Year to review (default: the review_year setting, or this year)."`
}

func (c *YearCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	year := c.Year
	if year == 0 {
		year = ctx.Store.GetIntSetting("review_year", 0)
	}
	if year == 0 {
		year = time.Now().In(habit.RefZone).Year()
	}

	r := habit.ReviewYear(habits, year, time.Now())

	fmt.Printf("%d in Review\n", r.Year)
	if !r.HasData {
		fmt.Println("Nothing logged this year.")
		return nil
	}

	fmt.Printf("Days tracked: %d   Completions: %d   Showing up: %d%%   Longest streak: %d\n\n",
		r.DaysTracked, r.TotalCompletions, r.AvgRate, r.LongestStreak)

	for _, m := range r.Months {
		fmt.Printf("  %-4s %3d%%  (%d/%d)\n", m.Month, m.Percentage, m.Completed, m.Possible)
	}

	fmt.Printf("\nBest month: %s %d%%\n", r.Best.Month, r.Best.Percentage)
	fmt.Printf("Toughest month: %s %d%%\n", r.Worst.Month, r.Worst.Percentage)
	if r.MostConsistent.ID != "" {
		fmt.Printf("Most consistent: %s (%d%%, %d logged)\n",
			r.MostConsistent.Name, r.MostConsistent.Rate, r.MostConsistent.Completions)
	}
	if r.MostStruggled.ID != "" && r.MostStruggled.ID != r.MostConsistent.ID {
		fmt.Printf("Struggled most: %s (%d%%)\n", r.MostStruggled.Name, r.MostStruggled.Rate)
	}

	fmt.Printf("\nDiscipline score: %d/100\n%s\n", r.Score, habit.ScoreLabel(r.Score))
	return nil
}
