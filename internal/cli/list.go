package cli

import (
	"fmt"
	"time"

	"github.com/oguzhnd/ritual/internal/habit"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with: ritual add <name>")
		return nil
	}

	now := time.Now()
	today := habit.Today(now)

	done := 0
	for _, h := range habits {
		if h.IsCompletedOn(today) {
			done++
		}
	}
	fmt.Printf("Today: %d/%d done\n", done, len(habits))

	for _, h := range habits {
		line := fmt.Sprintf("  %s %s%s", statusIcon(h, today), h.Name, progressOn(h, today))
		if h.Frequency == habit.FrequencyWeekly {
			line += " (weekly)"
		}
		if h.TracksStreak() {
			if streak := habit.CurrentStreak(h, now); streak > 0 {
				line += fmt.Sprintf("  streak %d", streak)
			}
		}
		line += fmt.Sprintf("  %d%%", habit.CompletionRate(h, now))
		fmt.Println(line)
	}

	return nil
}
