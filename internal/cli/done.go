package cli

import (
	"fmt"
	"time"

	"github.com/oguzhnd/ritual/internal/habit"
)

type DoneCmd struct {
	Habit string `arg:"" help:"Habit name, name prefix, or ID."`
	Value int    `short:"v" help:"Progress value for counter/timer habits (omit to fill the target)." default:"-1"`
	Date  string `short:"d" help:"Day to log (YYYY-MM-DD), default today."`
	Undo  bool   `short:"u" help:"Clear the day's entry instead."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	h, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = habit.Today(time.Now())
	} else if _, err := habit.ParseDateKey(day); err != nil {
		return fmt.Errorf("invalid date %q: %w", c.Date, err)
	}

	if c.Undo {
		if err := ctx.Store.ClearCompletion(h.ID, day); err != nil {
			return err
		}
		fmt.Printf("Cleared %s for %s\n", h.Name, day)
		return nil
	}

	var completion habit.Completion
	if h.Type == habit.TypeBinary {
		completion = habit.MarkDone(true)
	} else {
		value := c.Value
		if value < 0 {
			value = h.Target
		}
		completion = habit.Progress(value)
	}

	updated, err := ctx.Store.SetCompletion(h.ID, day, completion)
	if err != nil {
		return err
	}

	icon := statusIcon(*updated, day)
	line := fmt.Sprintf("%s %s%s", icon, updated.Name, progressOn(*updated, day))
	if updated.TracksStreak() {
		if streak := habit.CurrentStreak(*updated, time.Now()); streak > 0 {
			line += fmt.Sprintf(" — streak %d", streak)
		}
	}
	fmt.Println(line)
	return nil
}
