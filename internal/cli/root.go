package cli

import (
	"fmt"
	"strings"

	"github.com/oguzhnd/ritual/internal/habit"
	"github.com/oguzhnd/ritual/internal/store"
)

type Context struct {
	Store *store.Store
}

func parseHabitType(s string) (habit.Type, error) {
	switch strings.ToLower(s) {
	case "binary":
		return habit.TypeBinary, nil
	case "counter":
		return habit.TypeCounter, nil
	case "timer":
		return habit.TypeTimer, nil
	default:
		return "", fmt.Errorf("invalid habit type: %s", s)
	}
}

func parseFrequency(s string) (habit.Frequency, error) {
	switch strings.ToLower(s) {
	case "daily":
		return habit.FrequencyDaily, nil
	case "weekly":
		return habit.FrequencyWeekly, nil
	default:
		return "", fmt.Errorf("invalid frequency: %s", s)
	}
}

// findHabit resolves a habit by exact ID, exact name (case-insensitive)
// or unique name prefix.
func findHabit(ctx *Context, ref string) (*habit.Habit, error) {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(ref)
	var prefixMatches []habit.Habit

	for i := range habits {
		h := habits[i]
		if h.ID == ref {
			return &h, nil
		}
		name := strings.ToLower(h.Name)
		if name == lower {
			return &h, nil
		}
		if strings.HasPrefix(name, lower) {
			prefixMatches = append(prefixMatches, h)
		}
	}

	switch len(prefixMatches) {
	case 1:
		return &prefixMatches[0], nil
	case 0:
		return nil, fmt.Errorf("no habit matches %q", ref)
	default:
		var names []string
		for _, h := range prefixMatches {
			names = append(names, h.Name)
		}
		return nil, fmt.Errorf("%q is ambiguous: %s", ref, strings.Join(names, ", "))
	}
}

func statusIcon(h habit.Habit, day string) string {
	if h.IsCompletedOn(day) {
		return "✓"
	}
	if h.InProgressOn(day) {
		return "◐"
	}
	return "○"
}

func progressOn(h habit.Habit, day string) string {
	if h.Type == habit.TypeBinary {
		return ""
	}
	value := 0
	if c, ok := h.Completions[day]; ok && c.Kind == habit.KindProgress {
		value = c.Value
	}
	return fmt.Sprintf(" %d/%d", value, h.Target)
}
