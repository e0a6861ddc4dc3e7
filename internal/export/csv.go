package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/oguzhnd/ritual/internal/habit"
)

func ToCSV(habits []habit.Habit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Habit", "Type", "Frequency", "Target", "Day", "Status", "Value"}); err != nil {
		return err
	}

	for _, h := range habits {
		for _, day := range sortedDays(h.Completions) {
			c := h.Completions[day]
			row := []string{
				h.Name,
				string(h.Type),
				string(h.Frequency),
				fmt.Sprintf("%d", h.Target),
				day,
				statusOf(c, h.Target),
				fmt.Sprintf("%d", c.Value),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func sortedDays(completions map[string]habit.Completion) []string {
	days := make([]string, 0, len(completions))
	for day := range completions {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

func statusOf(c habit.Completion, target int) string {
	if c.IsCompleted(target) {
		return "done"
	}
	if c.Kind == habit.KindProgress && c.Value > 0 {
		return "progress"
	}
	return "missed"
}
