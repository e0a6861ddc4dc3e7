package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/oguzhnd/ritual/internal/habit"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Habits     []jsonHabit `json:"habits"`
}

type jsonHabit struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Frequency     string    `json:"frequency"`
	Target        int       `json:"target"`
	CreatedAt     string    `json:"created_at"`
	BestStreak    int       `json:"best_streak"`
	CurrentStreak int       `json:"current_streak"`
	Rate          int       `json:"completion_rate"`
	Days          []jsonDay `json:"days"`
}

type jsonDay struct {
	Day    string `json:"day"`
	Status string `json:"status"`
	Value  int    `json:"value,omitempty"`
}

func ToJSON(habits []habit.Habit, path string) error {
	now := time.Now()
	export := jsonExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(habits),
	}

	for _, h := range habits {
		jh := jsonHabit{
			ID:            h.ID,
			Name:          h.Name,
			Type:          string(h.Type),
			Frequency:     string(h.Frequency),
			Target:        h.Target,
			CreatedAt:     h.CreatedAt,
			BestStreak:    h.BestStreak,
			CurrentStreak: habit.CurrentStreak(h, now),
			Rate:          habit.CompletionRate(h, now),
		}
		for _, day := range sortedDays(h.Completions) {
			c := h.Completions[day]
			jh.Days = append(jh.Days, jsonDay{
				Day:    day,
				Status: statusOf(c, h.Target),
				Value:  c.Value,
			})
		}
		export.Habits = append(export.Habits, jh)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
