package store

import (
	"fmt"
	"time"

	"github.com/oguzhnd/ritual/internal/habit"
)

// SetCompletion upserts one day's logged value for a habit and rolls the
// persisted best streak forward when the new current streak exceeds it.
// This is the only completion-affecting mutation; the best streak never
// decreases here. Returns the habit as it stands after the write.
func (s *Store) SetCompletion(habitID, day string, c habit.Completion) (*habit.Habit, error) {
	if _, err := habit.ParseDateKey(day); err != nil {
		return nil, fmt.Errorf("set completion: bad date key %q: %w", day, err)
	}

	var done, value any
	switch c.Kind {
	case habit.KindDone:
		done = boolToInt(c.Done)
	default:
		value = c.Value
	}

	_, err := s.db.Exec(
		`INSERT INTO completions (habit_id, day, done, value) VALUES (?, ?, ?, ?)
		 ON CONFLICT(habit_id, day) DO UPDATE SET done = excluded.done, value = excluded.value`,
		habitID, day, done, value,
	)
	if err != nil {
		return nil, fmt.Errorf("set completion: %w", err)
	}

	h, err := s.GetHabit(habitID)
	if err != nil {
		return nil, err
	}

	current := habit.CurrentStreak(*h, time.Now())
	best := habit.UpdateBestStreak(h.BestStreak, current)
	if best != h.BestStreak {
		if _, err := s.db.Exec(`UPDATE habits SET best_streak = ? WHERE id = ?`, best, habitID); err != nil {
			return nil, fmt.Errorf("update best streak: %w", err)
		}
		h.BestStreak = best
	}
	return h, nil
}

// LogToday records today's value for a habit.
func (s *Store) LogToday(habitID string, c habit.Completion) (*habit.Habit, error) {
	return s.SetCompletion(habitID, habit.Today(time.Now()), c)
}

// ClearCompletion removes one day's entry, restoring the "not logged" state.
// The best streak is untouched: it is a running maximum.
func (s *Store) ClearCompletion(habitID, day string) error {
	_, err := s.db.Exec(`DELETE FROM completions WHERE habit_id = ? AND day = ?`, habitID, day)
	if err != nil {
		return fmt.Errorf("clear completion: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
