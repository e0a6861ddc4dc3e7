package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oguzhnd/ritual/internal/habit"
)

// CreateHabit inserts a new habit with an empty completion log, best streak
// 0 and today as its first eligible day.
func (s *Store) CreateHabit(name string, typ habit.Type, freq habit.Frequency, target int) (*habit.Habit, error) {
	if name == "" {
		return nil, fmt.Errorf("habit name must not be empty")
	}
	if target < 1 {
		target = 1
	}
	id := uuid.NewString()
	createdAt := habit.Today(time.Now())
	_, err := s.db.Exec(
		`INSERT INTO habits (id, name, type, frequency, target, created_at, best_streak) VALUES (?, ?, ?, ?, ?, ?, 0)`,
		id, name, string(typ), string(freq), target, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert habit: %w", err)
	}
	return s.GetHabit(id)
}

// GetHabit loads one habit with its full completion log, normalized.
func (s *Store) GetHabit(id string) (*habit.Habit, error) {
	h := habit.Habit{}
	var typ, freq string
	err := s.db.QueryRow(
		`SELECT id, name, type, frequency, target, created_at, best_streak FROM habits WHERE id = ?`, id,
	).Scan(&h.ID, &h.Name, &typ, &freq, &h.Target, &h.CreatedAt, &h.BestStreak)
	if err != nil {
		return nil, fmt.Errorf("get habit %s: %w", id, err)
	}
	h.Type = habit.Type(typ)
	h.Frequency = habit.Frequency(freq)

	h.Completions, err = s.loadCompletions(id)
	if err != nil {
		return nil, err
	}
	h = habit.Normalize(h, time.Now())
	return &h, nil
}

// ListHabits loads every habit with its completion log. Records are
// normalized exactly once here, so the engine never sees missing fields.
func (s *Store) ListHabits() ([]habit.Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, name, type, frequency, target, created_at, best_streak FROM habits ORDER BY created_at, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	var habits []habit.Habit
	for rows.Next() {
		var h habit.Habit
		var typ, freq string
		if err := rows.Scan(&h.ID, &h.Name, &typ, &freq, &h.Target, &h.CreatedAt, &h.BestStreak); err != nil {
			return nil, err
		}
		h.Type = habit.Type(typ)
		h.Frequency = habit.Frequency(freq)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range habits {
		habits[i].Completions, err = s.loadCompletions(habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i] = habit.Normalize(habits[i], now)
	}
	return habits, nil
}

// DeleteHabit removes a habit and, via the foreign key cascade, its entire
// completion log in one step. There is no soft delete.
func (s *Store) DeleteHabit(id string) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete habit %s: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("delete habit %s: not found", id)
	}
	return nil
}

// RenameHabit updates the display name.
func (s *Store) RenameHabit(id, name string) error {
	if name == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	_, err := s.db.Exec(`UPDATE habits SET name = ? WHERE id = ?`, name, id)
	return err
}

func (s *Store) loadCompletions(habitID string) (map[string]habit.Completion, error) {
	rows, err := s.db.Query(`SELECT day, done, value FROM completions WHERE habit_id = ?`, habitID)
	if err != nil {
		return nil, fmt.Errorf("load completions for %s: %w", habitID, err)
	}
	defer rows.Close()

	completions := map[string]habit.Completion{}
	for rows.Next() {
		var day string
		var done, value sql.NullInt64
		if err := rows.Scan(&day, &done, &value); err != nil {
			return nil, err
		}
		if done.Valid {
			completions[day] = habit.MarkDone(done.Int64 != 0)
		} else {
			completions[day] = habit.Progress(int(value.Int64))
		}
	}
	return completions, rows.Err()
}
