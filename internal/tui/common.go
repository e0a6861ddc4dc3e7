package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/oguzhnd/ritual/internal/habit"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHabits viewState = iota
	viewStats
	viewYear
	viewSettings
)

var viewNames = []string{"Habits", "Stats", "Year", "Settings"}

// --- Messages ---

type habitLoggedMsg struct {
	habit *habit.Habit
}

type sessionStartedMsg struct{}

type sessionStoppedMsg struct {
	habit   *habit.Habit
	minutes int
}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatMinutes(mins int) string {
	if mins >= 60 {
		return fmt.Sprintf("%dh %dm", mins/60, mins%60)
	}
	return fmt.Sprintf("%dm", mins)
}

func progressBar(percent, width int) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
