package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oguzhnd/ritual/internal/habit"
	"github.com/oguzhnd/ritual/internal/store"
)

type yearModel struct {
	store  *store.Store
	width  int
	height int

	year   int // 0 = follow the review_year setting
	review habit.YearReview
}

func newYearModel(s *store.Store) yearModel {
	return yearModel{store: s}
}

func (m *yearModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type yearDataMsg struct {
	review habit.YearReview
}

func (m yearModel) reviewYear() int {
	if m.year != 0 {
		return m.year
	}
	year := m.store.GetIntSetting("review_year", 0)
	if year == 0 {
		year = time.Now().In(habit.RefZone).Year()
	}
	return year
}

func (m yearModel) refresh() tea.Cmd {
	year := m.reviewYear()
	return func() tea.Msg {
		habits, err := m.store.ListHabits()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return yearDataMsg{review: habit.ReviewYear(habits, year, time.Now())}
	}
}

func (m yearModel) update(msg tea.Msg) (yearModel, tea.Cmd) {
	switch msg := msg.(type) {
	case yearDataMsg:
		m.review = msg.review
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			m.year = m.reviewYear() - 1
			return m, m.refresh()
		case key.Matches(msg, keys.Right):
			m.year = m.reviewYear() + 1
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m yearModel) view() string {
	w := m.width - 4
	r := m.review

	title := titleStyle.Render(fmt.Sprintf("%d in Review", r.Year))
	nav := mutedStyle.Render("  ←/→: change year")

	if !r.HasData {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Nothing logged this year."),
			"",
			nav,
		)
		return panelStyle.Width(w).Render(content)
	}

	overview := "  " + strings.Join([]string{
		fmt.Sprintf("%s %s", highlightStyle.Render(fmt.Sprintf("%d", r.DaysTracked)), mutedStyle.Render("days")),
		fmt.Sprintf("%s %s", highlightStyle.Render(fmt.Sprintf("%d", r.TotalCompletions)), mutedStyle.Render("completions")),
		fmt.Sprintf("%s %s", rateStyle(r.AvgRate).Render(fmt.Sprintf("%d%%", r.AvgRate)), mutedStyle.Render("showing up")),
		fmt.Sprintf("%s %s", accentStyle.Render(fmt.Sprintf("%d", r.LongestStreak)), mutedStyle.Render("longest streak")),
	}, "   ")

	months := m.renderMonths()
	extremes := m.renderExtremes()
	habitsPanel := m.renderHabits()
	score := m.renderScore()

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", overview, "", months, "", extremes, "", habitsPanel, "", score, "", nav,
		),
	)
}

func (m yearModel) renderMonths() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Months"))
	for _, month := range m.review.Months {
		bar := rateStyle(month.Percentage).Render(progressBar(month.Percentage, 24))
		rows = append(rows, fmt.Sprintf("  %-4s %s %4d%%  %s",
			month.Month, bar, month.Percentage,
			mutedStyle.Render(fmt.Sprintf("%d/%d", month.Completed, month.Possible))))
	}
	return strings.Join(rows, "\n")
}

func (m yearModel) renderExtremes() string {
	r := m.review
	best := successStyle.Render(fmt.Sprintf("  best month: %s %d%%", r.Best.Month, r.Best.Percentage))
	worst := errorStyle.Render(fmt.Sprintf("  toughest month: %s %d%%", r.Worst.Month, r.Worst.Percentage))
	return best + "\n" + worst
}

func (m yearModel) renderHabits() string {
	r := m.review
	var rows []string
	rows = append(rows, titleStyle.Render("Habits"))
	if r.MostConsistent.ID != "" {
		rows = append(rows, successStyle.Render(fmt.Sprintf("  most consistent: %s (%d%%, %d logged)",
			r.MostConsistent.Name, r.MostConsistent.Rate, r.MostConsistent.Completions)))
	}
	if r.MostStruggled.ID != "" && r.MostStruggled.ID != r.MostConsistent.ID {
		rows = append(rows, warningStyle.Render(fmt.Sprintf("  struggled most: %s (%d%%)",
			r.MostStruggled.Name, r.MostStruggled.Rate)))
	}
	return strings.Join(rows, "\n")
}

func (m yearModel) renderScore() string {
	r := m.review
	scoreLine := fmt.Sprintf("  %s %s",
		titleStyle.Render("Discipline score:"),
		rateStyle(r.Score).Render(fmt.Sprintf("%d/100", r.Score)))
	label := subtitleStyle.Render("  " + habit.ScoreLabel(r.Score))
	return scoreLine + "\n" + label
}
