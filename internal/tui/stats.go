package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oguzhnd/ritual/internal/habit"
	"github.com/oguzhnd/ritual/internal/store"
)

type trendMode int

const (
	trendWeekly trendMode = iota
	trendMonthly
)

type statsModel struct {
	store  *store.Store
	width  int
	height int

	mode trendMode

	habits     []habit.Habit
	overview   habit.Overview
	month      habit.MonthSummary
	points     []habit.TrendPoint
	insight    habit.TrendInsight
	hasInsight bool
	heatDays   []string
	heatCounts map[string]int

	chart barchart.Model
}

func newStatsModel(s *store.Store) statsModel {
	return statsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type statsDataMsg struct {
	habits   []habit.Habit
	overview habit.Overview
	month    habit.MonthSummary
	points   []habit.TrendPoint
	heatDays []string
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		habits, err := m.store.ListHabits()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		now := time.Now()

		var points []habit.TrendPoint
		if m.mode == trendWeekly {
			points = habit.WeeklyTrend(habits, now)
		} else {
			points = habit.MonthlyTrend(habits, now)
		}

		days := m.store.GetIntSetting("heatmap_days", 90)

		return statsDataMsg{
			habits:   habits,
			overview: habit.Summarize(habits, now),
			month:    habit.SummarizeMonth(habits, now),
			points:   points,
			heatDays: habit.LastNDays(now, days),
		}
	}
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		m.habits = msg.habits
		m.overview = msg.overview
		m.month = msg.month
		m.points = msg.points
		m.heatDays = msg.heatDays
		m.heatCounts = habit.DayCounts(msg.habits, msg.heatDays)
		m.insight, m.hasInsight = habit.AnalyzeTrend(msg.points)
		m.buildChart()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
			if m.mode == trendWeekly {
				m.mode = trendMonthly
			} else {
				m.mode = trendWeekly
			}
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m *statsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 34 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, p := range m.points {
		style := rateStyle(p.Percentage)
		if p.Possible == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: p.Label,
			Values: []barchart.BarValue{
				{Name: p.Label, Value: float64(p.Percentage), Style: style},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m statsModel) view() string {
	w := m.width - 4

	weeklyTab := inactiveTabStyle.Render("Weekly")
	monthlyTab := inactiveTabStyle.Render("Monthly")
	if m.mode == trendWeekly {
		weeklyTab = activeTabStyle.Render("Weekly")
	} else {
		monthlyTab = activeTabStyle.Render("Monthly")
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, weeklyTab, monthlyTab)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Stats"), "  ", modeTabs,
	)

	overview := m.renderOverview()
	chartView := m.chart.View()
	insight := m.renderInsight()
	heatmap := m.renderHeatmap()
	table := m.renderHabitTable(w)
	monthPanel := m.renderMonthSummary()

	nav := mutedStyle.Render("  ←/→: switch weekly/monthly")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", overview, "", chartView, insight, "", heatmap, "", monthPanel, "", table, "", nav,
		),
	)
}

func (m statsModel) renderOverview() string {
	cards := []string{
		fmt.Sprintf("%s %s", highlightStyle.Render(fmt.Sprintf("%d", m.overview.DaysTracked)), mutedStyle.Render("days tracked")),
		fmt.Sprintf("%s %s", highlightStyle.Render(fmt.Sprintf("%d", m.overview.TotalCompletions)), mutedStyle.Render("completions")),
		fmt.Sprintf("%s %s", rateStyle(m.overview.AvgConsistency).Render(fmt.Sprintf("%d%%", m.overview.AvgConsistency)), mutedStyle.Render("consistency")),
		fmt.Sprintf("%s %s", accentStyle.Render(fmt.Sprintf("%d", m.overview.LongestStreak)), mutedStyle.Render("longest streak")),
	}
	return "  " + strings.Join(cards, "   ")
}

func (m statsModel) renderInsight() string {
	if !m.hasInsight {
		return mutedStyle.Render("  Not enough data for a trend yet")
	}

	var arrow string
	var style lipgloss.Style
	switch m.insight.Direction {
	case habit.TrendUp:
		arrow, style = "↑", successStyle
	case habit.TrendDown:
		arrow, style = "↓", errorStyle
	default:
		arrow, style = "→", mutedStyle
	}

	line := style.Render(fmt.Sprintf("  %s %+d%%", arrow, m.insight.Change))
	line += mutedStyle.Render(fmt.Sprintf("  now %d%%, best %s at %d%%",
		m.insight.Current, m.insight.Best.Label, m.insight.Best.Percentage))
	return line
}

// renderHeatmap lays the last N days out in week columns, Sunday on
// the top row.
func (m statsModel) renderHeatmap() string {
	if len(m.heatDays) == 0 {
		return ""
	}

	maxCount := 0
	for _, n := range m.heatCounts {
		maxCount = max(maxCount, n)
	}

	cells := make(map[string]string, len(m.heatDays))
	for _, day := range m.heatDays {
		level := habit.IntensityLevel(m.heatCounts[day], maxCount)
		cells[day] = heatStyles[level].Render("■")
	}

	first, err := habit.ParseDateKey(m.heatDays[0])
	if err != nil {
		return ""
	}

	// Pad the first column back to Sunday so rows line up.
	offset := int(first.Weekday())
	weeks := (offset + len(m.heatDays) + 6) / 7

	var rows []string
	rows = append(rows, titleStyle.Render("Activity")+
		mutedStyle.Render(fmt.Sprintf("  last %d days", len(m.heatDays))))
	for dow := 0; dow < 7; dow++ {
		var b strings.Builder
		b.WriteString("  ")
		for wk := 0; wk < weeks; wk++ {
			idx := wk*7 + dow - offset
			if idx < 0 || idx >= len(m.heatDays) {
				b.WriteString("  ")
				continue
			}
			b.WriteString(cells[m.heatDays[idx]])
			b.WriteString(" ")
		}
		rows = append(rows, b.String())
	}

	return strings.Join(rows, "\n")
}

func (m statsModel) renderMonthSummary() string {
	title := titleStyle.Render(m.month.Month)
	line := fmt.Sprintf("  %s  %s",
		rateStyle(m.month.Rate).Render(fmt.Sprintf("%d%%", m.month.Rate)),
		mutedStyle.Render(fmt.Sprintf("%d/%d logged, active %d days",
			m.month.Completed, m.month.Possible, m.month.DaysActive)))

	var extremes string
	if m.month.Best != nil {
		extremes = successStyle.Render(fmt.Sprintf("  best: %s %d%%", m.month.Best.Name, m.month.Best.Rate))
	}
	if m.month.Worst != nil {
		extremes += errorStyle.Render(fmt.Sprintf("  worst: %s %d%%", m.month.Worst.Name, m.month.Worst.Rate))
	}

	if extremes == "" {
		return lipgloss.JoinVertical(lipgloss.Left, title, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, line, extremes)
}

func (m statsModel) renderHabitTable(w int) string {
	if len(m.habits) == 0 {
		return mutedStyle.Render("  No habits yet")
	}

	now := time.Now()

	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-24s %8s %8s %6s", "Habit", "Streak", "Best", "Rate"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 50))))

	for _, h := range m.habits {
		streak := "-"
		if h.TracksStreak() {
			streak = fmt.Sprintf("%d", habit.CurrentStreak(h, now))
		}
		rate := habit.CompletionRate(h, now)
		rows = append(rows, fmt.Sprintf("  %-24s %8s %8d %s",
			h.Name, streak, h.BestStreak, rateStyle(rate).Render(fmt.Sprintf("%5d%%", rate)),
		))
	}

	return strings.Join(rows, "\n")
}
