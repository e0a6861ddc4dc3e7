package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/oguzhnd/ritual/internal/habit"
	"github.com/oguzhnd/ritual/internal/store"
)

type habitsModel struct {
	store   *store.Store
	session sessionModel
	width   int
	height  int

	habits []habit.Habit
	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName   *string
	formType   *string
	formFreq   *string
	formTarget *string
}

func newHabitsModel(s *store.Store) habitsModel {
	name, typ, freq, target := "", string(habit.TypeBinary), string(habit.FrequencyDaily), "1"
	return habitsModel{
		store:      s,
		session:    newSessionModel(s),
		formName:   &name,
		formType:   &typ,
		formFreq:   &freq,
		formTarget: &target,
	}
}

func (m habitsModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *habitsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m habitsModel) sessionRunning() bool { return m.session.running() }
func (m habitsModel) sessionPaused() bool  { return m.session.paused() }
func (m habitsModel) sessionElapsed() time.Duration {
	return m.session.currentElapsed()
}

type habitsDataMsg struct {
	habits []habit.Habit
}

func (m habitsModel) loadData() tea.Cmd {
	return func() tea.Msg {
		habits, err := m.store.ListHabits()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return habitsDataMsg{habits: habits}
	}
}

func (m habitsModel) update(msg tea.Msg) (habitsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case habitsDataMsg:
		m.habits = msg.habits
		if m.cursor >= len(m.habits) {
			m.cursor = max(0, len(m.habits)-1)
		}
		return m, nil

	case tickMsg:
		m.session.tick()
		if m.session.targetReached() {
			return m.stopSession()
		}
		return m, nil

	case tea.KeyMsg:
		m.session.recordActivity()

		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.habits)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
			return m.toggleSelected()
		case key.Matches(msg, keys.Increment):
			return m.adjustSelected(1)
		case key.Matches(msg, keys.Decrement):
			return m.adjustSelected(-1)
		case key.Matches(msg, keys.Start):
			return m.startSession()
		case key.Matches(msg, keys.Stop):
			return m.stopSession()
		case key.Matches(msg, keys.New):
			return m.showNewHabitForm()
		case key.Matches(msg, keys.Delete):
			return m.deleteSelected()
		}
	}
	return m, nil
}

func (m habitsModel) selected() (habit.Habit, bool) {
	if len(m.habits) == 0 || m.cursor >= len(m.habits) {
		return habit.Habit{}, false
	}
	return m.habits[m.cursor], true
}

func (m habitsModel) toggleSelected() (habitsModel, tea.Cmd) {
	h, ok := m.selected()
	if !ok {
		return m, nil
	}
	today := habit.Today(time.Now())

	var c habit.Completion
	switch h.Type {
	case habit.TypeBinary:
		c = habit.MarkDone(!h.IsCompletedOn(today))
	default:
		// Counter and timer habits toggle between full and nothing.
		if h.IsCompletedOn(today) {
			c = habit.Progress(0)
		} else {
			c = habit.Progress(h.Target)
		}
	}

	return m, m.logCompletion(h.ID, c)
}

func (m habitsModel) adjustSelected(delta int) (habitsModel, tea.Cmd) {
	h, ok := m.selected()
	if !ok || h.Type == habit.TypeBinary {
		return m, nil
	}
	today := habit.Today(time.Now())

	value := 0
	if c, ok := h.Completions[today]; ok && c.Kind == habit.KindProgress {
		value = c.Value
	}
	value = max(0, value+delta)

	return m, m.logCompletion(h.ID, habit.Progress(value))
}

func (m habitsModel) logCompletion(habitID string, c habit.Completion) tea.Cmd {
	return func() tea.Msg {
		h, err := m.store.LogToday(habitID, c)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return habitLoggedMsg{habit: h}
	}
}

func (m habitsModel) startSession() (habitsModel, tea.Cmd) {
	if m.session.running() {
		return m, nil
	}
	h, ok := m.selected()
	if !ok {
		return m, nil
	}
	if err := m.session.start(h); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	return m, func() tea.Msg { return sessionStartedMsg{} }
}

func (m habitsModel) stopSession() (habitsModel, tea.Cmd) {
	h, mins, err := m.session.stop()
	if err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	if h == nil {
		return m, nil
	}
	return m, tea.Batch(
		m.loadData(),
		func() tea.Msg { return sessionStoppedMsg{habit: h, minutes: mins} },
	)
}

func (m habitsModel) deleteSelected() (habitsModel, tea.Cmd) {
	h, ok := m.selected()
	if !ok {
		return m, nil
	}
	if err := m.store.DeleteHabit(h.ID); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	return m, m.loadData()
}

func (m habitsModel) showNewHabitForm() (habitsModel, tea.Cmd) {
	*m.formName = ""
	*m.formType = string(habit.TypeBinary)
	*m.formFreq = string(habit.FrequencyDaily)
	*m.formTarget = "1"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Habit Name").Value(m.formName),
			huh.NewSelect[string]().Title("Type").
				Options(
					huh.NewOption("Binary (done / not done)", string(habit.TypeBinary)),
					huh.NewOption("Counter (count vs target)", string(habit.TypeCounter)),
					huh.NewOption("Timer (minutes vs target)", string(habit.TypeTimer)),
				).Value(m.formType),
			huh.NewSelect[string]().Title("Frequency").
				Options(
					huh.NewOption("Daily", string(habit.FrequencyDaily)),
					huh.NewOption("Weekly", string(habit.FrequencyWeekly)),
				).Value(m.formFreq),
			huh.NewInput().Title("Daily target").Value(m.formTarget),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m habitsModel) updateForm(msg tea.Msg) (habitsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		if *m.formName != "" {
			target, err := strconv.Atoi(*m.formTarget)
			if err != nil {
				target = 1
			}
			if _, err := m.store.CreateHabit(*m.formName, habit.Type(*m.formType), habit.Frequency(*m.formFreq), target); err != nil {
				return m, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
				}
			}
		}
		return m, m.loadData()
	}

	return m, cmd
}

func (m habitsModel) view() string {
	if m.width < 20 {
		return "Terminal too small"
	}

	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Habit")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	var panels []string
	if m.session.running() {
		panels = append(panels, m.renderSessionPanel(w))
	}
	panels = append(panels, m.renderHabitList(w))

	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m habitsModel) renderSessionPanel(w int) string {
	elapsed := m.session.currentElapsed()
	timeStr := formatDuration(elapsed)

	var timeDisplay, indicator string
	if m.session.paused() {
		timeDisplay = sessionPausedStyle.Width(w - 6).Render(timeStr)
		if m.session.isIdle {
			indicator = warningStyle.Render("⏸  IDLE")
		} else {
			indicator = warningStyle.Render("⏸  PAUSED")
		}
	} else {
		timeDisplay = sessionStyle.Width(w - 6).Render(timeStr)
		indicator = successStyle.Render("●  SESSION")
	}

	habitLine := highlightStyle.Render(m.session.habitName)
	if m.session.target > 0 {
		habitLine += mutedStyle.Render(fmt.Sprintf("  %s of %s left today",
			formatMinutes(m.session.minutes()), formatMinutes(m.session.target)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		timeDisplay,
		indicator,
		habitLine,
	)
	return activePanelStyle.Width(w).Render(content)
}

func (m habitsModel) renderHabitList(w int) string {
	title := titleStyle.Render("Today")
	today := habit.Today(time.Now())
	now := time.Now()

	if len(m.habits) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No habits yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	done := 0
	for _, h := range m.habits {
		if h.IsCompletedOn(today) {
			done++
		}
	}

	var rows []string
	rows = append(rows, fmt.Sprintf("%s  %s", title,
		mutedStyle.Render(fmt.Sprintf("%d/%d done", done, len(m.habits)))))
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-24s %-10s %8s %8s %6s", "", "Name", "Progress", "Streak", "Best", "Rate"))
	rows = append(rows, header)

	for i, h := range m.habits {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		icon := mutedStyle.Render("○")
		if h.IsCompletedOn(today) {
			icon = successStyle.Render("✓")
		} else if h.InProgressOn(today) {
			icon = warningStyle.Render("◐")
		}

		progress := ""
		if h.Type != habit.TypeBinary {
			value := 0
			if c, ok := h.Completions[today]; ok && c.Kind == habit.KindProgress {
				value = c.Value
			}
			progress = fmt.Sprintf("%d/%d", value, h.Target)
		}

		streak := "-"
		if h.TracksStreak() {
			streak = strconv.Itoa(habit.CurrentStreak(h, now))
		}
		rate := habit.CompletionRate(h, now)

		row := style.Render(fmt.Sprintf("%s%s %-24s %-10s %8s %8d %5d%%",
			cursor, icon, h.Name, progress, streak, h.BestStreak, rate))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  space: toggle  +/-: adjust  s: session  n: new  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
