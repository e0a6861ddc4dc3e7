package tui

import (
	"errors"
	"time"

	"github.com/oguzhnd/ritual/internal/habit"
	"github.com/oguzhnd/ritual/internal/store"
)

// sessionState tracks the current state of a focus session.
type sessionState int

const (
	sessionStopped sessionState = iota
	sessionRunning
	sessionPaused
)

// sessionModel runs a live session against a timer habit. Elapsed
// minutes are persisted as progress toward today's target on stop.
type sessionModel struct {
	store *store.Store

	state     sessionState
	startTime time.Time
	elapsed   time.Duration
	pausedAt  time.Time // when paused, to compute pause gap
	pauseGap  time.Duration

	habitID   string
	habitName string
	target    int // minutes still needed today when the session started
	logged    int // minutes already on the books today

	// Idle detection
	lastActivity time.Time
	idleTimeout  time.Duration
	isIdle       bool
}

func newSessionModel(s *store.Store) sessionModel {
	return sessionModel{
		store:        s,
		state:        sessionStopped,
		lastActivity: time.Now(),
		idleTimeout:  5 * time.Minute,
	}
}

func (t *sessionModel) start(h habit.Habit) error {
	if h.Type != habit.TypeTimer {
		return errors.New("sessions only run on timer habits")
	}
	logged := 0
	if c, ok := h.Completions[habit.Today(time.Now())]; ok && c.Kind == habit.KindProgress {
		logged = c.Value
	}
	t.state = sessionRunning
	t.startTime = time.Now()
	t.elapsed = 0
	t.pauseGap = 0
	t.habitID = h.ID
	t.habitName = h.Name
	t.target = max(0, h.Target-logged)
	t.logged = logged
	t.lastActivity = time.Now()
	t.isIdle = false
	return nil
}

// stop persists the session's minutes on top of today's progress and
// returns the updated habit.
func (t *sessionModel) stop() (*habit.Habit, int, error) {
	if t.state == sessionStopped {
		return nil, 0, nil
	}
	mins := t.minutes()
	t.state = sessionStopped
	t.elapsed = 0

	h, err := t.store.LogToday(t.habitID, habit.Progress(t.logged+mins))
	if err != nil {
		return nil, 0, err
	}
	return h, mins, nil
}

func (t *sessionModel) pause() {
	if t.state != sessionRunning {
		return
	}
	t.state = sessionPaused
	t.pausedAt = time.Now()
}

func (t *sessionModel) resume() {
	if t.state != sessionPaused {
		return
	}
	t.pauseGap += time.Since(t.pausedAt)
	t.state = sessionRunning
	t.isIdle = false
	t.lastActivity = time.Now()
}

func (t *sessionModel) toggle() {
	switch t.state {
	case sessionRunning:
		t.pause()
	case sessionPaused:
		t.resume()
	}
}

func (t *sessionModel) tick() {
	if t.state == sessionRunning {
		t.elapsed = time.Since(t.startTime) - t.pauseGap

		// Idle detection
		if time.Since(t.lastActivity) > t.idleTimeout && !t.isIdle {
			t.isIdle = true
			t.pause()
		}
	}
}

func (t *sessionModel) recordActivity() {
	t.lastActivity = time.Now()
	if t.isIdle && t.state == sessionPaused {
		t.resume()
		t.isIdle = false
	}
}

func (t sessionModel) running() bool {
	return t.state != sessionStopped
}

func (t sessionModel) paused() bool {
	return t.state == sessionPaused
}

func (t sessionModel) currentElapsed() time.Duration {
	if t.state == sessionStopped {
		return 0
	}
	if t.state == sessionPaused {
		return time.Since(t.startTime) - t.pauseGap - time.Since(t.pausedAt)
	}
	return time.Since(t.startTime) - t.pauseGap
}

func (t sessionModel) minutes() int {
	return int(t.currentElapsed() / time.Minute)
}

// targetReached reports whether the session has covered what was left
// of today's target when it started.
func (t sessionModel) targetReached() bool {
	return t.running() && t.target > 0 && t.minutes() >= t.target
}
