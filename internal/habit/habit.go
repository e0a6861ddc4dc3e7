// Package habit holds the analytics engine: pure functions that derive
// streaks, completion rates, trend series and the discipline score from a
// snapshot of habit records. Nothing in this package performs I/O or
// mutates its inputs; callers pass the "now" instant explicitly.
package habit

import "time"

// Type describes how a habit's daily value is interpreted.
type Type string

const (
	TypeBinary  Type = "binary"  // done / not done
	TypeCounter Type = "counter" // numeric count vs target
	TypeTimer   Type = "timer"   // minutes vs target
)

// Frequency governs expected occurrences and streak semantics.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// CompletionKind tags the two shapes a logged value can take.
type CompletionKind int

const (
	KindDone     CompletionKind = iota // boolean completion (binary habits)
	KindProgress                       // numeric progress (counter/timer habits)
)

// Completion is one logged value for one day. It is a tagged union: exactly
// one of Done or Value is meaningful, selected by Kind.
type Completion struct {
	Kind  CompletionKind
	Done  bool
	Value int
}

// MarkDone builds a boolean completion.
func MarkDone(done bool) Completion {
	return Completion{Kind: KindDone, Done: done}
}

// Progress builds a numeric-progress completion.
func Progress(value int) Completion {
	return Completion{Kind: KindProgress, Value: value}
}

// IsCompleted is the single completion predicate every aggregate uses.
// A boolean value counts as-is; a numeric value counts iff it reached the
// target (floored at 1).
func (c Completion) IsCompleted(target int) bool {
	if target < 1 {
		target = 1
	}
	switch c.Kind {
	case KindDone:
		return c.Done
	default:
		return c.Value >= target
	}
}

// Habit is one tracked habit plus its full completion log.
type Habit struct {
	ID         string
	Name       string
	Type       Type
	Frequency  Frequency
	Target     int
	CreatedAt  string // date key of the first eligible day
	BestStreak int
	// Completions maps date key to the logged value for that day. A missing
	// key means "not logged", which is distinct from a logged false/zero.
	Completions map[string]Completion
}

// IsCompletedOn reports whether the habit counts as completed on a day.
func (h Habit) IsCompletedOn(key string) bool {
	c, ok := h.Completions[key]
	if !ok {
		return false
	}
	return c.IsCompleted(h.Target)
}

// InProgressOn reports the UI-facing "started but below target" state for
// counter/timer habits. Aggregates never treat this as completed.
func (h Habit) InProgressOn(key string) bool {
	c, ok := h.Completions[key]
	if !ok || c.Kind != KindProgress {
		return false
	}
	return c.Value > 0 && !c.IsCompleted(h.Target)
}

// TracksStreak reports whether streaks apply to this habit. Weekly habits
// have no streak, which is "not applicable" rather than zero.
func (h Habit) TracksStreak() bool {
	return h.Frequency == FrequencyDaily
}

// Normalize fills the defaults legacy records may be missing: CreatedAt
// becomes today, BestStreak 0, Target 1, and the type/frequency fall back
// to binary/daily. It runs exactly once at the storage boundary so the
// engine never special-cases missing fields.
func Normalize(h Habit, now time.Time) Habit {
	if h.CreatedAt == "" {
		h.CreatedAt = Today(now)
	}
	if h.BestStreak < 0 {
		h.BestStreak = 0
	}
	if h.Target < 1 {
		h.Target = 1
	}
	if h.Type == "" {
		h.Type = TypeBinary
	}
	if h.Frequency == "" {
		h.Frequency = FrequencyDaily
	}
	if h.Completions == nil {
		h.Completions = map[string]Completion{}
	}
	return h
}
