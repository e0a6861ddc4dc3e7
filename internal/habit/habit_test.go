package habit

import (
	"testing"
	"time"
)

// testNow is a fixed Wednesday noon in the reference zone: 2026-03-18.
// March 2026 has Sundays on the 1st, 8th, 15th, 22nd and 29th.
var testNow = time.Date(2026, 3, 18, 12, 0, 0, 0, RefZone)

// dayKey returns the date key `offset` days before testNow.
func dayKey(offset int) string {
	return DateKey(startOfDay(testNow).AddDate(0, 0, -offset))
}

func newDaily(createdDaysAgo int) Habit {
	return Habit{
		ID:          "h1",
		Name:        "read",
		Type:        TypeBinary,
		Frequency:   FrequencyDaily,
		Target:      1,
		CreatedAt:   dayKey(createdDaysAgo),
		Completions: map[string]Completion{},
	}
}

// ============================================================
// Calendar utility
// ============================================================

func TestDateKeyUsesReferenceZone(t *testing.T) {
	// 19:00 UTC is already 00:30 the next day in the reference zone.
	instant := time.Date(2026, 3, 17, 19, 0, 0, 0, time.UTC)
	if got := DateKey(instant); got != "2026-03-18" {
		t.Fatalf("expected 2026-03-18, got %s", got)
	}
	// 18:00 UTC is still 23:30 the same day.
	instant = time.Date(2026, 3, 17, 18, 0, 0, 0, time.UTC)
	if got := DateKey(instant); got != "2026-03-17" {
		t.Fatalf("expected 2026-03-17, got %s", got)
	}
}

func TestParseDateKeyRoundTrip(t *testing.T) {
	instants := []time.Time{
		testNow,
		time.Date(2026, 1, 1, 0, 0, 0, 0, RefZone),
		time.Date(2025, 12, 31, 23, 59, 59, 0, RefZone),
		time.Date(2026, 6, 15, 3, 4, 5, 0, time.UTC),
	}
	for _, x := range instants {
		key := DateKey(x)
		parsed, err := ParseDateKey(key)
		if err != nil {
			t.Fatalf("parse %q: %v", key, err)
		}
		if DateKey(parsed) != key {
			t.Fatalf("round trip broke: %q -> %q", key, DateKey(parsed))
		}
	}
}

func TestParseDateKeyInvalid(t *testing.T) {
	if _, err := ParseDateKey("not-a-date"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 10, 23, 50, 0, 0, RefZone)
	b := time.Date(2026, 3, 11, 0, 5, 0, 0, RefZone)
	if got := DaysBetween(a, b); got != 1 {
		t.Fatalf("adjacent days across midnight: expected 1, got %d", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("same instant: expected 0, got %d", got)
	}
	if got := DaysBetween(b, a); got != -1 {
		t.Fatalf("reversed: expected -1, got %d", got)
	}
	c := time.Date(2026, 4, 10, 6, 0, 0, 0, RefZone)
	if got := DaysBetween(a, c); got != 31 {
		t.Fatalf("month span: expected 31, got %d", got)
	}
}

func TestLastNDays(t *testing.T) {
	days := LastNDays(testNow, 7)
	if len(days) != 7 {
		t.Fatalf("expected 7 keys, got %d", len(days))
	}
	if days[6] != Today(testNow) {
		t.Fatalf("last key should be today, got %s", days[6])
	}
	if days[0] != dayKey(6) {
		t.Fatalf("first key should be 6 days ago, got %s", days[0])
	}
	for i := 1; i < len(days); i++ {
		if days[i] <= days[i-1] {
			t.Fatalf("keys not strictly ascending: %s then %s", days[i-1], days[i])
		}
	}
	if LastNDays(testNow, 0) != nil {
		t.Fatal("n=0 should yield nil")
	}
}

func TestInYear(t *testing.T) {
	if !InYear("2026-01-01", 2026) {
		t.Fatal("2026-01-01 is in 2026")
	}
	if InYear("2025-12-31", 2026) {
		t.Fatal("2025-12-31 is not in 2026")
	}
	if InYear("garbage", 2026) {
		t.Fatal("malformed key is in no year")
	}
}

func TestMonthNames(t *testing.T) {
	if MonthName(time.January) != "Jan" || MonthName(time.December) != "Dec" {
		t.Fatal("short month names wrong")
	}
	if FullMonthName(time.March) != "March" {
		t.Fatal("full month names wrong")
	}
}

// ============================================================
// Completion predicate
// ============================================================

func TestCompletionPredicate(t *testing.T) {
	cases := []struct {
		name   string
		c      Completion
		target int
		want   bool
	}{
		{"done true", MarkDone(true), 1, true},
		{"done false", MarkDone(false), 1, false},
		{"progress below target", Progress(7), 10, false},
		{"progress at target", Progress(10), 10, true},
		{"progress above target", Progress(12), 10, true},
		{"zero progress", Progress(0), 1, false},
		{"target defaults to 1", Progress(1), 0, true},
	}
	for _, tc := range cases {
		if got := tc.c.IsCompleted(tc.target); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsCompletedOnAbsent(t *testing.T) {
	h := newDaily(5)
	if h.IsCompletedOn(dayKey(0)) {
		t.Fatal("missing entry must not count as completed")
	}
}

func TestInProgressOn(t *testing.T) {
	h := newDaily(5)
	h.Type = TypeCounter
	h.Target = 10
	h.Completions[dayKey(0)] = Progress(4)
	h.Completions[dayKey(1)] = Progress(10)
	h.Completions[dayKey(2)] = Progress(0)

	if !h.InProgressOn(dayKey(0)) {
		t.Fatal("4/10 should be in progress")
	}
	if h.InProgressOn(dayKey(1)) {
		t.Fatal("10/10 is completed, not in progress")
	}
	if h.InProgressOn(dayKey(2)) {
		t.Fatal("0/10 is not in progress")
	}
	if h.InProgressOn(dayKey(3)) {
		t.Fatal("missing entry is not in progress")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	h := Normalize(Habit{ID: "x", Name: "legacy"}, testNow)
	if h.CreatedAt != Today(testNow) {
		t.Fatalf("CreatedAt should default to today, got %s", h.CreatedAt)
	}
	if h.BestStreak != 0 || h.Target != 1 {
		t.Fatalf("defaults wrong: %+v", h)
	}
	if h.Type != TypeBinary || h.Frequency != FrequencyDaily {
		t.Fatalf("type/frequency defaults wrong: %+v", h)
	}
	if h.Completions == nil {
		t.Fatal("Completions map should be initialized")
	}
}

func TestNormalizeKeepsExistingFields(t *testing.T) {
	in := newDaily(10)
	in.Type = TypeTimer
	in.Frequency = FrequencyWeekly
	in.Target = 30
	in.BestStreak = 4
	out := Normalize(in, testNow)
	if out.CreatedAt != in.CreatedAt || out.Target != 30 || out.BestStreak != 4 {
		t.Fatalf("normalize clobbered fields: %+v", out)
	}
	if out.Type != TypeTimer || out.Frequency != FrequencyWeekly {
		t.Fatalf("normalize clobbered type/frequency: %+v", out)
	}
}

// ============================================================
// Streak engine
// ============================================================

func TestStreakNewHabit(t *testing.T) {
	h := newDaily(0)
	if got := CurrentStreak(h, testNow); got != 0 {
		t.Fatalf("new habit should have streak 0, got %d", got)
	}
	if got := CompletionRate(h, testNow); got != 0 {
		t.Fatalf("new habit should have rate 0, got %d", got)
	}
}

func TestStreakFourConsecutiveDays(t *testing.T) {
	h := newDaily(30)
	for i := 0; i <= 3; i++ {
		h.Completions[dayKey(i)] = MarkDone(true)
	}
	h.Completions[dayKey(5)] = MarkDone(false)
	if got := CurrentStreak(h, testNow); got != 4 {
		t.Fatalf("expected streak 4, got %d", got)
	}
}

func TestStreakZeroWhenTodayIncomplete(t *testing.T) {
	h := newDaily(30)
	// A long historical run means nothing without today.
	for i := 1; i <= 20; i++ {
		h.Completions[dayKey(i)] = MarkDone(true)
	}
	if got := CurrentStreak(h, testNow); got != 0 {
		t.Fatalf("incomplete today must zero the streak, got %d", got)
	}
}

func TestStreakStopsAtFalseEntry(t *testing.T) {
	h := newDaily(30)
	h.Completions[dayKey(0)] = MarkDone(true)
	h.Completions[dayKey(1)] = MarkDone(false) // logged but not done
	h.Completions[dayKey(2)] = MarkDone(true)
	if got := CurrentStreak(h, testNow); got != 1 {
		t.Fatalf("logged false should break the streak, got %d", got)
	}
}

func TestStreakCounterTarget(t *testing.T) {
	h := newDaily(30)
	h.Type = TypeCounter
	h.Target = 10
	h.Completions[dayKey(0)] = Progress(7)
	if got := CurrentStreak(h, testNow); got != 0 {
		t.Fatalf("7/10 today is not completed, got streak %d", got)
	}
	h.Completions[dayKey(0)] = Progress(10)
	h.Completions[dayKey(1)] = Progress(15)
	if got := CurrentStreak(h, testNow); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}

func TestStreakWeeklyNotApplicable(t *testing.T) {
	h := newDaily(30)
	h.Frequency = FrequencyWeekly
	h.Completions[dayKey(0)] = MarkDone(true)
	h.Completions[dayKey(1)] = MarkDone(true)
	if got := CurrentStreak(h, testNow); got != 0 {
		t.Fatalf("weekly habits carry no streak, got %d", got)
	}
	if h.TracksStreak() {
		t.Fatal("weekly habit should not track streaks")
	}
}

func TestUpdateBestStreakMonotonic(t *testing.T) {
	best := 0
	for _, cur := range []int{1, 3, 2, 3, 7, 0, 5} {
		next := UpdateBestStreak(best, cur)
		if next < best {
			t.Fatalf("best streak decreased: %d -> %d", best, next)
		}
		best = next
	}
	if best != 7 {
		t.Fatalf("expected final best 7, got %d", best)
	}
}

// ============================================================
// Completion rate
// ============================================================

func TestCompletionRatePerfectDaily(t *testing.T) {
	h := newDaily(9)
	for i := 0; i <= 9; i++ {
		h.Completions[dayKey(i)] = MarkDone(true)
	}
	if got := CompletionRate(h, testNow); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestCompletionRatePartialDaily(t *testing.T) {
	h := newDaily(9) // 10 expected days
	for i := 0; i < 5; i++ {
		h.Completions[dayKey(i)] = MarkDone(true)
	}
	if got := CompletionRate(h, testNow); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestCompletionRateWeekly(t *testing.T) {
	h := newDaily(21) // three elapsed weeks
	h.Frequency = FrequencyWeekly
	h.Completions[dayKey(3)] = MarkDone(true)
	h.Completions[dayKey(10)] = MarkDone(true)
	if got := CompletionRate(h, testNow); got != 67 {
		t.Fatalf("expected round(200/3)=67, got %d", got)
	}
}

func TestCompletionRateFutureCreation(t *testing.T) {
	h := newDaily(0)
	h.CreatedAt = DateKey(startOfDay(testNow).AddDate(0, 0, 5))
	h.Completions[dayKey(0)] = MarkDone(true)
	if got := CompletionRate(h, testNow); got != 0 {
		t.Fatalf("future createdAt should yield 0, got %d", got)
	}
}

func TestCompletionRateClampsAnomalies(t *testing.T) {
	// Completions logged before CreatedAt (post-migration anomaly) push the
	// raw ratio above 100; the result must clamp.
	h := newDaily(1) // 2 expected days
	for i := 0; i < 8; i++ {
		h.Completions[dayKey(i)] = MarkDone(true)
	}
	if got := CompletionRate(h, testNow); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestCompletionRateIdempotent(t *testing.T) {
	h := newDaily(14)
	h.Completions[dayKey(2)] = MarkDone(true)
	a := CompletionRate(h, testNow)
	b := CompletionRate(h, testNow)
	if a != b {
		t.Fatalf("pure function returned %d then %d", a, b)
	}
}

func TestCompletionRateBounds(t *testing.T) {
	habits := []Habit{
		newDaily(0),
		newDaily(1000),
		{ID: "w", Frequency: FrequencyWeekly, Target: 1, CreatedAt: dayKey(3), Completions: map[string]Completion{
			dayKey(0): MarkDone(true), dayKey(1): MarkDone(true), dayKey(2): MarkDone(true),
		}},
	}
	for _, h := range habits {
		got := CompletionRate(h, testNow)
		if got < 0 || got > 100 {
			t.Fatalf("rate out of bounds: %d for %+v", got, h)
		}
	}
}

// ============================================================
// Trend aggregator
// ============================================================

func TestWeeklyTrendShape(t *testing.T) {
	h := newDaily(60)
	points := WeeklyTrend([]Habit{h}, testNow)
	if len(points) != TrendWeeks {
		t.Fatalf("expected %d windows, got %d", TrendWeeks, len(points))
	}
	if points[0].Label != "W1" || points[len(points)-1].Label != "W8" {
		t.Fatalf("labels wrong: %s .. %s", points[0].Label, points[len(points)-1].Label)
	}
	last := points[len(points)-1]
	if DateKey(last.End) != Today(testNow) {
		t.Fatalf("last window should end today, ends %s", DateKey(last.End))
	}
	if last.Possible != 7 {
		t.Fatalf("daily habit should contribute 7 possible per week, got %d", last.Possible)
	}
}

func TestWeeklyTrendAllCompleted(t *testing.T) {
	h := newDaily(60)
	for i := 0; i < 60; i++ {
		h.Completions[dayKey(i)] = MarkDone(true)
	}
	for _, p := range WeeklyTrend([]Habit{h}, testNow) {
		if p.Percentage != 100 {
			t.Fatalf("window %s: expected 100, got %d", p.Label, p.Percentage)
		}
	}
}

func TestTrendEmptyWindow(t *testing.T) {
	// Habit created today contributes nothing to earlier windows.
	h := newDaily(0)
	points := WeeklyTrend([]Habit{h}, testNow)
	first := points[0]
	if first.Possible != 0 {
		t.Fatalf("expected empty window, got possible=%d", first.Possible)
	}
	if first.Percentage != 0 {
		t.Fatalf("possible=0 must yield percentage 0, got %d", first.Percentage)
	}
}

func TestTrendWeeklyHabitAnchoredOnSundays(t *testing.T) {
	h := newDaily(30)
	h.Frequency = FrequencyWeekly
	// March 2026 Sundays: 1, 8, 15. Complete two of them.
	h.Completions["2026-03-08"] = MarkDone(true)
	h.Completions["2026-03-15"] = MarkDone(true)
	// A non-anchor completion must not create a possible slot.
	h.Completions["2026-03-17"] = MarkDone(true)

	points := WeeklyTrend([]Habit{h}, testNow)
	last := points[len(points)-1] // Mar 12 - Mar 18, contains Sunday the 15th
	if last.Possible != 1 || last.Completed != 1 {
		t.Fatalf("expected 1/1 on the anchor, got %d/%d", last.Completed, last.Possible)
	}
	prev := points[len(points)-2] // Mar 5 - Mar 11, contains Sunday the 8th
	if prev.Possible != 1 || prev.Completed != 1 {
		t.Fatalf("expected 1/1 on the previous anchor, got %d/%d", prev.Completed, prev.Possible)
	}
}

func TestMonthlyTrendShape(t *testing.T) {
	h := newDaily(200)
	points := MonthlyTrend([]Habit{h}, testNow)
	if len(points) != TrendMonths {
		t.Fatalf("expected %d windows, got %d", TrendMonths, len(points))
	}
	if points[len(points)-1].Label != "Mar" {
		t.Fatalf("last window should be the current month, got %s", points[len(points)-1].Label)
	}
	if points[0].Label != "Oct" {
		t.Fatalf("first window should be Oct, got %s", points[0].Label)
	}
	// Current month is clipped to today: 18 days.
	if points[len(points)-1].Possible != 18 {
		t.Fatalf("current month should count 18 possible days, got %d", points[len(points)-1].Possible)
	}
}

func TestAnalyzeTrendUp(t *testing.T) {
	points := []TrendPoint{{Percentage: 30}, {Percentage: 55}}
	in, ok := AnalyzeTrend(points)
	if !ok {
		t.Fatal("expected insight")
	}
	if in.Direction != TrendUp || in.Change != 25 {
		t.Fatalf("expected up/+25, got %s/%d", in.Direction, in.Change)
	}
}

func TestAnalyzeTrendDeadBand(t *testing.T) {
	for _, change := range []int{2, 1, 0, -1, -2} {
		points := []TrendPoint{{Percentage: 50}, {Percentage: 50 + change}}
		in, _ := AnalyzeTrend(points)
		if in.Direction != TrendStable {
			t.Fatalf("change %d should be stable, got %s", change, in.Direction)
		}
	}
	in, _ := AnalyzeTrend([]TrendPoint{{Percentage: 50}, {Percentage: 47}})
	if in.Direction != TrendDown {
		t.Fatalf("change -3 should be down, got %s", in.Direction)
	}
}

func TestAnalyzeTrendBestWindowFirstMaximum(t *testing.T) {
	points := []TrendPoint{
		{Label: "W1", Percentage: 40},
		{Label: "W2", Percentage: 80},
		{Label: "W3", Percentage: 80},
		{Label: "W4", Percentage: 60},
	}
	in, _ := AnalyzeTrend(points)
	if in.BestIndex != 1 || in.Best.Label != "W2" {
		t.Fatalf("ties should break to the earliest maximum, got index %d", in.BestIndex)
	}
}

func TestAnalyzeTrendInsufficientData(t *testing.T) {
	if _, ok := AnalyzeTrend([]TrendPoint{{Percentage: 50}}); ok {
		t.Fatal("one window is not a trend")
	}
	if _, ok := AnalyzeTrend(nil); ok {
		t.Fatal("no windows is not a trend")
	}
}

// ============================================================
// Month summary
// ============================================================

func TestSummarizeMonth(t *testing.T) {
	daily := newDaily(60)
	for i := 0; i < 10; i++ {
		daily.Completions[dayKey(i)] = MarkDone(true)
	}
	weekly := newDaily(60)
	weekly.ID = "h2"
	weekly.Name = "review"
	weekly.Frequency = FrequencyWeekly
	weekly.Completions["2026-03-08"] = MarkDone(true)

	s := SummarizeMonth([]Habit{daily, weekly}, testNow)
	if s.Month != "March" {
		t.Fatalf("expected March, got %s", s.Month)
	}
	// Daily: 18 possible (Mar 1-18). Weekly: 3 anchors (1st, 8th, 15th).
	if s.Possible != 21 {
		t.Fatalf("expected 21 possible, got %d", s.Possible)
	}
	if s.Completed != 11 {
		t.Fatalf("expected 11 completed, got %d", s.Completed)
	}
	if s.DaysActive != 11 {
		// Daily completions cover Mar 9-18; the weekly anchor on Mar 8 adds
		// an eleventh distinct day.
		t.Fatalf("expected 11 active days, got %d", s.DaysActive)
	}
	if s.Best == nil || s.Best.ID != "h1" {
		t.Fatalf("daily habit should rank best: %+v", s.Best)
	}
	if s.Worst == nil || s.Worst.ID != "h2" {
		t.Fatalf("weekly habit should rank worst: %+v", s.Worst)
	}
}

func TestSummarizeMonthSingleHabit(t *testing.T) {
	s := SummarizeMonth([]Habit{newDaily(5)}, testNow)
	if s.Best == nil {
		t.Fatal("single habit should still be best")
	}
	if s.Worst != nil {
		t.Fatal("single habit should not also be worst")
	}
}

func TestSummarizeMonthEmpty(t *testing.T) {
	s := SummarizeMonth(nil, testNow)
	if s.Rate != 0 || s.Possible != 0 {
		t.Fatalf("empty summary should be zero: %+v", s)
	}
}

// ============================================================
// Overview stats and heatmap
// ============================================================

func TestSummarizeOverview(t *testing.T) {
	a := newDaily(9)
	a.BestStreak = 6
	for i := 0; i < 5; i++ {
		a.Completions[dayKey(i)] = MarkDone(true)
	}
	b := newDaily(9)
	b.ID = "h2"
	b.BestStreak = 3
	b.Completions[dayKey(0)] = MarkDone(true)
	b.Completions[dayKey(7)] = MarkDone(true)

	o := Summarize([]Habit{a, b}, testNow)
	if o.TotalCompletions != 7 {
		t.Fatalf("expected 7 completions, got %d", o.TotalCompletions)
	}
	// Days 0-4 plus day 7: six distinct days.
	if o.DaysTracked != 6 {
		t.Fatalf("expected 6 distinct days, got %d", o.DaysTracked)
	}
	if o.LongestStreak != 6 {
		t.Fatalf("expected longest streak 6, got %d", o.LongestStreak)
	}
	// Rates: 50% and 20%, mean 35.
	if o.AvgConsistency != 35 {
		t.Fatalf("expected avg consistency 35, got %d", o.AvgConsistency)
	}
}

func TestSummarizeOverviewEmpty(t *testing.T) {
	o := Summarize(nil, testNow)
	if o != (Overview{}) {
		t.Fatalf("empty input should yield zero overview: %+v", o)
	}
}

func TestDayCounts(t *testing.T) {
	a := newDaily(5)
	a.Completions[dayKey(0)] = MarkDone(true)
	a.Completions[dayKey(1)] = MarkDone(true)
	b := newDaily(5)
	b.Completions[dayKey(0)] = MarkDone(true)

	counts := DayCounts([]Habit{a, b}, LastNDays(testNow, 3))
	if counts[dayKey(0)] != 2 || counts[dayKey(1)] != 1 || counts[dayKey(2)] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestIntensityLevels(t *testing.T) {
	cases := []struct{ count, max, want int }{
		{0, 4, 0},
		{1, 4, 1},
		{2, 4, 2},
		{3, 4, 3},
		{4, 4, 4},
		{1, 1, 4},
		{1, 0, 4}, // max floors to 1
	}
	for _, tc := range cases {
		if got := IntensityLevel(tc.count, tc.max); got != tc.want {
			t.Errorf("IntensityLevel(%d, %d): expected %d, got %d", tc.count, tc.max, tc.want, got)
		}
	}
}

// ============================================================
// Year review and discipline score
// ============================================================

func TestReviewYearBasic(t *testing.T) {
	h := newDaily(0)
	h.CreatedAt = "2026-01-01"
	h.BestStreak = 12
	// Complete every day in January, nothing after.
	for d := time.Date(2026, 1, 1, 0, 0, 0, 0, RefZone); d.Month() == time.January; d = d.AddDate(0, 0, 1) {
		h.Completions[DateKey(d)] = MarkDone(true)
	}

	r := ReviewYear([]Habit{h}, 2026, testNow)
	if !r.HasData {
		t.Fatal("expected data")
	}
	if len(r.Months) != 3 {
		t.Fatalf("Jan through Mar: expected 3 months, got %d", len(r.Months))
	}
	if r.Months[0].Percentage != 100 {
		t.Fatalf("January should be 100%%, got %d", r.Months[0].Percentage)
	}
	if r.Months[1].Percentage != 0 {
		t.Fatalf("February should be 0%%, got %d", r.Months[1].Percentage)
	}
	if r.DaysTracked != 31 || r.TotalCompletions != 31 {
		t.Fatalf("expected 31/31, got %d/%d", r.DaysTracked, r.TotalCompletions)
	}
	if r.Best.Month != "Jan" {
		t.Fatalf("best month should be Jan, got %s", r.Best.Month)
	}
	if r.Worst.Month == "Jan" {
		t.Fatalf("worst month should not be Jan")
	}
	if r.LongestStreak != 12 {
		t.Fatalf("expected longest streak 12, got %d", r.LongestStreak)
	}
	if r.MostConsistent.ID != "h1" {
		t.Fatalf("expected the only habit as most consistent: %+v", r.MostConsistent)
	}
	if r.Score < 0 || r.Score > 100 {
		t.Fatalf("score out of bounds: %d", r.Score)
	}
}

func TestReviewYearExcludesOtherYears(t *testing.T) {
	h := newDaily(0)
	h.CreatedAt = "2025-06-01"
	h.Completions["2025-12-31"] = MarkDone(true)
	h.Completions["2026-01-01"] = MarkDone(true)

	r := ReviewYear([]Habit{h}, 2026, testNow)
	if r.TotalCompletions != 1 {
		t.Fatalf("only the 2026 completion should count, got %d", r.TotalCompletions)
	}
}

func TestReviewYearNoData(t *testing.T) {
	r := ReviewYear(nil, 2026, testNow)
	if r.HasData {
		t.Fatal("no habits means no data")
	}
	if r.Score < 0 || r.Score > 100 {
		t.Fatalf("score out of bounds: %d", r.Score)
	}
}

func TestDisciplineScoreNeutralRecovery(t *testing.T) {
	// Fewer than two data months: recovery falls back to the neutral 50.
	got := disciplineScore(0, 0, 0, []MonthReview{{Percentage: 20, Possible: 10}})
	if got != 15 { // 50 * 0.30
		t.Fatalf("expected 15, got %d", got)
	}
}

func TestDisciplineScoreSteadyBonus(t *testing.T) {
	// No slumps and a showing-up rate above the threshold: flat 80 recovery.
	months := []MonthReview{
		{Percentage: 70, Possible: 30},
		{Percentage: 75, Possible: 30},
	}
	got := disciplineScore(72, 0, 0, months)
	if got != 53 { // round(72*0.40 + 80*0.30)
		t.Fatalf("expected 53, got %d", got)
	}
}

func TestDisciplineScoreRecoveryCounting(t *testing.T) {
	// One slump (30 < 40) followed by a higher month: full recovery credit.
	months := []MonthReview{
		{Percentage: 30, Possible: 30},
		{Percentage: 55, Possible: 30},
	}
	got := disciplineScore(0, 0, 0, months)
	if got != 30 { // 100 * 0.30
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestDisciplineScoreStreakStrength(t *testing.T) {
	// 30-day streak over a long tracking history saturates the sub-score.
	got := disciplineScore(0, 30, 365, []MonthReview{})
	if got != 45 { // 100*0.30 streak + 50*0.30 neutral recovery
		t.Fatalf("expected 45, got %d", got)
	}
	// A short history bounds the horizon so early streaks are not inflated
	// beyond the cap.
	got = disciplineScore(0, 5, 5, []MonthReview{})
	if got != 45 {
		t.Fatalf("5-day streak over 5 tracked days should saturate too, got %d", got)
	}
}

func TestScoreLabelBands(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "Elite. You showed up."},
		{80, "Elite. You showed up."},
		{79, "Solid. Room to push harder."},
		{60, "Solid. Room to push harder."},
		{59, "Mid. You know you can do better."},
		{40, "Mid. You know you can do better."},
		{39, "Struggling. But aware. That's step one."},
		{20, "Struggling. But aware. That's step one."},
		{19, "Reset. Next year is yours if you want it."},
		{0, "Reset. Next year is yours if you want it."},
	}
	for _, tc := range cases {
		if got := ScoreLabel(tc.score); got != tc.want {
			t.Errorf("ScoreLabel(%d): got %q", tc.score, got)
		}
	}
}
