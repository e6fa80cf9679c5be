package cashflow

import (
	"fmt"
	"time"
)

// WindowKind identifies the supported time window shapes
type WindowKind string

const (
	WindowCurrentMonth WindowKind = "current_month"
	WindowLastNDays    WindowKind = "last_n_days"
	WindowLastNMonths  WindowKind = "last_n_months"
	WindowAllTime      WindowKind = "all_time"
)

// Window is a half-open [Start, End) filter over transaction dates,
// resolved against a fixed reference instant. Resolving once and
// reusing the window keeps an aggregation pass consistent even when it
// straddles midnight.
type Window struct {
	Kind  WindowKind
	Start time.Time
	End   time.Time
}

// ResolveCurrentMonth returns the window covering the whole calendar
// month of now in now's location. Membership is by month and year, so
// an entry dated later in the month than now still belongs to it.
func ResolveCurrentMonth(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{Kind: WindowCurrentMonth, Start: start, End: start.AddDate(0, 1, 0)}
}

// ResolveLastNDays returns the window spanning n calendar days ending
// today. The start lands on midnight n-1 days before now and the end on
// the coming midnight, so a value of 1 covers all of today.
func ResolveLastNDays(now time.Time, n int) Window {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := day.AddDate(0, 0, -(n - 1))
	return Window{Kind: WindowLastNDays, Start: start, End: day.AddDate(0, 0, 1)}
}

// ResolveLastNMonths returns the window spanning n calendar months
// ending with the month of now. A value of 1 covers the whole current
// month.
func ResolveLastNMonths(now time.Time, n int) Window {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := firstOfMonth.AddDate(0, -(n - 1), 0)
	return Window{Kind: WindowLastNMonths, Start: start, End: firstOfMonth.AddDate(0, 1, 0)}
}

// ResolveAllTime returns the unbounded window.
func ResolveAllTime() Window {
	return Window{Kind: WindowAllTime}
}

// Contains reports whether a transaction dated at t falls inside the
// window. All-time windows accept every date, including future-dated
// entries.
func (w Window) Contains(t time.Time) bool {
	if w.Kind == WindowAllTime {
		return true
	}
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) String() string {
	if w.Kind == WindowAllTime {
		return string(w.Kind)
	}
	return fmt.Sprintf("%s[%s..%s]", w.Kind, w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
