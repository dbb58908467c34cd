// Package timewindow centralizes the calendar arithmetic behind "today",
// "this week" and "this month". All boundaries are computed in a single
// configured location so that grouping keys and statistics windows agree
// regardless of where a request originates.
package timewindow

import "time"

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// DateOf truncates t to midnight of its calendar date in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// Day returns the calendar day containing ref.
func Day(ref time.Time, loc *time.Location) Window {
	start := DateOf(ref, loc)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// Week returns the Monday-start calendar week containing ref.
func Week(ref time.Time, loc *time.Location) Window {
	day := DateOf(ref, loc)
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// Month returns the calendar month containing ref.
func Month(ref time.Time, loc *time.Location) Window {
	local := ref.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// PreviousDay returns the day immediately before the day containing ref.
func PreviousDay(ref time.Time, loc *time.Location) Window {
	cur := Day(ref, loc)
	return Window{Start: cur.Start.AddDate(0, 0, -1), End: cur.Start}
}

// PreviousWeek returns the week immediately before the week containing ref.
func PreviousWeek(ref time.Time, loc *time.Location) Window {
	cur := Week(ref, loc)
	return Window{Start: cur.Start.AddDate(0, 0, -7), End: cur.Start}
}

// PreviousMonth returns the calendar month immediately before the month
// containing ref. Its day count may differ from the current month's.
func PreviousMonth(ref time.Time, loc *time.Location) Window {
	cur := Month(ref, loc)
	return Window{Start: cur.Start.AddDate(0, -1, 0), End: cur.Start}
}

// TrailingDays returns the day windows for the trailing n calendar days
// ending with (and including) the day containing ref, oldest first.
func TrailingDays(ref time.Time, n int, loc *time.Location) []Window {
	if n <= 0 {
		return nil
	}
	today := DateOf(ref, loc)
	windows := make([]Window, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		windows = append(windows, Window{Start: start, End: start.AddDate(0, 0, 1)})
	}
	return windows
}
