package schedule

import "time"

// Window is the Monday..Sunday span of a duty week. Start is a Monday at
// midnight and End is the Sunday six days later (inclusive).
type Window struct {
	Start time.Time
	End   time.Time
}

// Midnight strips the time of day, keeping the location of t
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WindowContaining returns the week window of date, computed in date's location.
// Weekdays follow time.Weekday (Sunday=0), so Sunday belongs to the window
// that started six days earlier.
func WindowContaining(date time.Time) Window {
	day := Midnight(date)

	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}

	start := day.AddDate(0, 0, -offset)
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}

// Contains reports whether t falls on one of the window's calendar days
func (w Window) Contains(t time.Time) bool {
	day := Midnight(t.In(w.Start.Location()))
	return !day.Before(w.Start) && !day.After(w.End)
}
