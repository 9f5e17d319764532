// File: services/calendar/grid.go
package calendar

import "time"

const (
	// MonthGridSize is the fixed number of cells in a month view: six full
	// weeks, so the grid height never changes with the month.
	MonthGridSize = 42

	// WeekLength is the number of cells in a week view.
	WeekLength = 7
)

// StartOfDay normalizes a timestamp to midnight of its calendar date.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday beginning the week containing t.
// Weeks start on Sunday everywhere in this service.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthGrid produces the 42 consecutive days backing a month view, starting at
// the Sunday of the week containing the first of ref's month. Days outside the
// reference month are included on purpose; the view renders them dimmed.
// AddDate walks calendar dates rather than adding elapsed hours, so the grid
// stays correct across daylight-saving transitions.
func MonthGrid(ref time.Time) []time.Time {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := StartOfWeek(monthStart)

	days := make([]time.Time, MonthGridSize)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekGrid produces the 7 days of the week containing ref, Sunday first.
func WeekGrid(ref time.Time) []time.Time {
	start := StartOfWeek(ref)

	days := make([]time.Time, WeekLength)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// SameDay reports whether two timestamps fall on the same calendar date.
// Time-of-day is irrelevant here.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
