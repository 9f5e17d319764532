// File: services/calendar/binning.go
package calendar

import (
	"sort"
	"time"

	"classcal/models"
)

// EventsOnDay returns the events that belong to the given calendar date: an
// event matches when it starts on the date, ends on the date, or spans it
// (multi-day events). Membership compares calendar dates only; time-of-day is
// kept for sorting and display.
func EventsOnDay(day time.Time, events []models.ScheduleEvent) []models.ScheduleEvent {
	midnight := StartOfDay(day)

	var matched []models.ScheduleEvent
	for _, ev := range events {
		if SameDay(day, ev.StartDateTime) || SameDay(day, ev.EndDateTime) ||
			(midnight.After(ev.StartDateTime) && midnight.Before(ev.EndDateTime)) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// HasEventsOnDay reports whether any event starts or ends on the given date.
// Used for the month-view day markers.
func HasEventsOnDay(day time.Time, events []models.ScheduleEvent) bool {
	for _, ev := range events {
		if SameDay(day, ev.StartDateTime) || SameDay(day, ev.EndDateTime) {
			return true
		}
	}
	return false
}

// SortByStart returns the events ordered by ascending start time. The sort is
// stable: events sharing a start time keep their original relative order, as
// no secondary key is defined.
func SortByStart(events []models.ScheduleEvent) []models.ScheduleEvent {
	sorted := make([]models.ScheduleEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDateTime.Before(sorted[j].StartDateTime)
	})
	return sorted
}
