package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"classcal/models"
	"classcal/services/calendar"
)

func event(id string, start, end time.Time) models.ScheduleEvent {
	return models.ScheduleEvent{
		ID:            id,
		Title:         "Class " + id,
		StartDateTime: start,
		EndDateTime:   end,
		TeacherID:     "t1",
	}
}

func TestEventsOnDayMatchesStartDate(t *testing.T) {
	day := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	ev := event("a",
		time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC),
	)

	assert.Len(t, calendar.EventsOnDay(day, []models.ScheduleEvent{ev}), 1)
	assert.Empty(t, calendar.EventsOnDay(day.AddDate(0, 0, 1), []models.ScheduleEvent{ev}))
}

func TestEventsOnDayIncludesSpannedDays(t *testing.T) {
	// Three-day event: days D, D+1 (strictly between), and D+2 all match.
	ev := event("span",
		time.Date(2024, 5, 8, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 10, 11, 0, 0, 0, time.UTC),
	)
	events := []models.ScheduleEvent{ev}

	for offset := 0; offset <= 2; offset++ {
		day := time.Date(2024, 5, 8+offset, 0, 0, 0, 0, time.UTC)
		assert.Len(t, calendar.EventsOnDay(day, events), 1, "day D+%d", offset)
	}
	assert.Empty(t, calendar.EventsOnDay(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), events))
	assert.Empty(t, calendar.EventsOnDay(time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), events))
}

func TestEventsOnDayIgnoresTimeOfDayOnQuery(t *testing.T) {
	ev := event("a",
		time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC),
	)
	// Querying with an afternoon timestamp still matches the date.
	day := time.Date(2024, 5, 8, 17, 30, 0, 0, time.UTC)

	assert.Len(t, calendar.EventsOnDay(day, []models.ScheduleEvent{ev}), 1)
}

func TestEventsOnDayEmptyInput(t *testing.T) {
	assert.Empty(t, calendar.EventsOnDay(time.Now(), nil))
}

func TestHasEventsOnDayChecksEndpointsOnly(t *testing.T) {
	ev := event("span",
		time.Date(2024, 5, 8, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 10, 11, 0, 0, 0, time.UTC),
	)
	events := []models.ScheduleEvent{ev}

	assert.True(t, calendar.HasEventsOnDay(time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), events))
	assert.True(t, calendar.HasEventsOnDay(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), events))
	// The marker check only looks at start/end dates, not spanned days.
	assert.False(t, calendar.HasEventsOnDay(time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), events))
}

func TestSortByStartIsStable(t *testing.T) {
	ten := event("late", time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC), time.Date(2024, 5, 8, 11, 0, 0, 0, time.UTC))
	nineA := event("A", time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC), time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC))
	nineB := event("B", time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC), time.Date(2024, 5, 8, 9, 30, 0, 0, time.UTC))

	sorted := calendar.SortByStart([]models.ScheduleEvent{ten, nineA, nineB})

	assert.Equal(t, []string{"A", "B", "late"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortByStartDoesNotMutateInput(t *testing.T) {
	a := event("a", time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC), time.Date(2024, 5, 8, 11, 0, 0, 0, time.UTC))
	b := event("b", time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC), time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC))
	input := []models.ScheduleEvent{a, b}

	_ = calendar.SortByStart(input)

	assert.Equal(t, "a", input[0].ID)
	assert.Equal(t, "b", input[1].ID)
}
