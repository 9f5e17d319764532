package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"classcal/models"
	"classcal/services/calendar"
)

func TestColorForIsDeterministic(t *testing.T) {
	for _, id := range []string{"1", "2", "teacher-42", "jane.doe@example.com"} {
		first := calendar.ColorFor(id)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, calendar.ColorFor(id), "id %q", id)
		}
		assert.NotEmpty(t, first)
	}
}

func TestColorForEmptyIDUsesDefault(t *testing.T) {
	assert.Equal(t, "#4285F4", calendar.ColorFor(""))
}

func TestDisplayColorOverrideWins(t *testing.T) {
	ev := models.ScheduleEvent{TeacherID: "t1", Color: "#000000"}
	assert.Equal(t, "#000000", calendar.DisplayColor(ev))

	ev.Color = ""
	assert.Equal(t, calendar.ColorFor("t1"), calendar.DisplayColor(ev))
}
