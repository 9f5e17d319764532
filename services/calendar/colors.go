// File: services/calendar/colors.go
package calendar

import "classcal/models"

// teacherPalette is the fixed display palette. Changing it (or its order)
// reshuffles every derived color, so treat it as versioned.
var teacherPalette = []string{
	"#4285F4", // blue
	"#EA4335", // red
	"#FBBC05", // yellow
	"#34A853", // green
	"#9334E6", // purple
}

// ColorFor deterministically picks a palette color for a teacher ID using an
// additive character-code hash. Distinct IDs may share a color; that is
// accepted. The empty ID hashes to the first palette entry.
func ColorFor(teacherID string) string {
	hash := 0
	for _, ch := range teacherID {
		hash += int(ch)
	}
	return teacherPalette[hash%len(teacherPalette)]
}

// DisplayColor resolves the color for an event: an explicit color override on
// the event always wins over the teacher-derived one.
func DisplayColor(ev models.ScheduleEvent) string {
	if ev.Color != "" {
		return ev.Color
	}
	return ColorFor(ev.TeacherID)
}
