// File: models/event.go
package models

import "time"

// ScheduleEvent is a scheduled class session owned by a teacher.
type ScheduleEvent struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	StartDateTime   time.Time `bson:"startDateTime" json:"startDateTime"`
	EndDateTime     time.Time `bson:"endDateTime" json:"endDateTime"`
	MeetLink        string    `bson:"meetLink" json:"meetLink"`
	TeacherID       string    `bson:"teacherId" json:"teacherId"`
	TeacherName     string    `bson:"teacherName" json:"teacherName"`
	TeacherPhotoURL string    `bson:"teacherPhotoUrl,omitempty" json:"teacherPhotoUrl,omitempty"`
	Color           string    `bson:"color,omitempty" json:"color,omitempty"` // optional override; derived from TeacherID when empty
	CreatedAt       time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CachedScheduleEvent is the wire/cache shape of an event: timestamps travel
// as ISO-8601 strings and are normalized to time.Time on read.
type CachedScheduleEvent struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	StartDateTime   string `json:"startDateTime"`
	EndDateTime     string `json:"endDateTime"`
	MeetLink        string `json:"meetLink"`
	TeacherID       string `json:"teacherId"`
	TeacherName     string `json:"teacherName"`
	TeacherPhotoURL string `json:"teacherPhotoUrl,omitempty"`
	Color           string `json:"color,omitempty"`
}

// ToCached converts an event to its string-dated cache shape.
func (e ScheduleEvent) ToCached() CachedScheduleEvent {
	return CachedScheduleEvent{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		StartDateTime:   e.StartDateTime.Format(time.RFC3339Nano),
		EndDateTime:     e.EndDateTime.Format(time.RFC3339Nano),
		MeetLink:        e.MeetLink,
		TeacherID:       e.TeacherID,
		TeacherName:     e.TeacherName,
		TeacherPhotoURL: e.TeacherPhotoURL,
		Color:           e.Color,
	}
}

// Normalize converts a cached event back to the domain shape. Unparseable
// timestamps yield the zero time rather than an error; the record stays usable.
func (c CachedScheduleEvent) Normalize() ScheduleEvent {
	start, _ := time.Parse(time.RFC3339Nano, c.StartDateTime)
	end, _ := time.Parse(time.RFC3339Nano, c.EndDateTime)
	return ScheduleEvent{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		StartDateTime:   start,
		EndDateTime:     end,
		MeetLink:        c.MeetLink,
		TeacherID:       c.TeacherID,
		TeacherName:     c.TeacherName,
		TeacherPhotoURL: c.TeacherPhotoURL,
		Color:           c.Color,
	}
}
