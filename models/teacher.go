// File: models/teacher.go
package models

// Teacher is the authoring identity for schedule events. Teachers come from an
// externally managed allow-list; this service never creates them.
type Teacher struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	PhotoURL string `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
}

// ViewMode selects which calendar materialization a client wants.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)
