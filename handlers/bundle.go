// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Event endpoints
	ListEventsHandler  gin.HandlerFunc
	CreateEventHandler gin.HandlerFunc
	UpdateEventHandler gin.HandlerFunc
	DeleteEventHandler gin.HandlerFunc

	// Calendar view endpoint
	GetCalendarHandler gin.HandlerFunc

	// Teacher endpoints
	ListTeachersHandler      gin.HandlerFunc
	GetTeacherByEmailHandler gin.HandlerFunc
}
