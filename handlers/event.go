// File: handlers/event.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classcal/models"
	"classcal/services/meet"
	"classcal/services/schedule"
	"classcal/utils"
)

// EventHandler exposes the event store over HTTP.
type EventHandler struct {
	Store  schedule.EventStore
	Meet   meet.LinkProvider
	Logger *zap.Logger
}

func NewEventHandler(store schedule.EventStore, meetProvider meet.LinkProvider, logger *zap.Logger) *EventHandler {
	return &EventHandler{Store: store, Meet: meetProvider, Logger: logger}
}

const degradedNotice = "The schedule service is temporarily degraded; showing locally cached data."

// ListEventsHandler returns the full event collection. Degraded reads carry an
// advisory warning instead of an error status.
func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	events, degraded := h.Store.FetchAll(c.Request.Context())

	resp := gin.H{"events": events}
	if degraded {
		resp["warning"] = degradedNotice
	}
	c.JSON(http.StatusOK, resp)
}

// CreateEventHandler stores a new event. A save without a title or start date
// is refused outright; everything past validation degrades instead of failing.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var event models.ScheduleEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid event payload", err.Error())
		return
	}
	if event.Title == "" || event.StartDateTime.IsZero() {
		utils.JSONError(c, http.StatusBadRequest, "title and start date are required", "")
		return
	}

	var warning string
	// Only fresh creations request a meeting link; edits reuse the stored one.
	if event.MeetLink == "" {
		link := h.Meet.CreateLink(c.Request.Context())
		event.MeetLink = link.URL
		if link.Degraded {
			warning = link.Warning
		}
	}

	stored, degraded := h.Store.Create(c.Request.Context(), event)
	if degraded {
		warning = degradedNotice
	}

	resp := gin.H{"event": stored}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateEventHandler applies a partial update to an existing event.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	var event models.ScheduleEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid event payload", err.Error())
		return
	}
	event.ID = c.Param("id")

	updated, degraded, err := h.Store.Update(c.Request.Context(), event)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "event id is required", err.Error())
		return
	}

	resp := gin.H{"event": updated}
	if degraded {
		resp["warning"] = degradedNotice
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteEventHandler removes an event. The cache entry goes away regardless of
// the remote outcome, so the response is always a success with a flag for
// whether the remote delete stuck.
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	remoteOK := h.Store.Delete(c.Request.Context(), c.Param("id"))

	resp := gin.H{"deleted": true, "remote": remoteOK}
	if !remoteOK {
		resp["warning"] = degradedNotice
	}
	c.JSON(http.StatusOK, resp)
}
