// File: handlers/calendar.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classcal/models"
	"classcal/services/calendar"
	"classcal/services/schedule"
	"classcal/utils"
)

// CalendarHandler materializes month/week/day views: the day grid from the
// grid generator, events binned per day, colors resolved per teacher.
type CalendarHandler struct {
	Store  schedule.EventStore
	Logger *zap.Logger
}

func NewCalendarHandler(store schedule.EventStore, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Store: store, Logger: logger}
}

type eventView struct {
	models.ScheduleEvent
	DisplayColor string `json:"displayColor"`
}

type dayCell struct {
	Date      string      `json:"date"`
	InMonth   bool        `json:"inMonth"`
	HasEvents bool        `json:"hasEvents"`
	Events    []eventView `json:"events"`
}

// GetCalendarHandler serves GET /api/calendar?view=&date=&teacherId=.
// view defaults to month, date to today. teacherId narrows the collection the
// same way the client-side filter does; it is a convenience, not authorization.
func (h *CalendarHandler) GetCalendarHandler(c *gin.Context) {
	view := models.ViewMode(c.DefaultQuery("view", string(models.ViewMonth)))

	ref := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err.Error())
			return
		}
		ref = parsed
	}

	events, degraded := h.Store.FetchAll(c.Request.Context())
	if teacherID := c.Query("teacherId"); teacherID != "" {
		events = filterByTeacher(events, teacherID)
	}

	var days []dayCell
	switch view {
	case models.ViewMonth:
		days = buildCells(calendar.MonthGrid(ref), ref.Month(), events)
	case models.ViewWeek:
		days = buildCells(calendar.WeekGrid(ref), 0, events)
	case models.ViewDay:
		days = buildCells([]time.Time{calendar.StartOfDay(ref)}, 0, events)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid view, expected month, week or day", "")
		return
	}

	resp := gin.H{
		"view": view,
		"date": ref.Format("2006-01-02"),
		"days": days,
	}
	if degraded {
		resp["warning"] = degradedNotice
	}
	c.JSON(http.StatusOK, resp)
}

// buildCells bins, sorts and color-decorates events per grid day. refMonth of
// zero means every cell counts as in-month (week and day views).
func buildCells(grid []time.Time, refMonth time.Month, events []models.ScheduleEvent) []dayCell {
	cells := make([]dayCell, 0, len(grid))
	for _, day := range grid {
		binned := calendar.SortByStart(calendar.EventsOnDay(day, events))

		views := make([]eventView, 0, len(binned))
		for _, ev := range binned {
			views = append(views, eventView{ScheduleEvent: ev, DisplayColor: calendar.DisplayColor(ev)})
		}

		cells = append(cells, dayCell{
			Date:      day.Format("2006-01-02"),
			InMonth:   refMonth == 0 || day.Month() == refMonth,
			HasEvents: calendar.HasEventsOnDay(day, events),
			Events:    views,
		})
	}
	return cells
}

func filterByTeacher(events []models.ScheduleEvent, teacherID string) []models.ScheduleEvent {
	filtered := make([]models.ScheduleEvent, 0, len(events))
	for _, ev := range events {
		if ev.TeacherID == teacherID {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
