package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"classcal/handlers"
	"classcal/models"
	"classcal/services/meet"
	"classcal/services/schedule"
)

// fakeStore implements schedule.EventStore in memory with a degraded switch.
type fakeStore struct {
	events   []models.ScheduleEvent
	degraded bool
}

func (s *fakeStore) FetchAll(ctx context.Context) ([]models.ScheduleEvent, bool) {
	return s.events, s.degraded
}

func (s *fakeStore) Create(ctx context.Context, event models.ScheduleEvent) (models.ScheduleEvent, bool) {
	if event.ID == "" {
		event.ID = "srv-1"
	}
	s.events = append(s.events, event)
	return event, s.degraded
}

func (s *fakeStore) Update(ctx context.Context, event models.ScheduleEvent) (models.ScheduleEvent, bool, error) {
	if event.ID == "" {
		return event, false, schedule.ErrMissingEventID
	}
	for i, existing := range s.events {
		if existing.ID == event.ID {
			if event.Title != "" {
				existing.Title = event.Title
			}
			s.events[i] = existing
			return existing, s.degraded, nil
		}
	}
	return event, s.degraded, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) bool {
	for i, existing := range s.events {
		if existing.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			break
		}
	}
	return !s.degraded
}

// fakeMeet returns a canned link result.
type fakeMeet struct {
	result meet.Result
	calls  int
}

func (m *fakeMeet) CreateLink(ctx context.Context) meet.Result {
	m.calls++
	return m.result
}

func setupRouter(store *fakeStore, meetProvider *fakeMeet) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewEventHandler(store, meetProvider, zap.NewNop())

	r := gin.New()
	r.GET("/api/events", h.ListEventsHandler)
	r.POST("/api/events", h.CreateEventHandler)
	r.PUT("/api/events/:id", h.UpdateEventHandler)
	r.DELETE("/api/events/:id", h.DeleteEventHandler)
	return r
}

func readyMeet() *fakeMeet {
	return &fakeMeet{result: meet.Result{URL: "https://meet.google.com/abc-defg-hij", State: meet.StateReady}}
}

func TestListEventsIncludesWarningWhenDegraded(t *testing.T) {
	store := &fakeStore{degraded: true}
	r := setupRouter(store, readyMeet())

	req, _ := http.NewRequest("GET", "/api/events", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, 200, resp.Code)

	var out map[string]any
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Contains(t, out, "warning")
}

func TestCreateEventRefusedWithoutTitle(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store, readyMeet())

	body := `{"startDateTime":"2024-05-08T09:00:00Z","endDateTime":"2024-05-08T10:00:00Z","teacherId":"t1"}`
	req, _ := http.NewRequest("POST", "/api/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, 400, resp.Code)
	assert.Empty(t, store.events, "refused save must be a no-op")
}

func TestCreateEventRefusedWithoutStartDate(t *testing.T) {
	r := setupRouter(&fakeStore{}, readyMeet())

	body := `{"title":"Algebra","teacherId":"t1"}`
	req, _ := http.NewRequest("POST", "/api/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, 400, resp.Code)
}

func TestCreateEventRequestsMeetLinkWhenBlank(t *testing.T) {
	store := &fakeStore{}
	mp := readyMeet()
	r := setupRouter(store, mp)

	body := `{"title":"Algebra","startDateTime":"2024-05-08T09:00:00Z","endDateTime":"2024-05-08T10:00:00Z","teacherId":"t1"}`
	req, _ := http.NewRequest("POST", "/api/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, 201, resp.Code)
	assert.Equal(t, 1, mp.calls)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", store.events[0].MeetLink)
}

func TestCreateEventKeepsProvidedMeetLink(t *testing.T) {
	store := &fakeStore{}
	mp := readyMeet()
	r := setupRouter(store, mp)

	body := `{"title":"Algebra","startDateTime":"2024-05-08T09:00:00Z","meetLink":"https://meet.google.com/xyz-already-set","teacherId":"t1"}`
	req, _ := http.NewRequest("POST", "/api/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, 201, resp.Code)
	assert.Equal(t, 0, mp.calls, "edits and pre-linked events must not request a new link")
}

func TestCreateEventSurfacesMeetFallbackWarning(t *testing.T) {
	mp := &fakeMeet{result: meet.Result{
		URL: "https://meet.google.com/aaa-bbbb-ccc", State: meet.StateFallback,
		Degraded: true, Warning: "placeholder link",
	}}
	r := setupRouter(&fakeStore{}, mp)

	body := `{"title":"Algebra","startDateTime":"2024-05-08T09:00:00Z","teacherId":"t1"}`
	req, _ := http.NewRequest("POST", "/api/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, 201, resp.Code)

	var out map[string]any
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Equal(t, "placeholder link", out["warning"])
}

func TestUpdateEvent(t *testing.T) {
	store := &fakeStore{events: []models.ScheduleEvent{{
		ID: "e1", Title: "Algebra",
		StartDateTime: time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
	}}}
	r := setupRouter(store, readyMeet())

	body := `{"title":"Geometry"}`
	req, _ := http.NewRequest("PUT", "/api/events/e1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "Geometry", store.events[0].Title)
}

func TestDeleteEventReportsRemoteOutcome(t *testing.T) {
	store := &fakeStore{events: []models.ScheduleEvent{{ID: "e1"}}, degraded: true}
	r := setupRouter(store, readyMeet())

	req, _ := http.NewRequest("DELETE", "/api/events/e1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, 200, resp.Code)

	var out map[string]any
	json.Unmarshal(resp.Body.Bytes(), &out)
	assert.Equal(t, true, out["deleted"])
	assert.Equal(t, false, out["remote"])
	assert.Empty(t, store.events)
}
