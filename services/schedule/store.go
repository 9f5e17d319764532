// File: services/schedule/store.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	eventsRepo "classcal/database/repository/events"
	"classcal/models"
)

// ErrMissingEventID signals an update call without an event ID. That is a
// caller bug, not a recoverable runtime fault; it is never retried.
var ErrMissingEventID = errors.New("event id is required for update")

const (
	localIDPrefix  = "local-"
	defaultTimeout = 10 * time.Second
)

// EventStore is the single source of truth for the event collection as seen
// by clients. It reconciles the remote record service with the durable local
// cache: remote wins on freshness, the cache serves as fallback. Remote
// faults degrade results instead of propagating; the returned degraded flag
// is the advisory notice for the caller.
type EventStore interface {
	FetchAll(ctx context.Context) (events []models.ScheduleEvent, degraded bool)
	Create(ctx context.Context, event models.ScheduleEvent) (stored models.ScheduleEvent, degraded bool)
	Update(ctx context.Context, event models.ScheduleEvent) (stored models.ScheduleEvent, degraded bool, err error)
	Delete(ctx context.Context, id string) (remoteOK bool)
}

// DefaultEventStore implements EventStore.
type DefaultEventStore struct {
	Repo    eventsRepo.EventRepository
	Cache   EventCache
	Logger  *zap.Logger
	Timeout time.Duration
}

func (s *DefaultEventStore) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return defaultTimeout
}

// FetchAll requests all events from the remote service. On success the cache
// snapshot is overwritten wholesale; on failure the last snapshot is served,
// or an empty collection when none exists.
func (s *DefaultEventStore) FetchAll(ctx context.Context) ([]models.ScheduleEvent, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	events, err := s.Repo.GetAll(ctx)
	if err != nil {
		s.Logger.Warn("event store: remote fetch failed, serving cache", zap.Error(err))
		return s.cachedEvents(ctx), true
	}

	if events == nil {
		events = []models.ScheduleEvent{}
	}
	if err := s.Cache.SaveSnapshot(ctx, events); err != nil {
		s.Logger.Warn("event store: failed to refresh cache snapshot", zap.Error(err))
	}
	return events, false
}

// Create inserts the event remotely. Server-assigned fields win on success and
// the record is appended to the cached list without a refetch. On remote
// failure the event gets a local-only ID and lives in the cache alone; it is
// visible immediately but not yet durable server-side.
func (s *DefaultEventStore) Create(ctx context.Context, event models.ScheduleEvent) (models.ScheduleEvent, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	stored, err := s.Repo.Insert(ctx, event)
	if err == nil {
		s.appendToCache(ctx, *stored)
		return *stored, false
	}

	s.Logger.Warn("event store: remote insert failed, writing local-only record", zap.Error(err))
	event.ID = fmt.Sprintf("%s%d", localIDPrefix, time.Now().UnixMilli())
	s.appendToCache(ctx, event)
	return event, true
}

// Update applies the event's populated fields remotely, keyed by ID. On
// success the cached record is replaced with the response; on failure the
// same field merge runs against the cache entry instead. A missing cache
// entry under remote failure makes the call a no-op returning the input.
func (s *DefaultEventStore) Update(ctx context.Context, event models.ScheduleEvent) (models.ScheduleEvent, bool, error) {
	if event.ID == "" {
		return event, false, ErrMissingEventID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	updated, err := s.Repo.UpdateByID(ctx, event)
	if err == nil {
		s.replaceInCache(ctx, *updated)
		return *updated, false, nil
	}

	s.Logger.Warn("event store: remote update failed, merging into cache",
		zap.String("eventId", event.ID), zap.Error(err))

	cached := s.cachedEvents(ctx)
	for i, entry := range cached {
		if entry.ID == event.ID {
			cached[i] = mergeEvent(entry, event)
			if err := s.Cache.SaveSnapshot(ctx, cached); err != nil {
				s.Logger.Warn("event store: failed to persist merged cache entry", zap.Error(err))
			}
			return cached[i], true, nil
		}
	}

	// Nothing to merge against; hand the input back untouched.
	return event, true, nil
}

// Delete removes the event remotely and, regardless of the remote outcome,
// filters the ID out of the cache. Deleting an unknown ID is not an error.
func (s *DefaultEventStore) Delete(ctx context.Context, id string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	remoteOK := true
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		s.Logger.Warn("event store: remote delete failed, removing from cache only",
			zap.String("eventId", id), zap.Error(err))
		remoteOK = false
	}

	cached := s.cachedEvents(ctx)
	filtered := make([]models.ScheduleEvent, 0, len(cached))
	for _, entry := range cached {
		if entry.ID != id {
			filtered = append(filtered, entry)
		}
	}
	if err := s.Cache.SaveSnapshot(ctx, filtered); err != nil {
		s.Logger.Warn("event store: failed to persist cache after delete", zap.Error(err))
	}
	return remoteOK
}

func (s *DefaultEventStore) cachedEvents(ctx context.Context) []models.ScheduleEvent {
	cached, err := s.Cache.Snapshot(ctx)
	if err != nil {
		s.Logger.Warn("event store: cache read failed, treating as empty", zap.Error(err))
		return []models.ScheduleEvent{}
	}
	if cached == nil {
		return []models.ScheduleEvent{}
	}
	return cached
}

func (s *DefaultEventStore) appendToCache(ctx context.Context, event models.ScheduleEvent) {
	cached := s.cachedEvents(ctx)
	cached = append(cached, event)
	if err := s.Cache.SaveSnapshot(ctx, cached); err != nil {
		s.Logger.Warn("event store: failed to append event to cache", zap.Error(err))
	}
}

func (s *DefaultEventStore) replaceInCache(ctx context.Context, event models.ScheduleEvent) {
	cached := s.cachedEvents(ctx)
	replaced := false
	for i, entry := range cached {
		if entry.ID == event.ID {
			cached[i] = event
			replaced = true
			break
		}
	}
	if !replaced {
		cached = append(cached, event)
	}
	if err := s.Cache.SaveSnapshot(ctx, cached); err != nil {
		s.Logger.Warn("event store: failed to persist replaced cache entry", zap.Error(err))
	}
}

// mergeEvent overlays the patch's populated fields onto base, mirroring the
// field set the remote update applies.
func mergeEvent(base, patch models.ScheduleEvent) models.ScheduleEvent {
	if patch.Title != "" {
		base.Title = patch.Title
	}
	if patch.Description != "" {
		base.Description = patch.Description
	}
	if !patch.StartDateTime.IsZero() {
		base.StartDateTime = patch.StartDateTime
	}
	if !patch.EndDateTime.IsZero() {
		base.EndDateTime = patch.EndDateTime
	}
	if patch.MeetLink != "" {
		base.MeetLink = patch.MeetLink
	}
	if patch.TeacherID != "" {
		base.TeacherID = patch.TeacherID
	}
	if patch.TeacherName != "" {
		base.TeacherName = patch.TeacherName
	}
	if patch.TeacherPhotoURL != "" {
		base.TeacherPhotoURL = patch.TeacherPhotoURL
	}
	if patch.Color != "" {
		base.Color = patch.Color
	}
	return base
}
