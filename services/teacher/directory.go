// File: services/teacher/directory.go
package teacher

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	teachersRepo "classcal/database/repository/teachers"
	"classcal/models"
)

// ErrNotFound is returned when no teacher matches a lookup.
var ErrNotFound = errors.New("teacher not found")

const defaultTimeout = 10 * time.Second

// TeacherDirectory reads the externally managed teacher allow-list with the
// same remote-wins / cache-fallback policy as the event store. It enforces
// nothing: filtering by teacher stays a client-side convention.
type TeacherDirectory interface {
	FetchAll(ctx context.Context) (teachers []models.Teacher, degraded bool)
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
}

// DefaultTeacherDirectory implements TeacherDirectory.
type DefaultTeacherDirectory struct {
	Repo    teachersRepo.TeacherRepository
	Cache   TeacherCache
	Logger  *zap.Logger
	Timeout time.Duration
}

func (d *DefaultTeacherDirectory) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return defaultTimeout
}

// FetchAll returns the allow-list, refreshing the cache snapshot on success
// and serving it on remote failure.
func (d *DefaultTeacherDirectory) FetchAll(ctx context.Context) ([]models.Teacher, bool) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout())
	defer cancel()

	teachers, err := d.Repo.GetAll(ctx)
	if err != nil {
		d.Logger.Warn("teacher directory: remote fetch failed, serving cache", zap.Error(err))
		cached, cacheErr := d.Cache.Snapshot(ctx)
		if cacheErr != nil || cached == nil {
			return []models.Teacher{}, true
		}
		return cached, true
	}

	if teachers == nil {
		teachers = []models.Teacher{}
	}
	if err := d.Cache.SaveSnapshot(ctx, teachers); err != nil {
		d.Logger.Warn("teacher directory: failed to refresh cache snapshot", zap.Error(err))
	}
	return teachers, false
}

// FindByEmail resolves an allow-list entry by email, falling back to the
// cached snapshot when the remote lookup fails.
func (d *DefaultTeacherDirectory) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout())
	defer cancel()

	t, err := d.Repo.GetByEmail(ctx, email)
	if err == nil {
		return t, nil
	}
	d.Logger.Warn("teacher directory: remote lookup failed, checking cache",
		zap.String("email", email), zap.Error(err))

	cached, cacheErr := d.Cache.Snapshot(ctx)
	if cacheErr != nil {
		return nil, ErrNotFound
	}
	for i := range cached {
		if cached[i].Email == email {
			return &cached[i], nil
		}
	}
	return nil, ErrNotFound
}
