// File: services/schedule/cache.go
package schedule

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"classcal/models"
)

const eventSnapshotKey = "schedule:events"

// EventCache holds the durable local snapshot of the event collection. It is
// a fallback for when the remote record service is unreachable, never the
// source of truth.
type EventCache interface {
	// Snapshot returns the cached events. A missing or unparseable snapshot
	// yields an empty result with no error; it is treated as cache-absent.
	Snapshot(ctx context.Context) ([]models.ScheduleEvent, error)
	SaveSnapshot(ctx context.Context, events []models.ScheduleEvent) error
}

// RedisEventCache persists the snapshot as a JSON array with string dates,
// normalized back to time.Time on read.
type RedisEventCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisEventCache(client *redis.Client, logger *zap.Logger) *RedisEventCache {
	return &RedisEventCache{client: client, logger: logger}
}

func (c *RedisEventCache) Snapshot(ctx context.Context) ([]models.ScheduleEvent, error) {
	data, err := c.client.Get(ctx, eventSnapshotKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cached []models.CachedScheduleEvent
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		c.logger.Warn("schedule cache: discarding unparseable snapshot", zap.Error(err))
		return nil, nil
	}

	events := make([]models.ScheduleEvent, 0, len(cached))
	for _, entry := range cached {
		events = append(events, entry.Normalize())
	}
	return events, nil
}

func (c *RedisEventCache) SaveSnapshot(ctx context.Context, events []models.ScheduleEvent) error {
	cached := make([]models.CachedScheduleEvent, 0, len(events))
	for _, ev := range events {
		cached = append(cached, ev.ToCached())
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	// No TTL: the snapshot survives until the next successful remote read
	// overwrites it.
	return c.client.Set(ctx, eventSnapshotKey, data, 0).Err()
}
