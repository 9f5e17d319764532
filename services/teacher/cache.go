// File: services/teacher/cache.go
package teacher

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"classcal/models"
)

const teacherSnapshotKey = "schedule:teachers"

// TeacherCache holds the durable snapshot of the teacher allow-list.
type TeacherCache interface {
	Snapshot(ctx context.Context) ([]models.Teacher, error)
	SaveSnapshot(ctx context.Context, teachers []models.Teacher) error
}

// RedisTeacherCache persists the snapshot as a JSON array under a fixed key.
type RedisTeacherCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisTeacherCache(client *redis.Client, logger *zap.Logger) *RedisTeacherCache {
	return &RedisTeacherCache{client: client, logger: logger}
}

func (c *RedisTeacherCache) Snapshot(ctx context.Context) ([]models.Teacher, error) {
	data, err := c.client.Get(ctx, teacherSnapshotKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var teachers []models.Teacher
	if err := json.Unmarshal([]byte(data), &teachers); err != nil {
		c.logger.Warn("teacher cache: discarding unparseable snapshot", zap.Error(err))
		return nil, nil
	}
	return teachers, nil
}

func (c *RedisTeacherCache) SaveSnapshot(ctx context.Context, teachers []models.Teacher) error {
	data, err := json.Marshal(teachers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, teacherSnapshotKey, data, 0).Err()
}
