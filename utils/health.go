package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports the last observed state of the external collaborators:
// the remote record service and the two Redis caches.
type HealthStatus struct {
	RecordService bool      `json:"recordService"`
	Cache         bool      `json:"cache"`
	AuthCache     bool      `json:"authCache"`
	CheckedAt     time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic probes and updates in-memory state.
// Degraded collaborators do not take the service down; the store falls back
// to the cache, so health is advisory.
func StartHealthMonitor(mongoClient *mongo.Client, cache, authCache *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{
				RecordService: mongoClient.Ping(ctx, nil) == nil,
				Cache:         cache.Ping(ctx).Err() == nil,
				AuthCache:     authCache.Ping(ctx).Err() == nil,
				CheckedAt:     time.Now(),
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
