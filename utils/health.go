package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	ContextStore bool      `json:"contextStore"`
	WeightsStore bool      `json:"weightsStore"`
	Archive      bool      `json:"archive"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// mongoClient may be nil when the transcript archive is disabled.
func StartHealthMonitor(contextClient, weightsClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{
				ContextStore: contextClient.Ping(ctx).Err() == nil,
				WeightsStore: weightsClient.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			}
			if mongoClient != nil {
				status.Archive = mongoClient.Ping(ctx, nil) == nil
			}

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
