// File: utils/redis.go
package utils

import (
	"context"
	"fmt"
	"time"

	"roadmate/config"

	"github.com/go-redis/redis/v8"
)

// NewContextRedisClient returns the Redis client backing the session context store.
func NewContextRedisClient(cfg *config.Config) (*redis.Client, error) {
	return newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisContextDB)
}

// NewWeightsRedisClient returns the Redis client backing the feedback weight counters.
func NewWeightsRedisClient(cfg *config.Config) (*redis.Client, error) {
	return newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisWeightsDB)
}

func newRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (db %d): %w", db, err)
	}
	return client, nil
}
