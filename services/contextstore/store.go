// File: services/contextstore/store.go
package contextstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roadmate/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	contextPrefix = "nlp_context:"
	lockPrefix    = "nlp_context_lock:"
	lockTTL       = 15 * time.Second
)

// ErrNotFound is returned when no context exists for a session.
var ErrNotFound = errors.New("chat context not found")

// ErrCorrupt is returned when a stored context fails to deserialize. The
// corrupt entry has already been deleted when this error is returned.
var ErrCorrupt = errors.New("chat context corrupt")

// ErrLockHeld is returned when another turn currently owns the session lock.
var ErrLockHeld = errors.New("session lock held")

// Store is the durable per-session conversational state repository.
type Store interface {
	Get(ctx context.Context, sessionID string) (*models.ChatContext, error)
	Set(ctx context.Context, chatCtx *models.ChatContext) error
	Delete(ctx context.Context, sessionID string) error
	// Lock acquires an advisory per-session lock for the duration of one
	// turn. The returned function releases it.
	Lock(ctx context.Context, sessionID string) (func(), error)
}

// RedisStore keeps contexts as JSON values with a TTL refreshed on every write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.ChatContext, error) {
	key := contextPrefix + sessionID

	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("context lookup failed for session %s: %w", sessionID, err)
	}

	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		s.logger.Error("Failed to deserialize chat context, deleting entry",
			zap.String("sessionId", sessionID), zap.Error(err))
		if delErr := s.Delete(ctx, sessionID); delErr != nil {
			s.logger.Error("Failed to delete corrupt chat context",
				zap.String("sessionId", sessionID), zap.Error(delErr))
		}
		return nil, ErrCorrupt
	}

	return &chatCtx, nil
}

func (s *RedisStore) Set(ctx context.Context, chatCtx *models.ChatContext) error {
	key := contextPrefix + chatCtx.SessionID

	b, err := json.Marshal(chatCtx)
	if err != nil {
		return fmt.Errorf("failed to marshal chat context: %w", err)
	}
	if err := s.client.Set(ctx, key, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store chat context: %w", err)
	}

	s.logger.Debug("Chat context saved", zap.String("sessionId", chatCtx.SessionID))
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, contextPrefix+sessionID).Err()
}

// releaseScript deletes the lock only when the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (s *RedisStore) Lock(ctx context.Context, sessionID string) (func(), error) {
	key := lockPrefix + sessionID
	token := uuid.New().String()

	ok, err := s.client.SetNX(ctx, key, token, lockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("session lock failed for %s: %w", sessionID, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}

	release := func() {
		if err := releaseScript.Run(context.Background(), s.client, []string{key}, token).Err(); err != nil && err != redis.Nil {
			s.logger.Warn("Failed to release session lock",
				zap.String("sessionId", sessionID), zap.Error(err))
		}
	}
	return release, nil
}
