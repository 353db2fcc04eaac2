// File: services/feedback/service.go
package feedback

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const countPrefix = "feedback_count:"

// Categories are the ranking criteria a user can vote on.
var Categories = []string{"walk", "transfer", "totalTime", "elevator", "escalator"}

// InvalidCategoryError signals a feedback submission for an unknown category.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid feedback category: %s", e.Category)
}

// Service records user feedback and supplies the resulting ranking weights.
type Service interface {
	Submit(ctx context.Context, userID, category string) error
	Counts(ctx context.Context, userID string) (map[string]int, error)
}

// DefaultWeights are used when the feedback store is unreachable or a user
// has no recorded feedback for a category.
func DefaultWeights() map[string]int {
	return map[string]int{
		"walk":      2,
		"transfer":  0,
		"totalTime": 3,
		"elevator":  2,
		"escalator": 2,
	}
}

// RedisService keeps one counter hash per user.
type RedisService struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisService(client *redis.Client, logger *zap.Logger) *RedisService {
	return &RedisService{client: client, logger: logger}
}

func (s *RedisService) Submit(ctx context.Context, userID, category string) error {
	if !validCategory(category) {
		return &InvalidCategoryError{Category: category}
	}

	key := countPrefix + userID
	if err := s.client.HIncrBy(ctx, key, category, 1).Err(); err != nil {
		return fmt.Errorf("failed to record feedback for user %s: %w", userID, err)
	}

	s.logger.Debug("Feedback recorded",
		zap.String("userId", userID), zap.String("category", category))
	return nil
}

// Counts returns a counter for every known category, defaulting to zero.
// Unparseable values count as zero rather than failing the read.
func (s *RedisService) Counts(ctx context.Context, userID string) (map[string]int, error) {
	key := countPrefix + userID

	raw, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read feedback counts for user %s: %w", userID, err)
	}

	counts := make(map[string]int, len(Categories))
	for _, category := range Categories {
		count := 0
		if v, ok := raw[category]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				count = parsed
			}
		}
		counts[category] = count
	}
	return counts, nil
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
