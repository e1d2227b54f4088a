package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crewFit/domain"

	"github.com/redis/go-redis/v9"
)

const defaultResultTTL = 24 * time.Hour

// ResultCache keeps each user's latest recommendation result so the read
// endpoint can skip MongoDB on the hot path.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = defaultResultTTL
	}
	return &ResultCache{
		client: client,
		ttl:    ttl,
	}
}

func resultKey(userID int64) string {
	// key format: "crewreco:latest:{user_id}"
	return fmt.Sprintf("crewreco:latest:%d", userID)
}

func (c *ResultCache) StoreLatest(ctx context.Context, result domain.RecommendationResult) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := c.client.Set(ctx, resultKey(result.UserID), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store result in Redis: %w", err)
	}

	return nil
}

// GetLatest returns nil without error on a cache miss.
func (c *ResultCache) GetLatest(ctx context.Context, userID int64) (*domain.RecommendationResult, error) {
	val, err := c.client.Get(ctx, resultKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result from Redis: %w", err)
	}

	var result domain.RecommendationResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}

	return &result, nil
}
