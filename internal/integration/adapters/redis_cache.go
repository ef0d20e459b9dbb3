package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fintracker/insights/internal/domain/entity"
)

const (
	categoryKeyPrefix = "ai:category:"
	merchantKeyPrefix = "ai:merchant:"
)

// RedisResultCache memoizes AI results in Redis, keyed by the normalized
// transaction description. It implements adapter.ResultCache.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultCache creates a result cache on an existing Redis client.
func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{
		client: client,
		ttl:    ttl,
	}
}

// cachedMerchant is the stored JSON shape for merchant enrichment.
type cachedMerchant struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// GetCategory returns a cached category prediction for the description.
func (c *RedisResultCache) GetCategory(ctx context.Context, description string) (entity.CategoryID, bool, error) {
	value, err := c.client.Get(ctx, categoryKeyPrefix+normalizeKey(description)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entity.CategoryID(value), true, nil
}

// SetCategory stores a category prediction for the description.
func (c *RedisResultCache) SetCategory(ctx context.Context, description string, category entity.CategoryID) error {
	return c.client.Set(ctx, categoryKeyPrefix+normalizeKey(description), string(category), c.ttl).Err()
}

// GetMerchant returns cached merchant enrichment for the description.
func (c *RedisResultCache) GetMerchant(ctx context.Context, description string) (*entity.MerchantInfo, bool, error) {
	value, err := c.client.Get(ctx, merchantKeyPrefix+normalizeKey(description)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var stored cachedMerchant
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return nil, false, err
	}

	return &entity.MerchantInfo{
		Name:     stored.Name,
		Category: entity.CategoryID(stored.Category),
		Icon:     stored.Icon,
	}, true, nil
}

// SetMerchant stores merchant enrichment for the description.
func (c *RedisResultCache) SetMerchant(ctx context.Context, description string, info *entity.MerchantInfo) error {
	data, err := json.Marshal(cachedMerchant{
		Name:     info.Name,
		Category: string(info.Category),
		Icon:     info.Icon,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, merchantKeyPrefix+normalizeKey(description), data, c.ttl).Err()
}

// normalizeKey lowercases and trims the description so that lookups are
// insensitive to casing and surrounding whitespace.
func normalizeKey(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}
