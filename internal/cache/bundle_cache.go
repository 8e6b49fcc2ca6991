package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"careerdisha/internal/model"
)

// BundleCache is a read-through cache for composed recommendation bundles.
// A miss returns (nil, nil); callers treat any cache error as advisory.
type BundleCache interface {
	Get(ctx context.Context, username string) (*model.Bundle, error)
	Set(ctx context.Context, username string, bundle *model.Bundle) error
	Invalidate(ctx context.Context, username string) error
}

type bundleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBundleCache(client *redis.Client, ttl time.Duration) BundleCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &bundleCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *bundleCache) key(username string) string {
	return "bundle:" + username
}

func (c *bundleCache) Get(ctx context.Context, username string) (*model.Bundle, error) {
	data, err := c.client.Get(ctx, c.key(username)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var bundle model.Bundle
	if err := json.Unmarshal([]byte(data), &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (c *bundleCache) Set(ctx context.Context, username string, bundle *model.Bundle) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(username), data, c.ttl).Err()
}

func (c *bundleCache) Invalidate(ctx context.Context, username string) error {
	return c.client.Del(ctx, c.key(username)).Err()
}
