// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores boards as JSON blobs with a per-key TTL.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (cache *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt cache line is a miss; the entry is overwritten on recompute.
		return false, err
	}

	return true, nil
}

func (cache *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return cache.client.Set(ctx, key, raw, ttl).Err()
}
