// Package cache wraps the process-wide Redis client. Values are stored as
// JSON. The client is optional: when Redis is unreachable every helper
// degrades to a no-op so callers always fall through to the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/metrics"
)

var RDB *redis.Client
var Ctx = context.Background()

// Connect initialises the Redis client and verifies the connection with a ping.
// Returns an error so the caller can react (log warning, fall back, or abort).
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		RDB = nil // mark as unavailable so Get/Set/Del no-op safely
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(Ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false
	}

	return true
}

// Set stores value in Redis under key for the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return RDB.Set(Ctx, key, data, ttl).Err()
}

// Del removes one or more keys from Redis.
func Del(keys ...string) error {
	if RDB == nil {
		return nil
	}
	return RDB.Del(Ctx, keys...).Err()
}

// Remember implements the read-through pattern: on a hit dest is filled from
// the cache; on a miss (or any cache fault) loader runs against the
// authoritative source, after which the result is stored best-effort.
// A loader error is the only error Remember returns.
func Remember(key string, ttl time.Duration, dest interface{}, loader func() error) error {
	if Get(key, dest) {
		metrics.CacheHits.WithLabelValues(key).Inc()
		return nil
	}
	metrics.CacheMisses.WithLabelValues(key).Inc()

	if err := loader(); err != nil {
		return err
	}

	_ = Set(key, dest, ttl) // cache faults never fail the read
	return nil
}
