package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// DashboardCacheKey holds the serialized dashboard summary
	DashboardCacheKey = "dashboard:summary"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// DashboardCache keeps the last computed dashboard summary in Redis.
// A zero TTL disables caching; every method then becomes a no-op.
type DashboardCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewDashboardCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *DashboardCache {
	return &DashboardCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *DashboardCache) enabled() bool {
	return c != nil && c.redisClient != nil && c.ttl > 0
}

// Get loads the cached summary into dest. It reports false on a miss.
func (c *DashboardCache) Get(ctx context.Context, dest interface{}) (bool, error) {
	if !c.enabled() {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, DashboardCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get dashboard cache: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode dashboard cache: %w", err)
	}
	return true, nil
}

// Set stores value for the configured TTL
func (c *DashboardCache) Set(ctx context.Context, value interface{}) error {
	if !c.enabled() {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode dashboard cache: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, DashboardCacheKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set dashboard cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached summary after a write. Failures are only logged.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, DashboardCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate dashboard cache: %+v", err)
	}
}
