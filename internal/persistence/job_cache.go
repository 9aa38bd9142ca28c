package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/domain"
)

const (
	activeJobsKey = "jobs:active"
	activeJobsTTL = time.Minute
)

// JobCache keeps the public active-job listing in Redis so the hot anonymous
// endpoint does not hit Postgres on every request. Cache misses and Redis
// outages degrade to the database.
type JobCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewJobCache builds a cache over the shared Redis client. A nil client
// yields a cache that always misses.
func NewJobCache(r *Redis, logger *zap.Logger) *JobCache {
	var client *redis.Client
	if r != nil {
		client = r.Client
	}
	return &JobCache{client: client, logger: logger}
}

// GetActive returns the cached listing, or ok=false on miss or error.
func (c *JobCache) GetActive(ctx context.Context) ([]*domain.Job, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, activeJobsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("job cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var jobs []*domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		c.logger.Warn("job cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return jobs, true
}

// SetActive stores the listing with a short TTL.
func (c *JobCache) SetActive(ctx context.Context, jobs []*domain.Job) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, activeJobsKey, raw, activeJobsTTL).Err(); err != nil {
		c.logger.Warn("job cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached listing after any posting mutation.
func (c *JobCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, activeJobsKey).Err(); err != nil {
		c.logger.Warn("job cache invalidation failed", zap.Error(err))
	}
}
