package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/analytics"
	"github.com/Bossax/creagy-project-tracker/pkg/metrics"
)

// AnalyticsCache keeps derived per-project analytics payloads in redis
// so repeated dashboard loads don't re-read the whole project. The
// requester-dependent CanManageTasks flag is NOT cached; the manager id
// is stored alongside the payload and the flag is recomputed per
// request, so one key per project is enough and invalidation is a
// single DEL.
type AnalyticsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

type cachedEntry struct {
	Payload   analytics.ProjectAnalytics `json:"payload"`
	ManagerID int64                      `json:"manager_id"`
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *AnalyticsCache {
	return &AnalyticsCache{rdb: rdb, ttl: ttl, logger: logger}
}

func key(projectID int64) string {
	return fmt.Sprintf("analytics:project:%d", projectID)
}

// Get returns the cached payload and the project's manager id. A nil
// redis client disables caching entirely.
func (c *AnalyticsCache) Get(ctx context.Context, projectID int64) (analytics.ProjectAnalytics, int64, bool) {
	if c == nil || c.rdb == nil {
		metrics.RecordCacheLookup("bypass")
		return analytics.ProjectAnalytics{}, 0, false
	}

	raw, err := c.rdb.Get(ctx, key(projectID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Analytics cache read failed", zap.Error(err), zap.Int64("project_id", projectID))
		}
		metrics.RecordCacheLookup("miss")
		return analytics.ProjectAnalytics{}, 0, false
	}

	var entry cachedEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.Warn("Analytics cache entry is corrupt; dropping", zap.Error(err), zap.Int64("project_id", projectID))
		c.rdb.Del(ctx, key(projectID))
		metrics.RecordCacheLookup("miss")
		return analytics.ProjectAnalytics{}, 0, false
	}

	metrics.RecordCacheLookup("hit")
	return entry.Payload, entry.ManagerID, true
}

func (c *AnalyticsCache) Set(ctx context.Context, projectID, managerID int64, payload analytics.ProjectAnalytics) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(cachedEntry{Payload: payload, ManagerID: managerID})
	if err != nil {
		c.logger.Warn("Failed to marshal analytics payload for cache", zap.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, key(projectID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Analytics cache write failed", zap.Error(err), zap.Int64("project_id", projectID))
	}
}

// Invalidate drops a project's cached payload. Called whenever a task
// is added so the next dashboard load re-derives.
func (c *AnalyticsCache) Invalidate(ctx context.Context, projectID int64) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(projectID)).Err(); err != nil {
		c.logger.Warn("Analytics cache invalidation failed", zap.Error(err), zap.Int64("project_id", projectID))
	}
}
