package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/dto"
	"github.com/Payphone-Digital/transportadora/pkg/cache"
	"github.com/Payphone-Digital/transportadora/pkg/circuit"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
)

// RemoteCache is the subset of the Redis client the stats cache needs
type RemoteCache interface {
	IsEnabled() bool
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// StatsCache keeps the statistics snapshot in Redis when it is reachable and
// in process memory otherwise. Redis calls go through the breaker.
type StatsCache struct {
	remote  RemoteCache
	breaker *circuit.Breaker
	local   *cache.Cache
	ttl     time.Duration
	key     string

	// remoteStale is set when an invalidation could not reach Redis. The
	// snapshot left there must be deleted before Redis is read again.
	remoteStale atomic.Bool
}

func NewStatsCache(remote RemoteCache, breaker *circuit.Breaker, local *cache.Cache, ttl time.Duration) *StatsCache {
	return &StatsCache{
		remote:  remote,
		breaker: breaker,
		local:   local,
		ttl:     ttl,
		key:     constants.CacheKeyStats,
	}
}

func (c *StatsCache) useRemote() bool {
	return c.remote != nil && c.remote.IsEnabled() && c.breaker != nil
}

func (c *StatsCache) Get(ctx context.Context) (*dto.EstatisticasResponse, bool) {
	ctx = ctxutil.WithFunction(ctx, "service", "StatsCache.Get")

	if c.useRemote() && c.clearStaleRemote(ctx) {
		var stats dto.EstatisticasResponse
		var found bool
		err := c.breaker.Execute(ctx, func(ctx context.Context) error {
			var err error
			found, err = c.remote.GetJSON(ctx, c.key, &stats)
			return err
		})
		if err == nil {
			if found {
				return &stats, true
			}
			return nil, false
		}

		logger.WarnWithContext(ctx, "Redis unavailable, reading stats from memory").
			String("breaker_state", c.breaker.State().String()).
			Err(err).
			Log()
	}

	if v, ok := c.local.Get(c.key); ok {
		if stats, ok := v.(dto.EstatisticasResponse); ok {
			return &stats, true
		}
	}
	return nil, false
}

func (c *StatsCache) Set(ctx context.Context, stats *dto.EstatisticasResponse) {
	ctx = ctxutil.WithFunction(ctx, "service", "StatsCache.Set")

	c.local.Set(c.key, *stats, c.ttl)

	if !c.useRemote() {
		return
	}

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.remote.SetJSON(ctx, c.key, stats, c.ttl)
	})
	if err != nil {
		logger.WarnWithContext(ctx, "Failed to cache stats in Redis").
			Err(err).
			Log()
		return
	}
	c.remoteStale.Store(false)
}

// Invalidate drops the snapshot from both tiers
func (c *StatsCache) Invalidate(ctx context.Context) {
	ctx = ctxutil.WithFunction(ctx, "service", "StatsCache.Invalidate")

	c.local.Delete(c.key)

	if !c.useRemote() {
		return
	}

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.remote.Delete(ctx, c.key)
	})
	if err != nil {
		c.remoteStale.Store(true)
		logger.WarnWithContext(ctx, "Failed to invalidate stats in Redis").
			Err(err).
			Log()
	}
}

// clearStaleRemote retries a failed invalidation. It reports whether Redis
// holds no stale snapshot and may be read.
func (c *StatsCache) clearStaleRemote(ctx context.Context) bool {
	if !c.remoteStale.Load() {
		return true
	}

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.remote.Delete(ctx, c.key)
	})
	if err != nil {
		logger.DebugWithContext(ctx, "Stale stats still in Redis, reading from memory").
			Err(err).
			Log()
		return false
	}

	c.remoteStale.Store(false)
	return true
}
