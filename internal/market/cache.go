package market

import (
	"context"
	"sync"

	"github.com/jonathan/skillscope/internal/types"
)

// CacheKey identifies one cached profile. Aggregation over many postings is
// the engine's most expensive path, so callers serving repeated role queries
// should cache by (role, locale).
type CacheKey struct {
	Role   string
	Locale string
}

// ProfileCache is a read-through cache of market profiles. Concurrent
// readers during a refresh see the prior complete snapshot, never a
// partially built profile: the new profile is built outside the lock and
// swapped in whole.
type ProfileCache struct {
	mu       sync.RWMutex
	profiles map[CacheKey]*types.MarketProfile

	buildMu sync.Mutex // serializes rebuilds for the same cache
}

// NewProfileCache creates an empty cache.
func NewProfileCache() *ProfileCache {
	return &ProfileCache{profiles: make(map[CacheKey]*types.MarketProfile)}
}

// Get returns the cached profile for the key, building and storing it with
// build on a miss. The build runs outside the read lock.
func (c *ProfileCache) Get(ctx context.Context, key CacheKey, build func(context.Context) (*types.MarketProfile, error)) (*types.MarketProfile, error) {
	c.mu.RLock()
	profile, ok := c.profiles[key]
	c.mu.RUnlock()
	if ok {
		return profile, nil
	}

	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	// Another builder may have won the race while we waited.
	c.mu.RLock()
	profile, ok = c.profiles[key]
	c.mu.RUnlock()
	if ok {
		return profile, nil
	}

	profile, err := build(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.profiles[key] = profile
	c.mu.Unlock()
	return profile, nil
}

// Refresh rebuilds the profile for the key and atomically replaces the
// stored snapshot. Readers keep seeing the old profile until the new one is
// complete; on build failure the old snapshot stays in place.
func (c *ProfileCache) Refresh(ctx context.Context, key CacheKey, build func(context.Context) (*types.MarketProfile, error)) (*types.MarketProfile, error) {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	profile, err := build(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.profiles[key] = profile
	c.mu.Unlock()
	return profile, nil
}

// Invalidate drops the cached profile for the key.
func (c *ProfileCache) Invalidate(key CacheKey) {
	c.mu.Lock()
	delete(c.profiles, key)
	c.mu.Unlock()
}
