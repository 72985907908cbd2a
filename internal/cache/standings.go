package cache

import (
	"sync"
	"time"

	"widgets-api/internal/models"
)

// DefaultStandingsTTL is the freshness window of a cached table
const DefaultStandingsTTL = 15 * time.Minute

// Clock returns the current time
type Clock func() time.Time

// StandingsCache holds the last full simplified table and when it was fetched.
//
// Two invocations that both see a stale entry will both fetch and both Set;
// the last write wins. Entries are whole tables, so that is harmless.
type StandingsCache struct {
	mu    sync.RWMutex
	entry *models.StandingsCacheEntry
	ttl   time.Duration
	now   Clock
}

// NewStandingsCache creates an empty cache. A non-positive ttl uses the default.
func NewStandingsCache(ttl time.Duration, clock Clock) *StandingsCache {
	if ttl <= 0 {
		ttl = DefaultStandingsTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &StandingsCache{ttl: ttl, now: clock}
}

// TTL returns the freshness window
func (c *StandingsCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the current entry, fresh or not
func (c *StandingsCache) Get() (models.StandingsCacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entry == nil {
		return models.StandingsCacheEntry{}, false
	}
	return *c.entry, true
}

// Fresh returns the cached table if it holds data younger than the TTL
func (c *StandingsCache) Fresh() ([]models.SimplifiedRow, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entry == nil || c.entry.Data == nil {
		return nil, false
	}
	if c.now().Sub(c.entry.Timestamp) >= c.ttl {
		return nil, false
	}
	return c.entry.Data, true
}

// Set replaces the entry with a full table stamped with the current time
func (c *StandingsCache) Set(rows []models.SimplifiedRow) {
	if rows == nil {
		rows = []models.SimplifiedRow{}
	}
	entry := &models.StandingsCacheEntry{
		Timestamp: c.now(),
		Data:      rows,
	}

	c.mu.Lock()
	c.entry = entry
	c.mu.Unlock()
}

// Clear drops the entry
func (c *StandingsCache) Clear() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}
