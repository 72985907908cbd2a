package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgets-api/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func rows(n int) []models.SimplifiedRow {
	out := make([]models.SimplifiedRow, 0, n)
	for i := 1; i <= n; i++ {
		pos := i
		out = append(out, models.SimplifiedRow{Position: &pos})
	}
	return out
}

func TestStandingsCache_EmptyIsNotFresh(t *testing.T) {
	c := NewStandingsCache(0, nil)

	_, ok := c.Fresh()
	assert.False(t, ok)

	_, ok = c.Get()
	assert.False(t, ok)
	assert.Equal(t, DefaultStandingsTTL, c.TTL())
}

func TestStandingsCache_FreshnessWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)}
	c := NewStandingsCache(15*time.Minute, clock.Now)

	c.Set(rows(20))

	data, ok := c.Fresh()
	require.True(t, ok)
	assert.Len(t, data, 20)

	clock.Advance(15*time.Minute - time.Millisecond)
	_, ok = c.Fresh()
	assert.True(t, ok, "entry just inside the window must be fresh")

	clock.Advance(time.Millisecond)
	_, ok = c.Fresh()
	assert.False(t, ok, "entry exactly at the window edge must be stale")

	entry, ok := c.Get()
	require.True(t, ok, "stale entries are still readable through Get")
	assert.Len(t, entry.Data, 20)
	assert.Equal(t, time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC), entry.Timestamp)
}

func TestStandingsCache_SetReplacesWholesale(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	c := NewStandingsCache(time.Minute, clock.Now)

	c.Set(rows(20))
	clock.Advance(2 * time.Minute)
	c.Set(rows(3))

	data, ok := c.Fresh()
	require.True(t, ok)
	assert.Len(t, data, 3)
}

func TestStandingsCache_EmptyTableCountsAsData(t *testing.T) {
	c := NewStandingsCache(time.Minute, nil)
	c.Set(nil)

	data, ok := c.Fresh()
	require.True(t, ok)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestStandingsCache_Clear(t *testing.T) {
	c := NewStandingsCache(time.Minute, nil)
	c.Set(rows(2))
	c.Clear()

	_, ok := c.Fresh()
	assert.False(t, ok)
}

func TestStandingsCache_ConcurrentAccess(t *testing.T) {
	c := NewStandingsCache(time.Minute, nil)

	var wg sync.WaitGroup
	for i := 1; i <= 16; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Set(rows(n))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = c.Fresh()
		}()
	}
	wg.Wait()

	data, ok := c.Fresh()
	require.True(t, ok)
	assert.NotEmpty(t, data)
}
