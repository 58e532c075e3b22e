package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"booknow/internal/domain/service"
	"booknow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(maxSize int) (*Manager, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewManager("test", 5*time.Minute, maxSize, logger, WithClock(clock.Now)), clock
}

func TestManager_GetWithinTTL(t *testing.T) {
	m, clock := newTestManager(10)

	m.Set("user:1", "alice", time.Minute, "")
	v, ok := m.Get("user:1")
	require.True(t, ok)
	assert.Equal(t, "alice", v)

	clock.Advance(59 * time.Second)
	_, ok = m.Get("user:1")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = m.Get("user:1")
	assert.False(t, ok, "entry is invalid once now-timestamp reaches ttl")
	assert.Equal(t, 0, m.Len())
}

func TestManager_ExpiredEntryUsesFallback(t *testing.T) {
	m, clock := newTestManager(10)
	ctx := context.Background()

	m.Set("k", "old", time.Minute, "")
	clock.Advance(2 * time.Minute)

	calls := 0
	v, ok := m.GetOrLoad(ctx, "k", time.Minute, func(context.Context) (any, error) {
		calls++

		return "new", nil
	})
	require.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, calls)

	v, ok = m.GetOrLoad(ctx, "k", time.Minute, func(context.Context) (any, error) {
		calls++

		return "newer", nil
	})
	require.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, calls)
}

func TestManager_FallbackErrorIsAMiss(t *testing.T) {
	m, _ := newTestManager(10)

	v, ok := m.GetOrLoad(context.Background(), "k", 0, func(context.Context) (any, error) {
		return nil, errors.New("database unreachable")
	})
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, 0, m.Len())
}

func TestManager_DefaultTTL(t *testing.T) {
	m, clock := newTestManager(10)

	m.Set("k", 1, 0, "")
	clock.Advance(4 * time.Minute)
	_, ok := m.Get("k")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok = m.Get("k")
	assert.False(t, ok)
}

func TestManager_SizeBoundEvictsOldestTimestamp(t *testing.T) {
	m, clock := newTestManager(3)

	for i := 0; i < 3; i++ {
		m.Set(fmt.Sprintf("k%d", i), i, time.Hour, "")
		clock.Advance(time.Second)
	}

	// overwriting an existing key refreshes its timestamp and never evicts
	m.Set("k0", 100, time.Hour, "")
	clock.Advance(time.Second)
	assert.Equal(t, 3, m.Len())

	m.Set("k3", 3, time.Hour, "")
	assert.Equal(t, 3, m.Len())

	_, ok := m.Get("k1")
	assert.False(t, ok, "k1 had the smallest timestamp")
	for _, k := range []string{"k0", "k2", "k3"} {
		_, ok := m.Get(k)
		assert.True(t, ok, k)
	}

	for i := 4; i < 20; i++ {
		m.Set(fmt.Sprintf("k%d", i), i, time.Hour, "")
		clock.Advance(time.Millisecond)
		assert.LessOrEqual(t, m.Len(), 3)
	}
	assert.Equal(t, int64(17), m.Stats().Evictions)
}

func TestManager_InvalidatePattern(t *testing.T) {
	m, _ := newTestManager(10)

	m.Set("search:pizza:0", 1, 0, "")
	m.Set("search:sushi:0", 2, 0, "")
	m.Set("user:1", 3, 0, "")

	n := m.InvalidatePattern(regexp.MustCompile(`^search:`))
	assert.Equal(t, 2, n)

	_, ok := m.Get("user:1")
	assert.True(t, ok)
}

func TestManager_InvalidateByVersion(t *testing.T) {
	m, _ := newTestManager(10)

	m.Set("a", 1, 0, "v1")
	m.Set("b", 2, 0, "v2")
	m.Set("c", 3, 0, "v1")

	assert.Equal(t, 2, m.InvalidateByVersion("v1"))
	assert.Equal(t, 1, m.Len())
}

func TestManager_DeleteAndClear(t *testing.T) {
	m, _ := newTestManager(10)

	m.Set("a", 1, 0, "")
	m.Set("b", 2, 0, "")
	m.Delete("a")
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestManager_BackgroundRefresh(t *testing.T) {
	m, clock := newTestManager(10)
	ctx := context.Background()

	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		n := loads.Add(1)

		return fmt.Sprintf("v%d", n), nil
	}

	v, ok := m.BackgroundRefresh(ctx, "k", loader, 0.5)
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	clock.Advance(2 * time.Minute)
	v, ok = m.BackgroundRefresh(ctx, "k", loader, 0.5)
	m.WaitRefreshes()
	require.True(t, ok)
	assert.Equal(t, "v1", v, "below threshold returns cached value without reloading")
	assert.Equal(t, int32(1), loads.Load())

	clock.Advance(time.Minute)
	v, ok = m.BackgroundRefresh(ctx, "k", loader, 0.5)
	require.True(t, ok)
	assert.Equal(t, "v1", v, "stale value is served immediately")
	m.WaitRefreshes()

	assert.Equal(t, int32(2), loads.Load())
	v, _ = m.Get("k")
	assert.Equal(t, "v2", v)
}

type cachedStats struct {
	Points int `json:"points"`
}

func TestPersister_RoundTripDiscardsExpired(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewPersister(bucket, logger)

	src, clock := newTestManager(10)
	src.Set("stats:1", &cachedStats{Points: 75}, time.Hour, "")
	src.Set("stats:2", &cachedStats{Points: 25}, time.Minute, "")
	require.NoError(t, p.Save(ctx, src))

	clock.Advance(10 * time.Minute)
	dst := NewManager("test", 5*time.Minute, 10, logger, WithClock(clock.Now))
	n, err := p.Load(ctx, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, ok := service.CacheGet[*cachedStats](dst, "stats:1")
	require.True(t, ok)
	assert.Equal(t, 75, got.Points)

	_, ok = dst.Get("stats:2")
	assert.False(t, ok)
}

func TestPersister_MissingSnapshot(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	m, _ := newTestManager(10)
	n, err := NewPersister(bucket, slog.Default()).Load(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAs(t *testing.T) {
	v, ok := service.CacheAs[int](7)
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = service.CacheAs[string](7)
	assert.False(t, ok)
}
