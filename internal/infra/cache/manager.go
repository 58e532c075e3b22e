// Package cache implements the TTL key/value caches that sit in front of every read path.
// Caches are never authoritative: a miss always falls through to the store.
package cache

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"booknow/internal/domain/service"
	"booknow/internal/infra/resilience"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	data      any
	timestamp time.Time
	ttl       time.Duration
	version   string
}

func (e *entry) validAt(now time.Time) bool {
	return now.Sub(e.timestamp) < e.ttl
}

// Manager is a bounded TTL cache. When full, Set evicts the entry with the oldest
// timestamp, which is insertion order rather than access order.
type Manager struct {
	name       string
	defaultTTL time.Duration
	maxSize    int
	logger     *slog.Logger
	now        func() time.Time

	mu      sync.RWMutex
	entries map[string]*entry
	dirty   bool

	loads      singleflight.Group
	refreshing sync.WaitGroup

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

var _ service.Cache = (*Manager)(nil)

// Option customizes a Manager.
type Option func(*Manager)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates an empty cache.
func NewManager(name string, defaultTTL time.Duration, maxSize int, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		name:       name,
		defaultTTL: defaultTTL,
		maxSize:    maxSize,
		logger:     logger.With(slog.String("cache", name)),
		now:        time.Now,
		entries:    make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the cache name.
func (m *Manager) Name() string {
	return m.name
}

// Get returns the value for key while it is within its TTL.
func (m *Manager) Get(key string) (any, bool) {
	now := m.now()

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if ok && e.validAt(now) {
		m.hits.Add(1)

		return e.data, true
	}

	if ok {
		m.mu.Lock()
		// re-check: a concurrent Set may have replaced it
		if cur, still := m.entries[key]; still && !cur.validAt(now) {
			delete(m.entries, key)
			m.dirty = true
		}
		m.mu.Unlock()
	}
	m.misses.Add(1)

	return nil, false
}

// GetOrLoad falls back to loader on a miss and stores its result. Concurrent
// loads of one key are coalesced; a loader error is reported as a miss.
func (m *Manager) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader service.Loader) (any, bool) {
	if v, ok := m.Get(key); ok {
		return v, true
	}
	if loader == nil {
		return nil, false
	}

	return m.load(ctx, key, ttl, loader)
}

func (m *Manager) load(ctx context.Context, key string, ttl time.Duration, loader service.Loader) (any, bool) {
	v, err, _ := m.loads.Do(key, func() (any, error) {
		data, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if data != nil {
			m.Set(key, data, ttl, "")
		}

		return data, nil
	})
	if err != nil {
		m.logger.WarnContext(ctx, "Cache loader failed",
			slog.String("key", key),
			slog.Any("error", err),
			resilience.CategorizeError(err).Attr(),
		)

		return nil, false
	}
	if v == nil {
		return nil, false
	}

	return v, true
}

// Set stores value under key, evicting the oldest entry when the cache is full.
// A zero ttl means the default TTL.
func (m *Manager) Set(key string, value any, ttl time.Duration, version string) {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && m.maxSize > 0 && len(m.entries) >= m.maxSize {
		m.evictOldestLocked()
	}

	m.entries[key] = &entry{
		data:      value,
		timestamp: m.now(),
		ttl:       ttl,
		version:   version,
	}
	m.dirty = true
}

func (m *Manager) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for k, e := range m.entries {
		if !found || e.timestamp.Before(oldest) {
			oldestKey, oldest, found = k, e.timestamp, true
		}
	}
	if found {
		delete(m.entries, oldestKey)
		m.evictions.Add(1)
	}
}

// Delete removes key.
func (m *Manager) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		delete(m.entries, key)
		m.dirty = true
	}
}

// Clear removes every entry.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.entries)
	m.dirty = true
}

// InvalidatePattern removes the keys matching pattern and returns how many were removed.
func (m *Manager) InvalidatePattern(pattern *regexp.Regexp) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for k := range m.entries {
		if pattern.MatchString(k) {
			delete(m.entries, k)
			n++
		}
	}
	if n > 0 {
		m.dirty = true
	}

	return n
}

// InvalidateByVersion removes the entries tagged with version.
func (m *Manager) InvalidateByVersion(version string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for k, e := range m.entries {
		if e.version == version {
			delete(m.entries, k)
			n++
		}
	}
	if n > 0 {
		m.dirty = true
	}

	return n
}

// BackgroundRefresh returns the cached value and reloads it asynchronously once
// threshold of its TTL has elapsed.
func (m *Manager) BackgroundRefresh(ctx context.Context, key string, loader service.Loader, threshold float64) (any, bool) {
	now := m.now()

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || !e.validAt(now) {
		return m.GetOrLoad(ctx, key, 0, loader)
	}
	m.hits.Add(1)

	if float64(now.Sub(e.timestamp)) > threshold*float64(e.ttl) {
		ttl := e.ttl
		refreshCtx := context.WithoutCancel(ctx)
		m.refreshing.Add(1)
		go func() {
			defer m.refreshing.Done()
			m.load(refreshCtx, key, ttl, loader)
		}()
	}

	return e.data, true
}

// WaitRefreshes blocks until every background refresh started so far has finished.
func (m *Manager) WaitRefreshes() {
	m.refreshing.Wait()
}

// Len returns the number of resident entries, expired ones included until touched.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Stats is a point-in-time view of a cache for diagnostics.
type Stats struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	MaxSize   int    `json:"max_size"`
	Hits      int64  `json:"hits"`
	Misses    int64  `json:"misses"`
	Evictions int64  `json:"evictions"`
}

// Stats returns counters since creation.
func (m *Manager) Stats() Stats {
	return Stats{
		Name:      m.name,
		Size:      m.Len(),
		MaxSize:   m.maxSize,
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
	}
}
