package service

import (
	"context"
	"encoding/json"
	"regexp"
	"time"
)

// Loader produces a value for a cache key.
type Loader func(ctx context.Context) (any, error)

// Cache is a non-authoritative TTL key/value store. Every caller must work on a miss.
type Cache interface {
	// Get returns a value still within its TTL.
	Get(key string) (any, bool)

	// GetOrLoad returns the cached value or runs loader and caches its result with ttl.
	// Loader errors are logged and reported as a miss. A zero ttl uses the cache default.
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader Loader) (any, bool)

	// Set stores value. A zero ttl uses the cache default.
	Set(key string, value any, ttl time.Duration, version string)

	Delete(key string)
	Clear()

	// InvalidatePattern removes every key matching pattern and returns the count.
	InvalidatePattern(pattern *regexp.Regexp) int

	// InvalidateByVersion removes every entry stored with version and returns the count.
	InvalidateByVersion(version string) int

	// BackgroundRefresh returns the cached value immediately and reloads it asynchronously
	// once its age passes threshold*ttl. On a miss it loads synchronously.
	BackgroundRefresh(ctx context.Context, key string, loader Loader, threshold float64) (any, bool)
}

// LockRegistry is a keyed set of in-flight guards.
type LockRegistry interface {
	// TryAcquire returns a release func and true if key was free, or false if it is held.
	TryAcquire(key string) (release func(), ok bool)
}

// CacheAs converts a cached value to T. Values restored from a persisted snapshot
// arrive as json.RawMessage and are decoded.
func CacheAs[T any](v any) (T, bool) {
	var zero T
	switch val := v.(type) {
	case T:
		return val, true
	case json.RawMessage:
		var out T
		if err := json.Unmarshal(val, &out); err != nil {
			return zero, false
		}

		return out, true
	default:
		return zero, false
	}
}

// CacheGet reads key from c as T.
func CacheGet[T any](c Cache, key string) (T, bool) {
	v, ok := c.Get(key)
	if !ok {
		var zero T

		return zero, false
	}

	return CacheAs[T](v)
}

// CacheLoad is GetOrLoad for a typed loader. A loader error is reported as a miss.
func CacheLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, loader func(ctx context.Context) (T, error)) (T, bool) {
	v, ok := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if !ok {
		var zero T

		return zero, false
	}

	return CacheAs[T](v)
}
