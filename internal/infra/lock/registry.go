// Package lock provides a process-local keyed in-flight guard.
// It prevents redundant work inside one process; it does not coordinate across processes.
package lock

import (
	"sync"

	"booknow/internal/domain/service"
)

// Registry is a set of held keys.
type Registry struct {
	mu   sync.Mutex
	held map[string]struct{}
}

var _ service.LockRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{held: make(map[string]struct{})}
}

// NewLockRegistry is the fx provider.
func NewLockRegistry() service.LockRegistry {
	return NewRegistry()
}

// TryAcquire marks key held. The returned release is idempotent.
func (r *Registry) TryAcquire(key string) (func(), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.held[key]; busy {
		return func() {}, false
	}
	r.held[key] = struct{}{}

	var once sync.Once

	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.held, key)
			r.mu.Unlock()
		})
	}, true
}

// Held reports whether key is currently held.
func (r *Registry) Held(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.held[key]

	return ok
}
