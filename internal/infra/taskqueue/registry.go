// Package taskqueue drains the background task outbox: it claims due rows,
// runs their handlers or relays them to the task worker, and reschedules failures.
package taskqueue

import (
	"booknow/internal/domain/entity"
	"booknow/internal/domain/service"

	"github.com/pkg/errors"
)

// Registry maps task types to their handlers.
type Registry struct {
	handlers map[entity.TaskType]service.TaskHandler
}

// NewRegistry fails on two handlers for the same task type.
func NewRegistry(handlers ...service.TaskHandler) (*Registry, error) {
	r := &Registry{handlers: make(map[entity.TaskType]service.TaskHandler, len(handlers))}
	for _, h := range handlers {
		if h == nil {
			continue
		}
		if _, dup := r.handlers[h.TaskType()]; dup {
			return nil, errors.Errorf("duplicate handler for task type %s", h.TaskType())
		}
		r.handlers[h.TaskType()] = h
	}

	return r, nil
}

func (r *Registry) Lookup(taskType entity.TaskType) (service.TaskHandler, bool) {
	h, ok := r.handlers[taskType]

	return h, ok
}

// Types returns the registered task types.
func (r *Registry) Types() []entity.TaskType {
	types := make([]entity.TaskType, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}

	return types
}
