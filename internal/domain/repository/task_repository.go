package repository

import (
	"context"
	"errors"
	"time"

	"booknow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no outbox row matches.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository is the durable outbox of background effects.
type TaskRepository interface {
	// Enqueue stores a pending task. Inside a transaction it commits with the caller's writes.
	Enqueue(ctx context.Context, task *entity.Task) error

	// ClaimDue marks up to limit due pending tasks as processing and returns them.
	// Concurrent claimers never receive the same task.
	ClaimDue(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]*entity.Task, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	MarkDone(ctx context.Context, id uuid.UUID) error

	// Reschedule records a failed attempt and makes the task due again at runAt.
	Reschedule(ctx context.Context, id uuid.UUID, attempts int, runAt time.Time, lastErr string) error

	// MarkDead records the final failed attempt; the task is never run again.
	MarkDead(ctx context.Context, id uuid.UUID, attempts int, lastErr string) error
}
