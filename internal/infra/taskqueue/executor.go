package taskqueue

import (
	"context"
	"log/slog"
	"time"

	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"
	"booknow/internal/errors"
	"booknow/internal/infra/resilience"
)

// RetryPolicy bounds task attempts.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Executor runs one claimed task and records its outcome in the outbox.
type Executor struct {
	tasks    repository.TaskRepository
	registry *Registry
	policy   RetryPolicy
	logger   *slog.Logger
	now      func() time.Time
}

func NewExecutor(tasks repository.TaskRepository, registry *Registry, policy RetryPolicy, logger *slog.Logger) *Executor {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}

	return &Executor{
		tasks:    tasks,
		registry: registry,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute runs the task's handler. The returned error is the handler's, after the outcome was stored.
func (e *Executor) Execute(ctx context.Context, task *entity.Task) error {
	logger := e.logger.With(
		slog.String("task_id", task.ID.String()),
		slog.String("task_type", string(task.Type)),
	)

	handler, ok := e.registry.Lookup(task.Type)
	if !ok {
		err := errors.Errorf("no handler for task type %s", task.Type)
		logger.ErrorContext(ctx, "Dropping task", slog.Any("error", err), resilience.CategorySystem.Attr())

		if deadErr := e.markDead(ctx, task, task.Attempts+1, err); deadErr != nil {
			return deadErr
		}

		return err
	}

	handleErr := handler.Handle(ctx, task)
	if handleErr == nil {
		if err := e.tasks.MarkDone(ctx, task.ID); err != nil {
			return errors.Wrap(err, "failed to mark task done")
		}
		logger.DebugContext(ctx, "Task done")

		return nil
	}

	attempts := task.Attempts + 1
	if errors.Is(handleErr, service.ErrTaskPermanent) || attempts >= e.policy.MaxAttempts {
		logger.ErrorContext(ctx, "Task failed permanently",
			slog.Int("attempts", attempts),
			slog.Any("error", handleErr))

		if err := e.markDead(ctx, task, attempts, handleErr); err != nil {
			return err
		}

		return handleErr
	}

	delay := resilience.Backoff(e.policy.BaseDelay, e.policy.MaxDelay, attempts-1)
	logger.WarnContext(ctx, "Task failed, rescheduling",
		slog.Int("attempts", attempts),
		slog.Duration("delay", delay),
		slog.Any("error", handleErr))

	if err := e.tasks.Reschedule(ctx, task.ID, attempts, e.now().Add(delay), handleErr.Error()); err != nil {
		return errors.Wrap(err, "failed to reschedule task")
	}

	return handleErr
}

func (e *Executor) markDead(ctx context.Context, task *entity.Task, attempts int, cause error) error {
	if err := e.tasks.MarkDead(ctx, task.ID, attempts, cause.Error()); err != nil {
		return errors.Wrap(err, "failed to mark task dead")
	}

	return nil
}
