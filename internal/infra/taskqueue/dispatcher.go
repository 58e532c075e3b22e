package taskqueue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booknow/internal/domain/constants"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"
	"booknow/internal/errors"
	"booknow/internal/infra/resilience"
)

const defaultLease = 5 * time.Minute

// Dispatcher polls the outbox. In inline mode it executes tasks itself;
// in pubsub mode it relays them to the task worker, which executes them.
type Dispatcher struct {
	tasks     repository.TaskRepository
	executor  *Executor
	publisher service.TaskPublisher
	mode      string
	interval  time.Duration
	batchSize int
	lease     time.Duration
	policy    RetryPolicy
	logger    *slog.Logger
	now       func() time.Time
	signal    *Signal
}

// DispatcherConfig sizes the polling loop.
type DispatcherConfig struct {
	Mode         string
	PollInterval time.Duration
	BatchSize    int
	Lease        time.Duration
	// Signal is shared with enqueuers; nil gives the dispatcher a private one.
	Signal *Signal
}

// Signal carries wake-ups from enqueuers to the dispatcher. Wake-ups coalesce.
type Signal struct {
	ch chan struct{}
}

func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Wake never blocks.
func (s *Signal) Wake() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func NewDispatcher(
	tasks repository.TaskRepository,
	executor *Executor,
	publisher service.TaskPublisher,
	cfg DispatcherConfig,
	logger *slog.Logger,
) *Dispatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.Lease <= 0 {
		cfg.Lease = defaultLease
	}
	if cfg.Signal == nil {
		cfg.Signal = NewSignal()
	}

	return &Dispatcher{
		tasks:     tasks,
		executor:  executor,
		publisher: publisher,
		mode:      cfg.Mode,
		interval:  cfg.PollInterval,
		batchSize: cfg.BatchSize,
		lease:     cfg.Lease,
		policy:    executor.policy,
		logger:    logger,
		now:       time.Now,
		signal:    cfg.Signal,
	}
}

// Wake triggers a dispatch pass without waiting for the next tick.
func (d *Dispatcher) Wake() {
	d.signal.Wake()
}

// Run polls until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		for {
			n, err := d.DispatchDue(ctx)
			if err != nil {
				d.logger.ErrorContext(ctx, "Task dispatch pass failed", slog.Any("error", err))
			}
			// A full batch means more work is likely due.
			if err != nil || n < d.batchSize {
				break
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-d.signal.ch:
		}
	}
}

// DispatchDue runs one claim-and-dispatch pass and returns the number of claimed tasks.
func (d *Dispatcher) DispatchDue(ctx context.Context) (int, error) {
	claimed, err := d.tasks.ClaimDue(ctx, d.now(), d.batchSize, d.lease)
	if err != nil {
		return 0, errors.Wrap(err, "failed to claim due tasks")
	}

	if d.mode == constants.TaskModePubSub {
		for _, task := range claimed {
			d.relay(ctx, task)
		}

		return len(claimed), nil
	}

	var wg sync.WaitGroup
	for _, task := range claimed {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Failures are already recorded on the task row.
			_ = d.executor.Execute(ctx, task)
		}()
	}
	wg.Wait()

	return len(claimed), nil
}

// relay publishes the task; the worker marks it done. A failed publish counts as a failed attempt.
func (d *Dispatcher) relay(ctx context.Context, task *entity.Task) {
	err := d.publisher.PublishTask(ctx, &service.TaskEvent{
		RequestID: task.ID.String(),
		TaskID:    task.ID.String(),
		TaskType:  string(task.Type),
	})
	if err == nil {
		return
	}

	attempts := task.Attempts + 1
	logger := d.logger.With(slog.String("task_id", task.ID.String()), slog.Int("attempts", attempts))
	if attempts >= d.policy.MaxAttempts {
		logger.ErrorContext(ctx, "Task relay failed permanently", slog.Any("error", err), resilience.CategoryExternalService.Attr())
		if deadErr := d.tasks.MarkDead(ctx, task.ID, attempts, err.Error()); deadErr != nil {
			logger.ErrorContext(ctx, "Failed to mark task dead", slog.Any("error", deadErr))
		}

		return
	}

	delay := resilience.Backoff(d.policy.BaseDelay, d.policy.MaxDelay, attempts-1)
	logger.WarnContext(ctx, "Task relay failed, rescheduling", slog.Duration("delay", delay), slog.Any("error", err),
		resilience.CategoryExternalService.Attr())
	if rErr := d.tasks.Reschedule(ctx, task.ID, attempts, d.now().Add(delay), err.Error()); rErr != nil {
		logger.ErrorContext(ctx, "Failed to reschedule task", slog.Any("error", rErr))
	}
}
