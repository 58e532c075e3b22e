package taskqueue

import (
	"context"
	"log/slog"
	"sync"

	"booknow/config"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"

	"go.uber.org/fx"
)

// RegistryParams collects every task handler from the fx graph.
type RegistryParams struct {
	fx.In

	Handlers []service.TaskHandler `group:"taskHandlers"`
}

func ProvideRegistry(params RegistryParams) (*Registry, error) {
	return NewRegistry(params.Handlers...)
}

// ExecutorParams defines the dependencies of the executor
type ExecutorParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Tasks    repository.TaskRepository
	Registry *Registry
}

func ProvideExecutor(params ExecutorParams) *Executor {
	cfg := params.Config.Tasks

	return NewExecutor(params.Tasks, params.Registry, RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.BaseDelay,
		MaxDelay:    cfg.MaxDelay,
	}, params.Logger)
}

// DispatcherParams defines the dependencies of the dispatcher
type DispatcherParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Tasks     repository.TaskRepository
	Executor  *Executor
	Publisher service.TaskPublisher
	Signal    *Signal
}

// ProvideDispatcher builds the dispatcher and runs its poll loop for the lifetime of the app.
func ProvideDispatcher(params DispatcherParams) *Dispatcher {
	cfg := params.Config.Tasks
	d := NewDispatcher(params.Tasks, params.Executor, params.Publisher, DispatcherConfig{
		Mode:         cfg.Mode,
		PollInterval: cfg.PollInterval,
		BatchSize:    cfg.BatchSize,
		Signal:       params.Signal,
	}, params.Logger)

	runCtx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			params.Logger.Info("Starting task dispatcher",
				slog.String("mode", cfg.Mode),
				slog.Duration("pollInterval", cfg.PollInterval))

			wg.Add(1)
			go func() {
				defer wg.Done()
				d.Run(runCtx)
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			wg.Wait()

			return nil
		},
	})

	return d
}

// AsWaker exposes the dispatcher's signal to use cases that enqueue tasks.
func AsWaker(s *Signal) service.TaskWaker {
	return s
}

type noopWaker struct{}

func (noopWaker) Wake() {}

// NewNoopWaker is used by processes that execute tasks but do not poll the outbox.
func NewNoopWaker() service.TaskWaker {
	return noopWaker{}
}
