package pubsub

import (
	"context"
	"log/slog"

	"booknow/config"
	"booknow/internal/domain/constants"
	"booknow/internal/domain/service"
	"booknow/internal/infra/resilience"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const breakerName = "pubsub"

// noopPublisher is used when no relay is configured; tasks then only run inline.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishTask(ctx context.Context, event *service.TaskEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Task relay disabled, skipping",
		slog.String("task_id", event.TaskID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// breakerPublisher fails fast while the relay is unhealthy and retries transient failures otherwise.
// Redelivery is harmless: the worker skips tasks that are no longer processing.
type breakerPublisher struct {
	next    service.TaskPublisher
	breaker *resilience.CircuitBreaker
	retrier *resilience.Retrier
}

func (p *breakerPublisher) PublishTask(ctx context.Context, event *service.TaskEvent) error {
	return p.retrier.Do(ctx, breakerName+".publish", func(ctx context.Context) error {
		return p.breaker.Execute(ctx, func(ctx context.Context) error {
			return p.next.PublishTask(ctx, event)
		})
	})
}

func (p *breakerPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for TaskPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Breakers *resilience.BreakerRegistry
	Retrier  *resilience.Retrier
}

// NewTaskPublisher creates a TaskPublisher based on configuration
func NewTaskPublisher(params PublisherParams) (service.TaskPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.TaskPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher = &breakerPublisher{
		next:    publisher,
		breaker: params.Breakers.Get(breakerName),
		retrier: params.Retrier,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing TaskPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
