package main

import (
	"context"
	"log/slog"
	"os"

	"booknow/config"
	"booknow/internal/delivery"
	"booknow/internal/delivery/worker"
	"booknow/internal/delivery/worker/handler"
	"booknow/internal/infra/cache"
	"booknow/internal/infra/lock"
	logs "booknow/internal/infra/log"
	"booknow/internal/infra/notification"
	"booknow/internal/infra/persistence/postgres"
	"booknow/internal/infra/qrcode"
	"booknow/internal/infra/resilience"
	"booknow/internal/infra/taskqueue"
	"booknow/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The task worker executes outbox tasks relayed through Pub/Sub push. Tasks it
// enqueues are picked up by the API process's dispatcher.
func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectTasks(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		resilience.ProvideErrorLog,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		lock.NewLockRegistry,
		resilience.ProvideBreakerRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewReferralRepository,
			postgres.NewActivityRepository,
			postgres.NewAchievementRepository,
			postgres.NewStatsRepository,
			postgres.NewBusinessRepository,
			postgres.NewTaskRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewQRCodeService,
			notification.NewHTTPEmailSender,
			taskqueue.NewNoopWaker,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReferralService,
			impl.NewStatsService,
			impl.NewBusinessService,
			impl.NewNotificationService,
			impl.NewAchievementService,
		),
	)
}

func injectTasks() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTaskHandlers,
			taskqueue.ProvideRegistry,
			fx.Annotate(
				taskqueue.ProvideExecutor,
				fx.As(new(handler.TaskExecutor)),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
