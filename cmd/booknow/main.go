package main

import (
	"context"
	"log/slog"
	"os"

	"booknow/config"
	"booknow/internal/delivery"
	"booknow/internal/delivery/api"
	"booknow/internal/delivery/api/middleware"
	"booknow/internal/delivery/api/router/handler"
	"booknow/internal/infra/auth"
	"booknow/internal/infra/cache"
	"booknow/internal/infra/lock"
	logs "booknow/internal/infra/log"
	"booknow/internal/infra/notification"
	"booknow/internal/infra/persistence/postgres"
	"booknow/internal/infra/pubsub"
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
	// Forces the dispatcher into the graph so its poll loop starts.
	Dispatcher *taskqueue.Dispatcher
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectTasks(),
		injectMiddleware(),
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
		resilience.ProvideRetrier,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewCredentialRepository,
			postgres.NewReferralRepository,
			postgres.NewActivityRepository,
			postgres.NewAchievementRepository,
			postgres.NewStatsRepository,
			postgres.NewBusinessRepository,
			postgres.NewFollowRepository,
			postgres.NewTaskRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			notification.NewHTTPEmailSender,
			pubsub.NewTaskPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewReferralService,
			impl.NewStatsService,
			impl.NewBusinessService,
			impl.NewFollowService,
			impl.NewNotificationService,
			impl.NewAchievementService,
		),
	)
}

// injectTasks wires the outbox. The API process polls it and either runs tasks
// inline or relays them to the task worker.
func injectTasks() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTaskHandlers,
			taskqueue.ProvideRegistry,
			taskqueue.ProvideExecutor,
			taskqueue.ProvideDispatcher,
			taskqueue.NewSignal,
			taskqueue.AsWaker,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewReferralHandler,
			handler.NewStatsHandler,
			handler.NewBusinessHandler,
			handler.NewFollowHandler,
			handler.NewDiagnosticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
