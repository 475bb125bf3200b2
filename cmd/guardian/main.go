package main

import (
	"context"
	"log/slog"
	"os"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/api"
	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router/handler"
	"guardian/internal/domain/service"
	"guardian/internal/infra/auth"
	"guardian/internal/infra/cache"
	"guardian/internal/infra/debounce"
	"guardian/internal/infra/escalation"
	"guardian/internal/infra/feed"
	"guardian/internal/infra/gateway"
	"guardian/internal/infra/housekeeping"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/metrics"
	"guardian/internal/infra/notification"
	"guardian/internal/infra/persistence/postgres"
	"guardian/internal/infra/platform"
	"guardian/internal/infra/web"
	"guardian/internal/usecase"
	"guardian/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type startDispatcherParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Dispatcher usecase.AlertDispatcher
	Scheduler  *housekeeping.Scheduler
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startDispatcher,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.PipelineMetrics)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceTokenRepository,
			postgres.NewSubjectRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			web.NewStore,
			gateway.New,
			platform.Probe,
			notification.New,
			feed.New,
			debounce.New,
			escalation.New,
			housekeeping.New,
			auth.NewJWTVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeliveryService,
			impl.NewTokenRegistryService,
			impl.NewDispatcherService,
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
			handler.NewDeviceTokenHandler,
			handler.NewWebSessionHandler,
			handler.NewAlertPushHandler,
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

// startDispatcher subscribes to the alert feed once every dependency is up.
// The scheduler is requested so its sweep job is registered.
func startDispatcher(params startDispatcherParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.Dispatcher.Start(ctx, params.Config.Pipeline.PrincipalID)
		},
		OnStop: func(context.Context) error {
			params.Dispatcher.Stop()

			return nil
		},
	})
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
