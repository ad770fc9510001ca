package main

import (
	"context"
	"log/slog"
	"os"

	"gestor/config"
	"gestor/internal/delivery"
	"gestor/internal/delivery/api"
	"gestor/internal/delivery/api/cookie"
	"gestor/internal/delivery/api/middleware"
	"gestor/internal/delivery/api/router/handler"
	"gestor/internal/domain/service"
	"gestor/internal/infra/auth"
	"gestor/internal/infra/auth/gotrue"
	logs "gestor/internal/infra/log"
	"gestor/internal/infra/metrics"
	"gestor/internal/infra/persistence/postgres"
	"gestor/internal/infra/ratelimit"
	"gestor/internal/infra/redis"
	"gestor/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
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
		redis.New,
		fx.Annotate(
			metrics.NewRegistry,
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
		fx.Annotate(
			metrics.NewCollector,
			fx.As(new(service.AuthMetrics)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewRoleRepository,
			postgres.NewPatternRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			gotrue.New,
			auth.NewScryptHasher,
			auth.NewJWTVerifier,
			ratelimit.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialResolver,
			impl.NewProfileReconciler,
			impl.NewSessionService,
			impl.NewPatternService,
			impl.NewRegistrationService,
			impl.NewPasswordService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			cookie.NewPolicy,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPatternHandler,
			handler.NewAccountHandler,
			handler.NewHealthHandler,
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
				os.Exit(1)
			}
		}()
	}
}
