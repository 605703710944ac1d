package main

import (
	"context"
	"log/slog"
	"os"

	"padifood/config"
	"padifood/internal/delivery"
	"padifood/internal/delivery/http"
	"padifood/internal/delivery/http/middleware"
	"padifood/internal/delivery/http/router/handler"
	deliverymiddleware "padifood/internal/delivery/middleware"
	"padifood/internal/domain/service"
	"padifood/internal/infra/auth"
	"padifood/internal/infra/auth/github"
	logs "padifood/internal/infra/log"
	"padifood/internal/infra/persistence/postgres"
	"padifood/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewSessionRepository,
			postgres.NewVendorRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewStateGenerator,
			newGitHubProvider,
		),
	)
}

// newGitHubProvider constructs the OAuth provider. Missing credentials disable
// the login feature instead of failing startup; the OAuth routes then answer
// with a configuration error.
func newGitHubProvider(cfg *config.Config, logger *slog.Logger) service.OAuthProvider {
	provider, err := github.New(cfg, logger)
	if err != nil {
		logger.Warn("GitHub OAuth disabled", slog.Any("error", err))

		return nil
	}

	return provider
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewClientService,
			impl.NewVendorService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewClientHandler,
			handler.NewVendorHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
