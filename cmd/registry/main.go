package main

import (
	"context"
	"log/slog"
	"os"

	"registry/config"
	"registry/internal/delivery"
	"registry/internal/delivery/api"
	"registry/internal/infra/auth"
	"registry/internal/infra/cache"
	"registry/internal/infra/chain"
	logs "registry/internal/infra/log"
	"registry/internal/infra/persistence"
	"registry/internal/infra/pubsub"
	"registry/internal/infra/qrcode"
	"registry/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		api.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			chain.NewIdentityService,
			auth.NewJWTService,
			cache.NewChallengeStore,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFactoryService,
			impl.NewUserService,
			impl.NewVendorService,
			impl.NewAccountService,
			impl.NewSessionService,
			impl.NewActivityService,
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
