package main

import (
	"context"
	"log/slog"
	"os"

	"registry/config"
	"registry/internal/delivery"
	"registry/internal/domain/constants"
	"registry/internal/delivery/worker"
	logs "registry/internal/infra/log"
	"registry/internal/infra/persistence"
	"registry/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
		fx.Provide(impl.NewActivityService),
		worker.Module,
		fx.Invoke(
			requireSharedStorage,
			startServer,
		),
	).Run()
}

// requireSharedStorage stops the indexer from recording into a process-local
// store that the API server can never read.
func requireSharedStorage(cfg *config.Config) error {
	if cfg.Storage == nil || cfg.Storage.Driver != constants.StorageDriverPostgres {
		return errors.New("indexer requires storage.driver postgres so the API can read recorded events")
	}

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start indexer", slog.Any("error", err))
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					os.Exit(1)
				}
			}
		}()
	}
}
