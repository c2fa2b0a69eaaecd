// Package persistence selects the storage driver behind the domain's TransactionManager.
package persistence

import (
	"context"
	"log/slog"

	"registry/config"
	"registry/internal/domain/constants"
	"registry/internal/domain/lifecycle"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/memory"
	"registry/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the TransactionManager, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTransactionManager builds the TransactionManager of the configured storage driver.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	driver := constants.StorageDriverMemory
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, state is lost on restart")

		return memory.NewTransactionManager(), nil

	case constants.StorageDriverPostgres:
		if params.Config.Storage.AutoMigrate {
			params.Lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return migrateUp(ctx, params.Config.Storage.MigrationURL, params.Logger)
				},
			})
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return postgres.NewTransactionManager(db), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}

func migrateUp(ctx context.Context, url string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	migrator, err := postgres.NewMigrator(url, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.UpContext(ctx)
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTransactionManager),
)
