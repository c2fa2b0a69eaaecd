package postgres

import (
	"context"
	"embed"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrator applies the embedded schema migrations.
type Migrator struct {
	migrate *migrate.Migrate
	logger  *slog.Logger
}

// NewMigrator opens the embedded migrations against a pgx5:// database URL.
func NewMigrator(databaseURL string, logger *slog.Logger) (*Migrator, error) {
	if databaseURL == "" {
		return nil, errors.New("migration database URL is required")
	}

	files, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", files, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return &Migrator{migrate: m, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up() error {
	if err := m.migrate.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}
	m.logVersion("Migrations applied")

	return nil
}

// UpContext applies pending migrations until ctx is done. On cancellation it
// asks golang-migrate to stop after the running migration and waits for it,
// so Close never races a migration in flight.
func (m *Migrator) UpContext(ctx context.Context) error {
	return runUntilDone(ctx, m.Up, func() {
		select {
		case m.migrate.GracefulStop <- true:
		default:
		}
	})
}

func runUntilDone(ctx context.Context, run func() error, stop func()) error {
	done := make(chan error, 1)
	go func() { done <- run() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		stop()
		runErr := <-done
		if runErr != nil {
			return errors.Wrap(runErr, "migrations interrupted")
		}

		return errors.Wrap(ctx.Err(), "migrations did not finish in time")
	}
}

// Down rolls back every applied migration.
func (m *Migrator) Down() error {
	if err := m.migrate.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to roll back migrations")
	}
	m.logVersion("Migrations rolled back")

	return nil
}

// Close releases the source and database handles.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.migrate.Close()
	if srcErr != nil {
		return errors.Wrap(srcErr, "failed to close migration source")
	}
	if dbErr != nil {
		return errors.Wrap(dbErr, "failed to close migration database")
	}

	return nil
}

func (m *Migrator) logVersion(msg string) {
	if m.logger == nil {
		return
	}

	version, dirty, err := m.migrate.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		m.logger.Warn("Failed to read migration version", slog.Any("error", err))

		return
	}

	m.logger.Info(msg, slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
