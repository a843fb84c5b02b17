package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/loopi-routing/migrations"
	"go.uber.org/zap"
)

// Migrate применяет все ещё не применённые миграции
func Migrate(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	return runMigrations(ctx, db, logger, func(m *migrate.Migrate) error { return m.Up() })
}

// Rollback откатывает все миграции, удаляя таблицы сервиса
func Rollback(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	return runMigrations(ctx, db, logger, func(m *migrate.Migrate) error { return m.Down() })
}

func runMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger, step func(*migrate.Migrate) error) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	// Отдельное соединение: Close мигратора не должен закрывать общий пул
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection for migrations: %w", err)
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("failed to init migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err := step(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) || errors.Is(err, migrate.ErrNilVersion) {
			logger.Debug("Schema is up to date")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info("Schema migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}
