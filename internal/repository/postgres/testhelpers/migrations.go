package testhelpers

import (
	"context"
	"database/sql"

	"github.com/loopi-routing/internal/repository/postgres"
	"go.uber.org/zap"
)

// ResetSchema откатывает все миграции и применяет их заново:
// таблицы пересоздаются, справочник достопримечательностей заполняется снова.
func ResetSchema(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if err := postgres.Rollback(ctx, db, logger); err != nil {
		return err
	}
	return postgres.Migrate(ctx, db, logger)
}
