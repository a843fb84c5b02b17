package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/pkg/errors"
	"go.uber.org/zap"
)

type savedLocationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSavedLocationRepository(db *DB) repository.SavedLocationRepository {
	return &savedLocationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type savedLocationRow struct {
	domain.SavedLocation
	Tags pq.StringArray `db:"tags"`
}

func (r *savedLocationRepository) List(ctx context.Context, ownerID string) ([]domain.SavedLocation, error) {
	query := `
		SELECT id, name, description, image, type, tags, lat, lng, city, country
		FROM saved_locations
		WHERE owner_id = $1
		ORDER BY position
	`

	var rows []savedLocationRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		r.logger.Error("Failed to list saved locations",
			zap.String("owner_id", ownerID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	locations := make([]domain.SavedLocation, 0, len(rows))
	for _, row := range rows {
		loc := row.SavedLocation
		loc.Tags = []string(row.Tags)
		if loc.Tags == nil {
			loc.Tags = []string{}
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// ReplaceAll удаляет коллекцию владельца и вставляет новую в одной транзакции
func (r *savedLocationRepository) ReplaceAll(ctx context.Context, ownerID string, locations []domain.SavedLocation) error {
	if err := r.replaceAll(ctx, ownerID, locations); err != nil {
		r.logger.Error("Failed to replace saved locations",
			zap.String("owner_id", ownerID),
			zap.Int("count", len(locations)),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	r.logger.Debug("Saved locations replaced",
		zap.String("owner_id", ownerID),
		zap.Int("count", len(locations)))
	return nil
}

func (r *savedLocationRepository) replaceAll(ctx context.Context, ownerID string, locations []domain.SavedLocation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_locations WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	insert := `
		INSERT INTO saved_locations (
			owner_id, id, position, name, description, image, type, tags, lat, lng, city, country
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	for i, loc := range locations {
		tags := loc.Tags
		if tags == nil {
			tags = []string{}
		}
		_, err := tx.ExecContext(ctx, insert,
			ownerID, loc.ID, i, loc.Name, loc.Description, loc.Image, loc.Type,
			pq.Array(tags), loc.Lat, loc.Lng, loc.City, loc.Country,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
