package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/pkg/errors"
	"go.uber.org/zap"
)

type landmarkRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLandmarkRepository(db *DB) repository.LandmarkRepository {
	return &landmarkRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// landmarkRow - строка landmarks с агрегированными вариациями названия
type landmarkRow struct {
	domain.Landmark
	Variations pq.StringArray `db:"variations"`
}

func (r landmarkRow) toDomain() *domain.Landmark {
	l := r.Landmark
	l.Variations = []string(r.Variations)
	if l.Variations == nil {
		l.Variations = []string{}
	}
	return &l
}

const landmarkSelect = `
	SELECT
		l.id, l.name, l.tag, l.type, l.lat, l.lng,
		l.visit_duration_min, l.peak_hours, l.off_peak_hours, l.moment_count,
		COALESCE(
			array_agg(v.variation ORDER BY v.variation) FILTER (WHERE v.variation IS NOT NULL),
			'{}'
		) AS variations
	FROM landmarks l
	LEFT JOIN landmark_variations v ON v.landmark_id = l.id
`

func (r *landmarkRepository) List(ctx context.Context, landmarkType domain.LandmarkType) ([]*domain.Landmark, error) {
	query := landmarkSelect + `
	WHERE ($1 = '' OR l.type = $1)
	GROUP BY l.id
	ORDER BY l.position, l.id
	`

	var rows []landmarkRow
	if err := r.db.SelectContext(ctx, &rows, query, string(landmarkType)); err != nil {
		r.logger.Error("Failed to list landmarks",
			zap.String("type", string(landmarkType)),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	landmarks := make([]*domain.Landmark, 0, len(rows))
	for _, row := range rows {
		landmarks = append(landmarks, row.toDomain())
	}
	return landmarks, nil
}

func (r *landmarkRepository) GetByID(ctx context.Context, id string) (*domain.Landmark, error) {
	query := landmarkSelect + `
	WHERE l.id = $1
	GROUP BY l.id
	`

	var row landmarkRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrLandmarkNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get landmark by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return row.toDomain(), nil
}
