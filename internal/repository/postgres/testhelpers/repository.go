package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewLandmarkRepositoryForTest creates a landmark repository with test database and logger
func NewLandmarkRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LandmarkRepository {
	return postgres.NewLandmarkRepository(NewDBForTest(db, logger))
}

// NewSavedLocationRepositoryForTest creates a saved location repository with test database and logger
func NewSavedLocationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.SavedLocationRepository {
	return postgres.NewSavedLocationRepository(NewDBForTest(db, logger))
}
