package memory

import (
	"context"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/pkg/errors"
)

type landmarkRepository struct {
	landmarks []domain.Landmark
	byID      map[string]int
}

// NewLandmarkRepository возвращает справочник на встроенных данных
func NewLandmarkRepository() repository.LandmarkRepository {
	return NewLandmarkRepositoryFrom(dubaiLandmarks)
}

// NewLandmarkRepositoryFrom возвращает справочник на переданных данных.
// Порядок сохраняется, при повторе ID побеждает первая запись.
func NewLandmarkRepositoryFrom(landmarks []domain.Landmark) repository.LandmarkRepository {
	r := &landmarkRepository{
		landmarks: make([]domain.Landmark, 0, len(landmarks)),
		byID:      make(map[string]int, len(landmarks)),
	}
	for _, l := range landmarks {
		if _, ok := r.byID[l.ID]; ok {
			continue
		}
		r.byID[l.ID] = len(r.landmarks)
		r.landmarks = append(r.landmarks, l)
	}
	return r
}

func (r *landmarkRepository) List(ctx context.Context, landmarkType domain.LandmarkType) ([]*domain.Landmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*domain.Landmark, 0, len(r.landmarks))
	for i := range r.landmarks {
		if landmarkType != "" && r.landmarks[i].Type != landmarkType {
			continue
		}
		result = append(result, clone(&r.landmarks[i]))
	}
	return result, nil
}

func (r *landmarkRepository) GetByID(ctx context.Context, id string) (*domain.Landmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrLandmarkNotFound
	}
	return clone(&r.landmarks[i]), nil
}

// clone - вызывающий код может менять результат, справочник остаётся прежним
func clone(l *domain.Landmark) *domain.Landmark {
	c := *l
	c.Variations = append([]string(nil), l.Variations...)
	return &c
}
