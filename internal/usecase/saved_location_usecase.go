package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/pkg/errors"
	"github.com/loopi-routing/internal/pkg/utils"
	"github.com/loopi-routing/internal/usecase/dto"
)

// SavedLocationUseCase - избранные места пользователя.
// Каждое изменение читает коллекцию, меняет её в памяти и пишет целиком.
type SavedLocationUseCase struct {
	savedRepo repository.SavedLocationRepository
	logger    *zap.Logger
}

// NewSavedLocationUseCase - создание нового SavedLocationUseCase
func NewSavedLocationUseCase(
	savedRepo repository.SavedLocationRepository,
	logger *zap.Logger,
) *SavedLocationUseCase {
	return &SavedLocationUseCase{
		savedRepo: savedRepo,
		logger:    logger,
	}
}

// List - коллекция владельца
func (uc *SavedLocationUseCase) List(ctx context.Context, ownerID string) (*dto.SavedLocationsResponse, error) {
	locations, err := uc.savedRepo.List(ctx, ownerID)
	if err != nil {
		uc.logger.Error("Failed to list saved locations", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return savedResponse(ownerID, locations), nil
}

// Replace - записать коллекцию целиком
func (uc *SavedLocationUseCase) Replace(
	ctx context.Context,
	ownerID string,
	req dto.ReplaceSavedLocationsRequest,
) (*dto.SavedLocationsResponse, error) {
	locations := make([]domain.SavedLocation, 0, len(req.Locations))
	seen := make(map[string]struct{}, len(req.Locations))
	for i, in := range req.Locations {
		if !utils.ValidateCoordinates(in.Lat, in.Lng) {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"index": i,
			})
		}
		if _, ok := seen[in.ID]; ok {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"index":  i,
				"reason": "duplicate id",
			})
		}
		seen[in.ID] = struct{}{}
		locations = append(locations, in.ToDomain())
	}

	if err := uc.savedRepo.ReplaceAll(ctx, ownerID, locations); err != nil {
		uc.logger.Error("Failed to replace saved locations", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return savedResponse(ownerID, locations), nil
}

// Add - добавить место в конец коллекции; повторное добавление ничего не меняет
func (uc *SavedLocationUseCase) Add(
	ctx context.Context,
	ownerID string,
	in dto.SavedLocationInput,
) (*dto.SavedLocationsResponse, error) {
	if !utils.ValidateCoordinates(in.Lat, in.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	locations, err := uc.savedRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, loc := range locations {
		if loc.ID == in.ID {
			return savedResponse(ownerID, locations), nil
		}
	}

	locations = append(locations, in.ToDomain())
	if err := uc.savedRepo.ReplaceAll(ctx, ownerID, locations); err != nil {
		uc.logger.Error("Failed to add saved location",
			zap.String("owner_id", ownerID),
			zap.String("id", in.ID),
			zap.Error(err))
		return nil, err
	}
	return savedResponse(ownerID, locations), nil
}

// Remove - убрать место из коллекции; отсутствующий ID не ошибка
func (uc *SavedLocationUseCase) Remove(ctx context.Context, ownerID, id string) (*dto.SavedLocationsResponse, error) {
	locations, err := uc.savedRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	kept := make([]domain.SavedLocation, 0, len(locations))
	for _, loc := range locations {
		if loc.ID != id {
			kept = append(kept, loc)
		}
	}
	if len(kept) == len(locations) {
		return savedResponse(ownerID, locations), nil
	}

	if err := uc.savedRepo.ReplaceAll(ctx, ownerID, kept); err != nil {
		uc.logger.Error("Failed to remove saved location",
			zap.String("owner_id", ownerID),
			zap.String("id", id),
			zap.Error(err))
		return nil, err
	}
	return savedResponse(ownerID, kept), nil
}

func savedResponse(ownerID string, locations []domain.SavedLocation) *dto.SavedLocationsResponse {
	if locations == nil {
		locations = []domain.SavedLocation{}
	}
	return &dto.SavedLocationsResponse{
		OwnerID:   ownerID,
		Locations: locations,
		Total:     len(locations),
	}
}
