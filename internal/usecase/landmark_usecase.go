package usecase

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/pkg/errors"
	"github.com/loopi-routing/internal/pkg/utils"
	"github.com/loopi-routing/internal/usecase/dto"
)

// LandmarkUseCase - справочник достопримечательностей
type LandmarkUseCase struct {
	landmarkRepo  repository.LandmarkRepository
	logger        *zap.Logger
	defaultRadius float64 // meters
}

// NewLandmarkUseCase - создание нового LandmarkUseCase
func NewLandmarkUseCase(
	landmarkRepo repository.LandmarkRepository,
	logger *zap.Logger,
	defaultRadius float64,
) *LandmarkUseCase {
	if defaultRadius <= 0 {
		defaultRadius = domain.DefaultClusterRadiusM
	}
	return &LandmarkUseCase{
		landmarkRepo:  landmarkRepo,
		logger:        logger,
		defaultRadius: defaultRadius,
	}
}

// List - все достопримечательности или только заданного типа
func (uc *LandmarkUseCase) List(ctx context.Context, landmarkType string) (*dto.LandmarksResponse, error) {
	if landmarkType != "" && !domain.LandmarkType(landmarkType).IsValid() {
		return nil, errors.ErrInvalidLandmarkType
	}

	landmarks, err := uc.landmarkRepo.List(ctx, domain.LandmarkType(landmarkType))
	if err != nil {
		uc.logger.Error("Failed to list landmarks", zap.Error(err))
		return nil, err
	}

	return &dto.LandmarksResponse{
		Landmarks: landmarks,
		Total:     len(landmarks),
	}, nil
}

// Get - достопримечательность по ID
func (uc *LandmarkUseCase) Get(ctx context.Context, id string) (*domain.Landmark, error) {
	return uc.landmarkRepo.GetByID(ctx, id)
}

// DiscoverClusters - достопримечательности нужного типа в радиусе от точки,
// куда пользователь бросил иконку. Ближайшие первыми.
func (uc *LandmarkUseCase) DiscoverClusters(ctx context.Context, req dto.ClusterRequest) (*dto.ClusterResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !domain.LandmarkType(req.Type).IsValid() {
		return nil, errors.ErrInvalidLandmarkType
	}

	radius := req.RadiusM
	if radius == 0 {
		radius = uc.defaultRadius
	}
	if !utils.ValidateRadius(radius) {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"radius_m": radius,
		})
	}

	landmarks, err := uc.landmarkRepo.List(ctx, domain.LandmarkType(req.Type))
	if err != nil {
		uc.logger.Error("Failed to list landmarks for clusters", zap.Error(err))
		return nil, err
	}

	clusters := make([]domain.LandmarkCluster, 0, len(landmarks))
	for _, l := range landmarks {
		distance := utils.HaversineDistance(req.Lat, req.Lng, l.Lat, l.Lng) * 1000 // to meters
		if distance >= radius {
			continue
		}
		clusters = append(clusters, domain.LandmarkCluster{Landmark: *l, DistanceM: distance})
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].DistanceM < clusters[j].DistanceM
	})

	return &dto.ClusterResponse{
		Clusters: clusters,
		Total:    len(clusters),
		RadiusM:  radius,
	}, nil
}

// ExtractFromText - достопримечательности, упомянутые в тексте.
// Порядок справочника, без повторов.
func (uc *LandmarkUseCase) ExtractFromText(ctx context.Context, text string) (*dto.LandmarksResponse, error) {
	landmarks, err := uc.landmarkRepo.List(ctx, "")
	if err != nil {
		uc.logger.Error("Failed to list landmarks for extraction", zap.Error(err))
		return nil, err
	}

	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	found := make([]*domain.Landmark, 0)
	for _, l := range landmarks {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		if l.MentionedIn(lower) {
			seen[l.ID] = struct{}{}
			found = append(found, l)
		}
	}

	uc.logger.Debug("Landmarks extracted from text",
		zap.Int("text_len", len(text)),
		zap.Int("found", len(found)))

	return &dto.LandmarksResponse{
		Landmarks: found,
		Total:     len(found),
	}, nil
}
