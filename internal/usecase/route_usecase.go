package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/pkg/errors"
	"github.com/loopi-routing/internal/pkg/utils"
	"github.com/loopi-routing/internal/sequencer"
	"github.com/loopi-routing/internal/usecase/dto"
)

// RouteUseCase - упорядочивание точек и построение маршрута по дорогам
type RouteUseCase struct {
	routingRepo repository.RoutingRepository
	cacheRepo   repository.CacheRepository
	guard       *RouteGuard
	logger      *zap.Logger
	cacheTTL    time.Duration
	maxParallel int
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(
	routingRepo repository.RoutingRepository,
	cacheRepo repository.CacheRepository,
	guard *RouteGuard,
	logger *zap.Logger,
	cacheTTL time.Duration,
	maxParallel int,
) *RouteUseCase {
	if guard == nil {
		guard = NewRouteGuard()
	}
	if maxParallel <= 0 {
		maxParallel = 1
	}
	return &RouteUseCase{
		routingRepo: routingRepo,
		cacheRepo:   cacheRepo,
		guard:       guard,
		logger:      logger,
		cacheTTL:    cacheTTL,
		maxParallel: maxParallel,
	}
}

// Sequence - порядок посещения и оценка времени без обращения к OSRM
func (uc *RouteUseCase) Sequence(ctx context.Context, req dto.SequenceRequest) (*dto.SequenceResponse, error) {
	mode, points, err := prepare(req.Mode, req.Points)
	if err != nil {
		return nil, err
	}

	stops := sequencer.Order(points, mode)
	steps := sequencer.Sequence(points, mode)
	km, minutes := sequencer.Totals(steps)

	return &dto.SequenceResponse{
		Mode:             mode,
		Stops:            stops,
		Steps:            steps,
		TotalDistanceKm:  km,
		TotalDurationMin: minutes,
	}, nil
}

// Plan - порядок посещения плюс геометрия по дорогам в этом порядке.
// Любая ошибка маршрутизации заменяется прямыми отрезками.
// Если задан session_id, более новый Plan той же сессии отменяет этот,
// и его результат возвращается как STALE_ROUTE.
func (uc *RouteUseCase) Plan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	seq, err := uc.Sequence(ctx, dto.SequenceRequest{Mode: req.Mode, Points: req.Points})
	if err != nil {
		return nil, err
	}

	resp := &dto.PlanResponse{
		SessionID:        req.SessionID,
		Mode:             seq.Mode,
		Stops:            seq.Stops,
		Steps:            seq.Steps,
		TotalDistanceKm:  seq.TotalDistanceKm,
		TotalDurationMin: seq.TotalDurationMin,
	}
	if len(seq.Stops) < 2 {
		return resp, nil
	}

	if req.SessionID == "" {
		resp.Road = uc.fetchRoad(ctx, seq.Mode, seq.Stops)
		return resp, nil
	}

	fetchCtx, gen := uc.guard.Begin(ctx, req.SessionID)
	defer uc.guard.Done(req.SessionID, gen)

	road := uc.fetchRoad(fetchCtx, seq.Mode, seq.Stops)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !uc.guard.Commit(req.SessionID, gen) {
		uc.logger.Debug("Route superseded by newer request",
			zap.String("session_id", req.SessionID),
			zap.Uint64("generation", gen))
		return nil, errors.ErrStaleRoute.WithDetails(map[string]interface{}{
			"session_id": req.SessionID,
			"generation": gen,
		})
	}

	resp.Generation = gen
	resp.Road = road
	return resp, nil
}

// PlanSegments - маршруты по дорогам для каждого отрезка отдельно.
// Отрезки обрабатываются параллельно, не более maxParallel одновременно;
// каждый отрезок откатывается на прямую линию независимо от других.
func (uc *RouteUseCase) PlanSegments(ctx context.Context, req dto.SegmentsRequest) (*dto.SegmentsResponse, error) {
	defaultMode, ok := domain.ParseTravelMode(req.Mode)
	if !ok {
		return nil, errors.ErrInvalidTravelMode
	}

	segments := make([]domain.Segment, len(req.Segments))
	for i, s := range req.Segments {
		mode := defaultMode
		if s.Mode != "" {
			if mode, ok = domain.ParseTravelMode(s.Mode); !ok {
				return nil, errors.ErrInvalidTravelMode.WithDetails(map[string]interface{}{
					"segment_index": i,
				})
			}
		}
		seg := domain.Segment{From: s.From.ToDomain(), To: s.To.ToDomain(), Mode: mode}
		if !utils.ValidateCoordinates(seg.From.Lat, seg.From.Lng) || !utils.ValidateCoordinates(seg.To.Lat, seg.To.Lng) {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"segment_index": i,
			})
		}
		segments[i] = seg
	}

	results := make([]dto.SegmentRoute, len(segments))
	sem := make(chan struct{}, uc.maxParallel)
	var wg sync.WaitGroup

	for i, seg := range segments {
		wg.Add(1)
		go func(i int, seg domain.Segment) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = dto.SegmentRoute{From: seg.From, To: seg.To, Mode: seg.Mode,
					Road: domain.NewStraightLineRoute([]domain.Point{seg.From, seg.To})}
				return
			}

			results[i] = dto.SegmentRoute{
				From: seg.From,
				To:   seg.To,
				Mode: seg.Mode,
				Road: uc.fetchRoad(ctx, seg.Mode, []domain.Point{seg.From, seg.To}),
			}
		}(i, seg)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fallbacks := 0
	for _, r := range results {
		if r.Road.IsFallback() {
			fallbacks++
		}
	}

	return &dto.SegmentsResponse{
		Segments:  results,
		Fallbacks: fallbacks,
	}, nil
}

// fetchRoad - маршрут из кеша или OSRM; при ошибке прямые отрезки.
// В кеш попадают только маршруты OSRM.
func (uc *RouteUseCase) fetchRoad(ctx context.Context, mode domain.TravelMode, stops []domain.Point) *domain.RoadRoute {
	cacheKey := roadCacheKey(mode, stops)

	cached, err := uc.cacheRepo.GetRoadRoute(ctx, cacheKey)
	if err != nil {
		uc.logger.Warn("Failed to read road route from cache", zap.String("key", cacheKey), zap.Error(err))
	} else if cached != nil {
		return cached
	}

	route, err := uc.routingRepo.GetRoute(ctx, mode, stops)
	if err != nil {
		if stderrors.Is(err, context.Canceled) {
			// запрос отменён более новым Plan той же сессии или клиентом
			uc.logger.Debug("Road routing cancelled", zap.Int("stops", len(stops)))
			return domain.NewStraightLineRoute(stops)
		}
		uc.logger.Warn("Road routing failed, using straight line",
			zap.String("mode", string(mode)),
			zap.Int("stops", len(stops)),
			zap.Error(err))
		return domain.NewStraightLineRoute(stops)
	}

	if err := uc.cacheRepo.SetRoadRoute(ctx, cacheKey, route, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache road route", zap.String("key", cacheKey), zap.Error(err))
	}
	return route
}

// prepare разбирает режим и проверяет точки
func prepare(rawMode string, in []dto.PointInput) (domain.TravelMode, []domain.Point, error) {
	mode, ok := domain.ParseTravelMode(rawMode)
	if !ok {
		return "", nil, errors.ErrInvalidTravelMode
	}

	points := dto.ToDomainPoints(in)
	if err := sequencer.Validate(points); err != nil {
		return "", nil, toAppError(err)
	}
	return mode, points, nil
}

func toAppError(err error) error {
	var pointErr *sequencer.InvalidPointError
	if !stderrors.As(err, &pointErr) {
		return errors.ErrInvalidRequest
	}

	details := map[string]interface{}{
		"index": pointErr.Index,
		"id":    pointErr.ID,
	}
	if pointErr.Reason == sequencer.ReasonDuplicateID {
		return errors.ErrDuplicatePointID.WithDetails(details)
	}
	return errors.ErrInvalidCoordinates.WithDetails(details)
}

// roadCacheKey - ключ кеша: режим и координаты в порядке посещения
func roadCacheKey(mode domain.TravelMode, stops []domain.Point) string {
	var b strings.Builder
	b.WriteString(mode.Profile())
	for _, p := range stops {
		fmt.Fprintf(&b, ";%.6f,%.6f", p.Lng, p.Lat)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return "route:road:" + hex.EncodeToString(sum[:])
}
