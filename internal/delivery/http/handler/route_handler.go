package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loopi-routing/internal/pkg/errors"
	"github.com/loopi-routing/internal/pkg/utils"
	"github.com/loopi-routing/internal/pkg/validator"
	"github.com/loopi-routing/internal/usecase"
	"github.com/loopi-routing/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик запросов на построение маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Sequence godoc
// @Summary Порядок посещения точек
// @Description Упорядочивает точки жадным методом ближайшего соседа, начиная с первой, и оценивает время каждого перехода (driving 40 км/ч, walking 5 км/ч)
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.SequenceRequest true "Точки и режим передвижения"
// @Success 200 {object} utils.SuccessResponse{data=dto.SequenceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes/sequence [post]
func (h *RouteHandler) Sequence(c *fiber.Ctx) error {
	var req dto.SequenceRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.Sequence(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Steps),
	})
}

// Plan godoc
// @Summary Маршрут по дорогам
// @Description Упорядочивает точки и запрашивает геометрию маршрута у OSRM в этом порядке. При недоступности OSRM возвращается ломаная по прямой (source=straight_line). Запрос с session_id, вытесненный более новым запросом той же сессии, получает 409.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Точки, режим и необязательная сессия"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/routes/plan [post]
func (h *RouteHandler) Plan(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.Plan(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Steps),
	})
}

// PlanSegments godoc
// @Summary Маршруты по отрезкам
// @Description Строит дорожный маршрут для каждого отрезка отдельно; каждый отрезок при ошибке OSRM заменяется прямой линией независимо от остальных
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.SegmentsRequest true "Отрезки маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.SegmentsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes/segments [post]
func (h *RouteHandler) PlanSegments(c *fiber.Ctx) error {
	var req dto.SegmentsRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.PlanSegments(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Segments),
	})
}

// parseBody разбирает JSON тела и валидирует его
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON body",
		})
	}
	return validator.Validate(req)
}
