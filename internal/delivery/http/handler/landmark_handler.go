package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loopi-routing/internal/pkg/utils"
	"github.com/loopi-routing/internal/usecase"
	"github.com/loopi-routing/internal/usecase/dto"
	"go.uber.org/zap"
)

// LandmarkHandler - обработчик справочника достопримечательностей
type LandmarkHandler struct {
	landmarkUC *usecase.LandmarkUseCase
	logger     *zap.Logger
}

// NewLandmarkHandler - создание нового LandmarkHandler
func NewLandmarkHandler(landmarkUC *usecase.LandmarkUseCase, logger *zap.Logger) *LandmarkHandler {
	return &LandmarkHandler{
		landmarkUC: landmarkUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список достопримечательностей
// @Tags Landmarks
// @Produce json
// @Param type query string false "Тип (hotel, restaurant, cafe, attraction, activity, photo)"
// @Success 200 {object} utils.SuccessResponse{data=dto.LandmarksResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/landmarks [get]
func (h *LandmarkHandler) List(c *fiber.Ctx) error {
	result, err := h.landmarkUC.List(c.Context(), c.Query("type"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Get godoc
// @Summary Достопримечательность по ID
// @Tags Landmarks
// @Produce json
// @Param id path string true "ID достопримечательности"
// @Success 200 {object} utils.SuccessResponse{data=domain.Landmark}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/landmarks/{id} [get]
func (h *LandmarkHandler) Get(c *fiber.Ctx) error {
	result, err := h.landmarkUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// DiscoverClusters godoc
// @Summary Кластеры рядом с точкой
// @Description Достопримечательности выбранного типа в радиусе (по умолчанию 8 км) от точки, куда пользователь бросил иконку; ближайшие первыми
// @Tags Landmarks
// @Accept json
// @Produce json
// @Param request body dto.ClusterRequest true "Точка, тип и радиус"
// @Success 200 {object} utils.SuccessResponse{data=dto.ClusterResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/landmarks/clusters [post]
func (h *LandmarkHandler) DiscoverClusters(c *fiber.Ctx) error {
	var req dto.ClusterRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.landmarkUC.DiscoverClusters(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// ExtractFromText godoc
// @Summary Достопримечательности, упомянутые в тексте
// @Description Ищет в тексте (например, в ответе чат-бота) известные названия и их варианты без учёта регистра
// @Tags Landmarks
// @Accept json
// @Produce json
// @Param request body dto.ExtractRequest true "Текст"
// @Success 200 {object} utils.SuccessResponse{data=dto.LandmarksResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/landmarks/extract [post]
func (h *LandmarkHandler) ExtractFromText(c *fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.landmarkUC.ExtractFromText(c.Context(), req.Text)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
