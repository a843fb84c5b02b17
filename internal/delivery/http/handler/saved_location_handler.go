package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/loopi-routing/internal/pkg/utils"
	"github.com/loopi-routing/internal/usecase"
	"github.com/loopi-routing/internal/usecase/dto"
	"go.uber.org/zap"
)

// SavedLocationHandler - обработчик избранных мест
type SavedLocationHandler struct {
	savedUC *usecase.SavedLocationUseCase
	logger  *zap.Logger
}

// NewSavedLocationHandler - создание нового SavedLocationHandler
func NewSavedLocationHandler(savedUC *usecase.SavedLocationUseCase, logger *zap.Logger) *SavedLocationHandler {
	return &SavedLocationHandler{
		savedUC: savedUC,
		logger:  logger,
	}
}

// List godoc
// @Summary Избранные места владельца
// @Tags Saved
// @Produce json
// @Param owner path string true "ID владельца"
// @Success 200 {object} utils.SuccessResponse{data=dto.SavedLocationsResponse}
// @Router /api/v1/saved/{owner} [get]
func (h *SavedLocationHandler) List(c *fiber.Ctx) error {
	result, err := h.savedUC.List(c.Context(), c.Params("owner"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Replace godoc
// @Summary Заменить коллекцию целиком
// @Tags Saved
// @Accept json
// @Produce json
// @Param owner path string true "ID владельца"
// @Param request body dto.ReplaceSavedLocationsRequest true "Новая коллекция"
// @Success 200 {object} utils.SuccessResponse{data=dto.SavedLocationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/saved/{owner} [put]
func (h *SavedLocationHandler) Replace(c *fiber.Ctx) error {
	var req dto.ReplaceSavedLocationsRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.savedUC.Replace(c.Context(), c.Params("owner"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Add godoc
// @Summary Добавить место в избранное
// @Description Повторное добавление места с тем же ID ничего не меняет
// @Tags Saved
// @Accept json
// @Produce json
// @Param owner path string true "ID владельца"
// @Param request body dto.SavedLocationInput true "Место"
// @Success 200 {object} utils.SuccessResponse{data=dto.SavedLocationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/saved/{owner} [post]
func (h *SavedLocationHandler) Add(c *fiber.Ctx) error {
	var req dto.SavedLocationInput
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.savedUC.Add(c.Context(), c.Params("owner"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Remove godoc
// @Summary Убрать место из избранного
// @Tags Saved
// @Produce json
// @Param owner path string true "ID владельца"
// @Param id path string true "ID места"
// @Success 200 {object} utils.SuccessResponse{data=dto.SavedLocationsResponse}
// @Router /api/v1/saved/{owner}/{id} [delete]
func (h *SavedLocationHandler) Remove(c *fiber.Ctx) error {
	result, err := h.savedUC.Remove(c.Context(), c.Params("owner"), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
