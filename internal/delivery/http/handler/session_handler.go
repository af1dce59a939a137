package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/pkg/errors"
	"github.com/connectflx/discovery-service/internal/pkg/utils"
	"github.com/connectflx/discovery-service/internal/pkg/validator"
	"github.com/connectflx/discovery-service/internal/usecase"
	"github.com/connectflx/discovery-service/internal/usecase/dto"
)

// SessionHandler - интенты оболочки приложения: поиск, фильтры, выбор, панели
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

func sendState(c *fiber.Ctx, state *dto.SessionState) error {
	return utils.SendSuccess(c, state, filteredMeta(len(state.Filtered), state.CatalogTotal))
}

// Create godoc
// @Summary Новая сессия
// @Description Создаёт состояние оболочки: пустой поиск, пустые фильтры, без выбора
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	state, err := h.sessionUC.Create(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, state)
}

// Get godoc
// @Summary Состояние сессии
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendState(c, state)
}

// Delete godoc
// @Summary Удаление сессии
// @Tags Sessions
// @Param id path string true "ID сессии (UUID)"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.sessionUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetSearch godoc
// @Summary Строка поиска
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Param request body dto.SetSearchRequest true "Строка поиска"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/search [put]
func (h *SessionHandler) SetSearch(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SetSearchRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.SetSearch(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendState(c, state)
}

// SetFilters godoc
// @Summary Фильтры
// @Description Полная замена выбранных фильтров. Выбор локации не сбрасывается.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Param request body dto.SetFiltersRequest true "Фильтры"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/filters [put]
func (h *SessionHandler) SetFilters(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SetFiltersRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.SetFilters(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendState(c, state)
}

// Select godoc
// @Summary Выбор локации
// @Description id = null сбрасывает выбор, неизвестный id тоже. При смене выбора возвращается директива перецентрирования, если не задан preserve_viewport.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Param request body dto.SelectRequest true "Выбор"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/selection [put]
func (h *SessionHandler) Select(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SelectRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.Select(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendState(c, state)
}

// ClearSelection godoc
// @Summary Закрытие карточки
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/selection [delete]
func (h *SessionHandler) ClearSelection(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.ClearSelection(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendState(c, state)
}

// SetPanels godoc
// @Summary Панели
// @Description Частичное обновление: отсутствующее поле не меняет панель
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Param request body dto.SetPanelsRequest true "Панели"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/panels [put]
func (h *SessionHandler) SetPanels(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SetPanelsRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.SetPanels(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendState(c, state)
}

// ToggleFilters godoc
// @Summary Переключение панели фильтров
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/panels/filters/toggle [post]
func (h *SessionHandler) ToggleFilters(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.ToggleFilters(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendState(c, state)
}

// parseBody разбирает JSON и валидирует его
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.ErrInvalidRequest
	}
	return validator.Validate(out)
}
