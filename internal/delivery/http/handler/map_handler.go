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

// MapHandler - обработчик для виджета карты
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// Config godoc
// @Summary Параметры карты
// @Description Рамка допустимых координат, диапазон масштаба, начальный вид, параметры перецентрирования и стиль
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapConfigResponse}
// @Router /api/v1/map/config [get]
func (h *MapHandler) Config(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.mapUC.Config(), nil)
}

// Markers godoc
// @Summary Маркеры отфильтрованных локаций
// @Tags Map
// @Produce json
// @Param q query string false "Строка поиска"
// @Param types query string false "Типы через запятую"
// @Param specialties query string false "Специализации через запятую"
// @Param lakes query string false "Озёра через запятую"
// @Param tags query string false "Теги через запятую (не применяются)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.Marker}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map/markers [get]
func (h *MapHandler) Markers(c *fiber.Ctx) error {
	q := parseLocationQuery(c)
	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, err)
	}

	markers, catalogTotal, err := h.mapUC.Markers(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, markers, filteredMeta(len(markers), catalogTotal))
}

// Viewport godoc
// @Summary Прижатие вида карты к рамке
// @Description Центр прижимается к рамке покомпонентно, масштаб к допустимому диапазону
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.ViewportRequest true "Предложенный вид"
// @Success 200 {object} utils.SuccessResponse{data=dto.ViewportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map/viewport [post]
func (h *MapHandler) Viewport(c *fiber.Ctx) error {
	var req dto.ViewportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.mapUC.ClampViewport(req), nil)
}
