package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/pkg/utils"
	"github.com/connectflx/discovery-service/internal/pkg/validator"
	"github.com/connectflx/discovery-service/internal/usecase"
)

// LocationHandler - обработчик каталога: список, карточка, фильтры, теги
type LocationHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Отфильтрованный список локаций
// @Description Поиск по названию и специализациям, фильтры по типу, специализации и озеру. Все сравнения без учёта регистра. Параметр tags принимается, но не применяется.
// @Tags Locations
// @Produce json
// @Param q query string false "Строка поиска"
// @Param types query string false "Типы через запятую (winery,brewery,cidery,distillery)"
// @Param specialties query string false "Специализации через запятую"
// @Param lakes query string false "Озёра через запятую"
// @Param tags query string false "Теги через запятую (не применяются)"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	q := parseLocationQuery(c)
	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.catalogUC.List(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, filteredMeta(result.Total, result.CatalogTotal))
}

// Get godoc
// @Summary Карточка локации
// @Tags Locations
// @Produce json
// @Param id path int true "ID локации"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	id, err := parseLocationID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	detail, err := h.catalogUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

// Facets godoc
// @Summary Значения фильтров
// @Description Уникальные специализации, озёра и теги каталога (отсортированы) и варианты для мультиселектов, включая фиксированный список типов
// @Tags Filters
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FacetsResponse}
// @Router /api/v1/facets [get]
func (h *LocationHandler) Facets(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.catalogUC.Facets(c.Context()), nil)
}

// Tags godoc
// @Summary Словарь тегов
// @Tags Filters
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TagVocabularyEntry}
// @Router /api/v1/tags [get]
func (h *LocationHandler) Tags(c *fiber.Ctx) error {
	tags := h.catalogUC.Tags(c.Context())
	return utils.SendSuccess(c, tags, &utils.Meta{Total: len(tags)})
}
