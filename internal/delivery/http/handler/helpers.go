package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/connectflx/discovery-service/internal/pkg/errors"
	"github.com/connectflx/discovery-service/internal/pkg/utils"
	"github.com/connectflx/discovery-service/internal/usecase/dto"
)

// parseLocationQuery читает q, types, specialties, lakes, tags (списки через запятую)
func parseLocationQuery(c *fiber.Ctx) dto.LocationQuery {
	return dto.LocationQuery{
		Search:      c.Query("q"),
		Types:       utils.SplitCSV(c.Query("types")),
		Specialties: utils.SplitCSV(c.Query("specialties")),
		Lakes:       utils.SplitCSV(c.Query("lakes")),
		Tags:        utils.SplitCSV(c.Query("tags")),
	}
}

// filteredMeta - meta для отфильтрованных ответов. Фильтр по тегам не применяется.
func filteredMeta(total, catalogTotal int) *utils.Meta {
	applied := false
	return &utils.Meta{
		Total:             total,
		CatalogTotal:      catalogTotal,
		TagsFilterApplied: &applied,
	}
}

func parseLocationID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidLocationID.WithDetails(map[string]interface{}{
			"id": c.Params("id"),
		})
	}
	return id, nil
}

// parseSessionID - id сессии должен быть UUID
func parseSessionID(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": raw,
		})
	}
	return id.String(), nil
}
