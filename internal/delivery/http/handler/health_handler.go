package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, которую проверяет /health (Redis, PostgreSQL)
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - liveness и состояние внешних зависимостей
type HealthHandler struct {
	checks       map[string]HealthChecker
	catalogTotal int
	logger       *zap.Logger
}

func NewHealthHandler(catalogTotal int, checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	if checks == nil {
		checks = map[string]HealthChecker{}
	}
	return &HealthHandler{
		checks:       checks,
		catalogTotal: catalogTotal,
		logger:       logger,
	}
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	deps := make(fiber.Map, len(h.checks))
	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = err.Error()
			status = "degraded"
			continue
		}
		deps[name] = "ok"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":        status,
		"time":          time.Now(),
		"catalog_total": h.catalogTotal,
		"dependencies":  deps,
	})
}
