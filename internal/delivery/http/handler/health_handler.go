package handler

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/route-suggestion-service/internal/usecase"
	"github.com/route-suggestion-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker - зависимость, которую можно проверить на доступность
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - обработчик health check
type HealthHandler struct {
	catalogUC *usecase.CatalogUseCase
	checks    map[string]HealthChecker
	logger    *zap.Logger
}

// NewHealthHandler - создание нового обработчика health check.
// checks - опциональные зависимости по имени (redis, postgres).
func NewHealthHandler(catalogUC *usecase.CatalogUseCase, checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		catalogUC: catalogUC,
		checks:    checks,
		logger:    logger,
	}
}

// Health godoc
// @Summary Проверка состояния
// @Description Возвращает размер каталога и состояние подключенных зависимостей
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:  "healthy",
		Catalog: h.catalogUC.Health(),
	}

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()

		names := make([]string, 0, len(h.checks))
		for name := range h.checks {
			names = append(names, name)
		}
		sort.Strings(names)

		resp.Deps = make(map[string]string, len(names))
		for _, name := range names {
			if err := h.checks[name].Health(ctx); err != nil {
				h.logger.Warn("Health check failed",
					zap.String("dependency", name),
					zap.Error(err))
				resp.Deps[name] = "unavailable"
				resp.Status = "degraded"
				continue
			}
			resp.Deps[name] = "ok"
		}
	}

	if resp.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
