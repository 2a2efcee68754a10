package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-suggestion-service/internal/pkg/errors"
	"github.com/route-suggestion-service/internal/pkg/utils"
	"github.com/route-suggestion-service/internal/pkg/validator"
	"github.com/route-suggestion-service/internal/usecase"
	"github.com/route-suggestion-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// StatsHandler - обработчик статистики маршрутов
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового обработчика статистики.
// statsUC может быть nil, если Redis отключен.
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика маршрутов
// @Description Возвращает количество построенных маршрутов, разбивку по способу передвижения
// @Description и самые посещаемые места
// @Tags Statistics
// @Produce json
// @Param limit query int false "Количество мест в топе (1-100)"
// @Success 200 {object} utils.SuccessResponse{data=dto.StatsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	if h.statsUC == nil {
		return utils.SendError(c, errors.ErrStatsUnavailable)
	}

	var req dto.StatsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"query": err.Error(),
		}))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	stats, err := h.statsUC.GetStatistics(c.UserContext(), req.Limit)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, errors.ErrStatsUnavailable)
	}

	return utils.SendSuccess(c, dto.StatsResponse{Stats: stats}, &utils.Meta{
		Total: len(stats.TopPlaces),
	})
}
