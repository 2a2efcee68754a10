package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-suggestion-service/internal/pkg/utils"
	"github.com/route-suggestion-service/internal/usecase"
	"github.com/route-suggestion-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик построения маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового обработчика маршрутов
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// BuildRoute godoc
// @Summary Построение маршрута
// @Description Подбирает места по интересам и пожеланиям, упорядочивает их от точки входа
// @Description и возвращает ссылку на Mapbox Directions API. Если подходящих мест нет, ok=false.
// @Tags Route
// @Produce json
// @Param interests query string false "Маска интересов"
// @Param wishes query string false "Маска пожеланий"
// @Param mapToken query string false "Токен Mapbox"
// @Param mapboxgl-token query string false "Токен Mapbox (старое имя)"
// @Success 200 {object} dto.RouteResponse
// @Failure 503 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /route [get]
func (h *RouteHandler) BuildRoute(c *fiber.Ctx) error {
	req := dto.RouteRequest{
		Interests:   c.Query("interests"),
		Wishes:      c.Query("wishes"),
		MapToken:    c.Query("mapToken"),
		MapboxToken: c.Query("mapboxgl-token"),
	}

	resp, err := h.routeUC.BuildRoute(c.UserContext(), req)
	if err != nil {
		h.logger.Error("Failed to build route",
			zap.String("interests", req.Interests),
			zap.String("wishes", req.Wishes),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}
