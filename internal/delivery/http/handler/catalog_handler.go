package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-suggestion-service/internal/usecase"
	"github.com/route-suggestion-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CatalogHandler - обработчик запросов к каталогу мест
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler - создание нового обработчика каталога
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// Points godoc
// @Summary Все места каталога
// @Description Возвращает источник GeoJSON со всеми местами каталога для добавления на карту
// @Tags Catalog
// @Produce json
// @Success 200 {object} domain.GeoJSONSource
// @Router /points [get]
func (h *CatalogHandler) Points(c *fiber.Ctx) error {
	return c.JSON(h.catalogUC.Points())
}

// Filter godoc
// @Summary Фильтр мест по интересам
// @Description Возвращает места, у которых есть хотя бы один из интересов и совпадает запрошенный темп и компания
// @Tags Catalog
// @Produce json
// @Param interests query string false "Маска интересов"
// @Param wishes query string false "Маска пожеланий"
// @Success 200 {array} domain.Place
// @Router /filter [get]
func (h *CatalogHandler) Filter(c *fiber.Ctx) error {
	req := dto.FilterRequest{
		Interests: c.Query("interests"),
		Wishes:    c.Query("wishes"),
	}

	places := h.catalogUC.Filter(c.UserContext(), req)
	h.logger.Debug("Filter request",
		zap.String("interests", req.Interests),
		zap.String("wishes", req.Wishes),
		zap.Int("matches", len(places)))

	return c.JSON(places)
}

// Decode godoc
// @Summary Разбор маски
// @Description Возвращает номера установленных битов маски по возрастанию
// @Tags Catalog
// @Produce json
// @Param of query string false "Маска"
// @Success 200 {array} integer
// @Router /id [get]
func (h *CatalogHandler) Decode(c *fiber.Ctx) error {
	return c.JSON(h.catalogUC.DecodeMask(dto.DecodeRequest{Of: c.Query("of")}))
}
