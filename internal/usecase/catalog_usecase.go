package usecase

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/route-suggestion-service/internal/catalog"
	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
	"github.com/route-suggestion-service/internal/metrics"
	"github.com/route-suggestion-service/internal/pkg/utils"
	"github.com/route-suggestion-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CatalogUseCase отдаёт каталог мест и результаты фильтра
type CatalogUseCase struct {
	catalog *catalog.Catalog
	memo    *gocache.Cache
	logger  *zap.Logger
}

// LoadCatalog читает места и события из источника и строит каталог.
// Любая ошибка здесь фатальна для старта сервиса.
func LoadCatalog(ctx context.Context, source repository.CatalogSource, logger *zap.Logger) (*catalog.Catalog, error) {
	places, err := source.LoadPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("load places: %w", err)
	}

	events, err := source.LoadEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	c, err := catalog.Build(places, events)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	for _, p := range places {
		if !utils.ValidateCoordinates(p.Coordinates.Lat(), p.Coordinates.Lon()) {
			logger.Warn("Place has out-of-range coordinates",
				zap.String("place_id", string(p.ID)),
				zap.Float64("lon", p.Coordinates.Lon()),
				zap.Float64("lat", p.Coordinates.Lat()))
		}
	}

	entries := len(c.Entries())
	if entries == 0 {
		logger.Warn("Catalog has no entry points, route requests will fail")
	}

	metrics.SetCatalogSize(c.Len(), entries)
	logger.Info("Catalog loaded",
		zap.Int("places", c.Len()),
		zap.Int("events", len(events)),
		zap.Int("entry_points", entries))

	return c, nil
}

// NewCatalogUseCase создает CatalogUseCase.
// filterTTL <= 0 отключает memo фильтра.
func NewCatalogUseCase(c *catalog.Catalog, filterTTL time.Duration, logger *zap.Logger) *CatalogUseCase {
	uc := &CatalogUseCase{
		catalog: c,
		logger:  logger,
	}
	if filterTTL > 0 {
		uc.memo = gocache.New(filterTTL, 2*filterTTL)
	}
	return uc
}

// Points возвращает GeoJSON-источник со всеми местами каталога
func (uc *CatalogUseCase) Points() domain.GeoJSONSource {
	return uc.catalog.FeatureCollection()
}

// Filter возвращает места, подходящие под маски запроса, в порядке каталога
func (uc *CatalogUseCase) Filter(ctx context.Context, req dto.FilterRequest) []domain.Place {
	interests := domain.InterestMask(domain.ParseMask(req.Interests))
	wishes := domain.WishMask(domain.ParseMask(req.Wishes))

	return uc.filter(interests, wishes)
}

// DecodeMask возвращает номера установленных битов маски
func (uc *CatalogUseCase) DecodeMask(req dto.DecodeRequest) []int {
	return domain.DecodeBits(domain.ParseMask(req.Of))
}

// Entries возвращает точки входа каталога
func (uc *CatalogUseCase) Entries() []domain.Place {
	return uc.catalog.Entries()
}

// Health возвращает размеры каталога
func (uc *CatalogUseCase) Health() dto.CatalogHealth {
	return dto.CatalogHealth{
		Places:      uc.catalog.Len(),
		EntryPoints: len(uc.catalog.Entries()),
	}
}

// filter ищет в memo по (interests, wishes без резервных битов).
// Возвращает копию, чтобы вызывающий не портил закешированный срез.
func (uc *CatalogUseCase) filter(interests domain.InterestMask, wishes domain.WishMask) []domain.Place {
	if uc.memo == nil {
		result := uc.catalog.Filter(interests, wishes)
		metrics.RecordFilter(len(result), false)
		return result
	}

	key := fmt.Sprintf("%d:%d", interests, wishes.Query())
	if cached, ok := uc.memo.Get(key); ok {
		places := cached.([]domain.Place)
		metrics.RecordFilter(len(places), true)
		return clonePlaces(places)
	}

	result := uc.catalog.Filter(interests, wishes)
	uc.memo.SetDefault(key, result)
	metrics.RecordFilter(len(result), false)

	uc.logger.Debug("Filter computed",
		zap.String("key", key),
		zap.Int("matches", len(result)))
	return clonePlaces(result)
}

func clonePlaces(places []domain.Place) []domain.Place {
	result := make([]domain.Place, len(places))
	copy(result, places)
	return result
}
