package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
	"github.com/route-suggestion-service/internal/infrastructure/mapbox"
	"github.com/route-suggestion-service/internal/metrics"
	apperrors "github.com/route-suggestion-service/internal/pkg/errors"
	"github.com/route-suggestion-service/internal/pkg/utils"
	"github.com/route-suggestion-service/internal/routing"
	"github.com/route-suggestion-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteUseCase строит маршрут: фильтр, случайный отбор, жадный порядок, ссылка Mapbox
type RouteUseCase struct {
	catalogUC *CatalogUseCase
	selector  *routing.Selector
	links     repository.DirectionsLinkBuilder
	publisher repository.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewRouteUseCase создает RouteUseCase. publisher может быть nil,
// тогда события о маршрутах не публикуются.
func NewRouteUseCase(
	catalogUC *CatalogUseCase,
	selector *routing.Selector,
	links repository.DirectionsLinkBuilder,
	publisher repository.EventPublisher,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		catalogUC: catalogUC,
		selector:  selector,
		links:     links,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// BuildRoute строит маршрут по маскам запроса.
// Пустой результат фильтра не ошибка: ответ {ok:false} со статусом 200.
func (uc *RouteUseCase) BuildRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	interests := domain.InterestMask(domain.ParseMask(req.Interests))
	wishes := domain.WishMask(domain.ParseMask(req.Wishes))

	filtered := uc.catalogUC.filter(interests, wishes)
	if len(filtered) == 0 {
		metrics.RecordRoute(metrics.RouteOutcomeEmpty, "", 0, 0)
		uc.logger.Debug("No places match route request",
			zap.Uint32("interests", uint32(interests)),
			zap.Uint32("wishes", uint32(wishes)))
		return dto.EmptyRouteResponse(), nil
	}

	start, err := uc.selector.PickEntry(uc.catalogUC.Entries())
	if errors.Is(err, domain.ErrNoEntryPoint) {
		metrics.RecordRoute(metrics.RouteOutcomeNoEntry, "", 0, 0)
		uc.logger.Error("Cannot build route without entry points")
		return nil, apperrors.ErrNoEntryPoint
	}
	if err != nil {
		return nil, fmt.Errorf("pick entry: %w", err)
	}

	selected, err := uc.selector.Select(filtered)
	if err != nil {
		return nil, fmt.Errorf("select places: %w", err)
	}

	route := routing.PlanRoute(selected, start)
	movement := mapbox.Movement(interests)
	link := uc.links.DirectionsLink(route, movement, req.Token())
	distanceKm := utils.RouteLengthKm(route)

	metrics.RecordRoute(metrics.RouteOutcomeOK, movement, len(route), distanceKm)

	resp := &dto.RouteResponse{
		OK:       true,
		Movement: movement,
		Link:     link,
		Places:   dto.NewRoutePlaces(route),
	}

	uc.publish(ctx, interests, wishes, movement, route, distanceKm)

	return resp, nil
}

// publish отправляет событие о маршруте. Ошибка логируется и не влияет на ответ.
func (uc *RouteUseCase) publish(
	ctx context.Context,
	interests domain.InterestMask,
	wishes domain.WishMask,
	movement string,
	route []domain.Place,
	distanceKm float64,
) {
	if uc.publisher == nil {
		return
	}

	ids := make([]domain.PlaceID, len(route))
	for i, p := range route {
		ids[i] = p.ID
	}

	event := &domain.RoutePlannedEvent{
		RouteID:    uuid.New(),
		Interests:  interests,
		Wishes:     wishes,
		Movement:   movement,
		PlaceIDs:   ids,
		DistanceKm: distanceKm,
		PlannedAt:  uc.now().UTC(),
	}

	if err := uc.publisher.PublishRoutePlanned(context.WithoutCancel(ctx), event); err != nil {
		metrics.EventPublishFailures.Inc()
		uc.logger.Warn("Failed to publish route event",
			zap.String("route_id", event.RouteID.String()),
			zap.Error(err))
		return
	}

	uc.logger.Debug("Route event published",
		zap.String("route_id", event.RouteID.String()),
		zap.Int("stops", len(ids)))
}
