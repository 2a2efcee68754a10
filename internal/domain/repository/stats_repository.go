package repository

import (
	"context"

	"github.com/route-suggestion-service/internal/domain"
)

// StatsRepository хранит счётчики построенных маршрутов
type StatsRepository interface {
	// RecordRoute учитывает событие построенного маршрута
	RecordRoute(ctx context.Context, event *domain.RoutePlannedEvent) error

	// GetStatistics возвращает агрегаты и limit самых популярных мест
	GetStatistics(ctx context.Context, limit int) (*domain.RouteStatistics, error)
}
