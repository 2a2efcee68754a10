package repository

import (
	"context"
	"time"

	"github.com/route-suggestion-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetStats получает статистику маршрутов из кеша
	GetStats(ctx context.Context, limit int) (*domain.RouteStatistics, error)

	// SetStats сохраняет статистику маршрутов в кеше
	SetStats(ctx context.Context, limit int, stats *domain.RouteStatistics, ttl time.Duration) error
}
