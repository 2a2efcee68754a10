package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
	"go.uber.org/zap"
)

// StatsUseCase отдаёт статистику построенных маршрутов
type StatsUseCase struct {
	statsRepo    repository.StatsRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
	defaultLimit int
	logger       *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	defaultLimit int,
	logger *zap.Logger,
) *StatsUseCase {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &StatsUseCase{
		statsRepo:    statsRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно.
// limit <= 0 заменяется значением по умолчанию.
func (uc *StatsUseCase) GetStatistics(ctx context.Context, limit int) (*domain.RouteStatistics, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetStats(ctx, limit)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache", zap.Int("limit", limit))
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	// 2. Считаем по счётчикам
	stats, err := uc.statsRepo.GetStatistics(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}

	// 3. Кешируем
	if uc.cacheTTL > 0 {
		if err := uc.cacheRepo.SetStats(ctx, limit, stats, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, nil
}

// RecordRoute учитывает событие маршрута из стрима
func (uc *StatsUseCase) RecordRoute(ctx context.Context, event *domain.RoutePlannedEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if err := uc.statsRepo.RecordRoute(ctx, event); err != nil {
		return fmt.Errorf("record route %s: %w", event.RouteID, err)
	}
	return nil
}
