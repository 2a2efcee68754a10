package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
	"go.uber.org/zap"
)

// Ключи счётчиков статистики маршрутов
const (
	KeyRoutesTotal    = "stats:routes:total"
	KeyRoutesMovement = "stats:routes:movement"
	KeyRoutesDistance = "stats:routes:distance_km"
	KeyPlaceVisits    = "stats:places:visits"
)

type statsRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStatsRepository создает репозиторий статистики поверх счётчиков Redis
func NewStatsRepository(client *redis.Client, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		client: client,
		logger: logger,
	}
}

// RecordRoute учитывает маршрут одной транзакцией
func (r *statsRepository) RecordRoute(ctx context.Context, event *domain.RoutePlannedEvent) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, KeyRoutesTotal)
		pipe.HIncrBy(ctx, KeyRoutesMovement, event.Movement, 1)
		pipe.IncrByFloat(ctx, KeyRoutesDistance, event.DistanceKm)
		for _, id := range event.PlaceIDs {
			pipe.ZIncrBy(ctx, KeyPlaceVisits, 1, string(id))
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to record route",
			zap.String("route_id", event.RouteID.String()),
			zap.Error(err))
		return fmt.Errorf("record route: %w", err)
	}

	r.logger.Debug("Route recorded",
		zap.String("route_id", event.RouteID.String()),
		zap.Int("places", len(event.PlaceIDs)))
	return nil
}

// GetStatistics возвращает агрегаты и limit самых посещаемых мест
func (r *statsRepository) GetStatistics(ctx context.Context, limit int) (*domain.RouteStatistics, error) {
	pipe := r.client.Pipeline()
	totalCmd := pipe.Get(ctx, KeyRoutesTotal)
	movementCmd := pipe.HGetAll(ctx, KeyRoutesMovement)
	distanceCmd := pipe.Get(ctx, KeyRoutesDistance)
	var topCmd *redis.ZSliceCmd
	if limit > 0 {
		topCmd = pipe.ZRevRangeWithScores(ctx, KeyPlaceVisits, 0, int64(limit-1))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		r.logger.Error("Failed to read statistics", zap.Error(err))
		return nil, fmt.Errorf("get statistics: %w", err)
	}

	stats := &domain.RouteStatistics{
		ByMovement:  make(map[string]int64),
		TopPlaces:   []domain.PlaceVisits{},
		LastUpdated: time.Now().UTC(),
	}

	total, err := totalCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("parse total routes: %w", err)
	}
	stats.TotalRoutes = total

	movements, err := movementCmd.Result()
	if err != nil {
		return nil, fmt.Errorf("get movement counters: %w", err)
	}
	for movement, raw := range movements {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse movement counter %s: %w", movement, err)
		}
		stats.ByMovement[movement] = count
	}

	distance, err := distanceCmd.Float64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("parse distance sum: %w", err)
	}
	if total > 0 {
		stats.AvgDistanceKm = distance / float64(total)
	}

	if topCmd != nil {
		top, err := topCmd.Result()
		if err != nil {
			return nil, fmt.Errorf("get top places: %w", err)
		}
		for _, z := range top {
			member, _ := z.Member.(string)
			stats.TopPlaces = append(stats.TopPlaces, domain.PlaceVisits{
				PlaceID: domain.PlaceID(member),
				Visits:  int64(z.Score),
			})
		}
	}

	return stats, nil
}
