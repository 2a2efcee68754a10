package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	stats := &domain.RouteStatistics{TotalRoutes: 7, ByMovement: map[string]int64{"walking": 7}}

	t.Run("cache hit", func(t *testing.T) {
		statsRepo := new(MockStatsRepository)
		cacheRepo := new(MockCacheRepository)
		cacheRepo.On("GetStats", ctx, 5).Return(stats, nil)

		uc := usecase.NewStatsUseCase(statsRepo, cacheRepo, time.Minute, 10, logger)
		got, err := uc.GetStatistics(ctx, 5)
		require.NoError(t, err)
		assert.Same(t, stats, got)
		statsRepo.AssertNotCalled(t, "GetStatistics", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads counters and caches", func(t *testing.T) {
		statsRepo := new(MockStatsRepository)
		cacheRepo := new(MockCacheRepository)
		cacheRepo.On("GetStats", ctx, 10).Return(nil, nil)
		statsRepo.On("GetStatistics", ctx, 10).Return(stats, nil)
		cacheRepo.On("SetStats", ctx, 10, stats, time.Minute).Return(nil)

		uc := usecase.NewStatsUseCase(statsRepo, cacheRepo, time.Minute, 10, logger)
		got, err := uc.GetStatistics(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.TotalRoutes)
		statsRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		statsRepo := new(MockStatsRepository)
		cacheRepo := new(MockCacheRepository)
		cacheRepo.On("GetStats", ctx, 3).Return(nil, errors.New("cache down"))
		statsRepo.On("GetStatistics", ctx, 3).Return(stats, nil)
		cacheRepo.On("SetStats", ctx, 3, stats, time.Minute).Return(errors.New("cache down"))

		uc := usecase.NewStatsUseCase(statsRepo, cacheRepo, time.Minute, 10, logger)
		got, err := uc.GetStatistics(ctx, 3)
		require.NoError(t, err)
		assert.Same(t, stats, got)
	})

	t.Run("repository error", func(t *testing.T) {
		statsRepo := new(MockStatsRepository)
		cacheRepo := new(MockCacheRepository)
		cacheRepo.On("GetStats", ctx, 10).Return(nil, nil)
		statsRepo.On("GetStatistics", ctx, 10).Return(nil, errors.New("redis down"))

		uc := usecase.NewStatsUseCase(statsRepo, cacheRepo, time.Minute, 10, logger)
		_, err := uc.GetStatistics(ctx, 10)
		assert.ErrorContains(t, err, "redis down")
		cacheRepo.AssertNotCalled(t, "SetStats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStatsUseCase_RecordRoute(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("valid event", func(t *testing.T) {
		event := &domain.RoutePlannedEvent{RouteID: uuid.New(), PlaceIDs: []domain.PlaceID{"1"}}
		statsRepo := new(MockStatsRepository)
		statsRepo.On("RecordRoute", ctx, event).Return(nil)

		uc := usecase.NewStatsUseCase(statsRepo, new(MockCacheRepository), 0, 0, logger)
		require.NoError(t, uc.RecordRoute(ctx, event))
		statsRepo.AssertExpectations(t)
	})

	t.Run("invalid event is rejected", func(t *testing.T) {
		statsRepo := new(MockStatsRepository)

		uc := usecase.NewStatsUseCase(statsRepo, new(MockCacheRepository), 0, 0, logger)
		err := uc.RecordRoute(ctx, &domain.RoutePlannedEvent{})
		assert.ErrorIs(t, err, domain.ErrInvalidEvent)
		statsRepo.AssertNotCalled(t, "RecordRoute", mock.Anything, mock.Anything)
	})
}
