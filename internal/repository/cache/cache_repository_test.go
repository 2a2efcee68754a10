package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/repository/cache"
)

func getTestRedis(t *testing.T) *cache.Redis {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_GetSetDelete(t *testing.T) {
	r := getTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()
	key := "test:cache:value"
	defer r.Client().Del(ctx, key)

	val, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val, "miss returns nil without error")

	require.NoError(t, repo.Set(ctx, key, []byte("hello"), time.Minute))
	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), val)

	require.NoError(t, repo.Delete(ctx, key))
	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Stats(t *testing.T) {
	r := getTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()
	defer r.Client().Del(ctx, "cache:stats:top:5", "cache:stats:top:10")

	stats := &domain.RouteStatistics{
		TotalRoutes:   4,
		ByMovement:    map[string]int64{"walking": 3, "cycling": 1},
		TopPlaces:     []domain.PlaceVisits{{PlaceID: "2", Visits: 4}, {PlaceID: "park", Visits: 1}},
		AvgDistanceKm: 2.5,
		LastUpdated:   time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SetStats(ctx, 5, stats, time.Minute))

	got, err := repo.GetStats(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stats.TotalRoutes, got.TotalRoutes)
	assert.Equal(t, stats.ByMovement, got.ByMovement)
	assert.Equal(t, stats.TopPlaces, got.TopPlaces)
	assert.True(t, stats.LastUpdated.Equal(got.LastUpdated))

	// другой limit - другой ключ
	miss, err := repo.GetStats(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, miss)
}
