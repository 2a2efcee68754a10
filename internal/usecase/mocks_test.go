package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/route-suggestion-service/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context, limit int) (*domain.RouteStatistics, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteStatistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, limit int, stats *domain.RouteStatistics, ttl time.Duration) error {
	args := m.Called(ctx, limit, stats, ttl)
	return args.Error(0)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordRoute(ctx context.Context, event *domain.RoutePlannedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context, limit int) (*domain.RouteStatistics, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteStatistics), args.Error(1)
}

// MockEventPublisher is a mock of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishRoutePlanned(ctx context.Context, event *domain.RoutePlannedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// scriptedSource returns predefined random values in order
type scriptedSource struct {
	values []int
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.values) == 0 {
		panic("scriptedSource exhausted")
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

// MockCatalogSource is a mock of CatalogSource
type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) LoadPlaces(ctx context.Context) ([]domain.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockCatalogSource) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

// scenarioPlaces - A entry (0,0), B (10,0), C (1,0) with a different interest
func scenarioPlaces() []domain.Place {
	return []domain.Place{
		{ID: "A", Coordinates: domain.Coordinates{0, 0}, Icon: domain.IconEntry, Interests: 0b001},
		{ID: "B", Coordinates: domain.Coordinates{10, 0}, Interests: 0b001},
		{ID: "C", Coordinates: domain.Coordinates{1, 0}, Interests: 0b010},
	}
}

func placeIDs(places []domain.Place) []domain.PlaceID {
	result := make([]domain.PlaceID, 0, len(places))
	for _, p := range places {
		result = append(result, p.ID)
	}
	return result
}
