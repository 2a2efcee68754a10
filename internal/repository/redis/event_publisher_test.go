package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-suggestion-service/internal/domain"
	redisRepo "github.com/route-suggestion-service/internal/repository/redis"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	return m.Called(ctx, stream, group, messageIDs).Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

func TestEventPublisher(t *testing.T) {
	event := &domain.RoutePlannedEvent{RouteID: uuid.New(), PlaceIDs: []domain.PlaceID{"1"}}
	settings := redisRepo.BreakerSettings{
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		PublishTimeout:   time.Second,
	}

	t.Run("publishes to the route stream", func(t *testing.T) {
		streams := new(MockStreamRepository)
		streams.On("PublishToStream", mock.Anything, domain.StreamRoutePlanned, event).Return(nil).Once()

		p := redisRepo.NewEventPublisher(streams, settings, zap.NewNop())
		require.NoError(t, p.PublishRoutePlanned(context.Background(), event))
		streams.AssertExpectations(t)
	})

	t.Run("opens after consecutive failures", func(t *testing.T) {
		streams := new(MockStreamRepository)
		streams.On("PublishToStream", mock.Anything, domain.StreamRoutePlanned, event).
			Return(errors.New("connection refused")).Twice()

		p := redisRepo.NewEventPublisher(streams, settings, zap.NewNop())
		ctx := context.Background()

		assert.Error(t, p.PublishRoutePlanned(ctx, event))
		assert.Error(t, p.PublishRoutePlanned(ctx, event))

		err := p.PublishRoutePlanned(ctx, event)
		assert.ErrorIs(t, err, gobreaker.ErrOpenState)
		streams.AssertNumberOfCalls(t, "PublishToStream", 2)
	})
}
