package routestats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/worker"
	"github.com/route-suggestion-service/internal/worker/routestats"
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
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockStatsRecorder is a mock of StatsRecorder
type MockStatsRecorder struct {
	mock.Mock
}

func (m *MockStatsRecorder) RecordRoute(ctx context.Context, event *domain.RoutePlannedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

const (
	testGroup    = "route-stats-workers"
	testConsumer = "route-stats-test"
)

func newWorker(stream *MockStreamRepository, recorder *MockStatsRecorder) *routestats.Worker {
	return routestats.NewWorker(stream, recorder, routestats.Config{
		ConsumerGroup: testGroup,
		ConsumerName:  testConsumer,
		BatchSize:     5,
		BatchTimeout:  time.Second,
	}, zap.NewNop())
}

func eventMessage(t *testing.T, id string, event domain.RoutePlannedEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func validEvent() domain.RoutePlannedEvent {
	return domain.RoutePlannedEvent{
		RouteID:    uuid.New(),
		Interests:  1,
		Movement:   "walking",
		PlaceIDs:   []domain.PlaceID{"1", "park"},
		DistanceKm: 1.5,
		PlannedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWorker_Name(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockStatsRecorder{})
	assert.Equal(t, routestats.WorkerName, w.Name())
	assert.Equal(t, testGroup, w.ConsumerGroup())
	assert.Equal(t, testConsumer, w.ConsumerName())

	var _ worker.Worker = w
}

func TestWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty stream", func(t *testing.T) {
		stream := &MockStreamRepository{}
		recorder := &MockStatsRecorder{}
		stream.On("ConsumeBatch", mock.Anything, domain.StreamRoutePlanned, testGroup, testConsumer, 5).
			Return([]domain.StreamMessage{}, nil)

		n, err := newWorker(stream, recorder).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("records and acks valid events", func(t *testing.T) {
		stream := &MockStreamRepository{}
		recorder := &MockStatsRecorder{}
		first, second := validEvent(), validEvent()

		stream.On("ConsumeBatch", mock.Anything, domain.StreamRoutePlanned, testGroup, testConsumer, 5).
			Return([]domain.StreamMessage{
				eventMessage(t, "1-0", first),
				eventMessage(t, "2-0", second),
			}, nil)
		recorder.On("RecordRoute", mock.Anything, mock.MatchedBy(func(e *domain.RoutePlannedEvent) bool {
			return e.RouteID == first.RouteID || e.RouteID == second.RouteID
		})).Return(nil).Twice()
		stream.On("AckMessages", mock.Anything, domain.StreamRoutePlanned, testGroup, []string{"1-0", "2-0"}).
			Return(nil)

		n, err := newWorker(stream, recorder).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		recorder.AssertExpectations(t)
		stream.AssertExpectations(t)
	})

	t.Run("malformed messages are acked without recording", func(t *testing.T) {
		stream := &MockStreamRepository{}
		recorder := &MockStatsRecorder{}
		noPlaces := validEvent()
		noPlaces.PlaceIDs = nil

		stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.StreamMessage{
				{ID: "1-0", Data: "not json"},
				{ID: "2-0"},
				eventMessage(t, "3-0", noPlaces),
			}, nil)
		stream.On("AckMessages", mock.Anything, domain.StreamRoutePlanned, testGroup, []string{"1-0", "2-0", "3-0"}).
			Return(nil)

		n, err := newWorker(stream, recorder).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		recorder.AssertNotCalled(t, "RecordRoute", mock.Anything, mock.Anything)
		stream.AssertExpectations(t)
	})

	t.Run("failed record stays pending", func(t *testing.T) {
		stream := &MockStreamRepository{}
		recorder := &MockStatsRecorder{}
		ok, broken := validEvent(), validEvent()

		stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.StreamMessage{
				eventMessage(t, "1-0", ok),
				eventMessage(t, "2-0", broken),
			}, nil)
		recorder.On("RecordRoute", mock.Anything, mock.MatchedBy(func(e *domain.RoutePlannedEvent) bool {
			return e.RouteID == ok.RouteID
		})).Return(nil)
		recorder.On("RecordRoute", mock.Anything, mock.MatchedBy(func(e *domain.RoutePlannedEvent) bool {
			return e.RouteID == broken.RouteID
		})).Return(errors.New("redis down"))
		stream.On("AckMessages", mock.Anything, domain.StreamRoutePlanned, testGroup, []string{"1-0"}).
			Return(nil)

		n, err := newWorker(stream, recorder).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		stream.AssertExpectations(t)
	})

	t.Run("consume error", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := newWorker(stream, &MockStatsRecorder{}).ProcessBatch(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to consume batch")
	})
}

func TestWorker_Start(t *testing.T) {
	t.Run("consumer group failure stops the worker", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("CreateConsumerGroup", mock.Anything, domain.StreamRoutePlanned, testGroup).
			Return(errors.New("NOAUTH"))

		err := newWorker(stream, &MockStatsRecorder{}).Start(context.Background())
		assert.Error(t, err)
	})

	t.Run("stops on Stop", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.StreamMessage{}, nil)

		w := newWorker(stream, &MockStatsRecorder{})
		done := make(chan error, 1)
		go func() { done <- w.Start(context.Background()) }()

		time.Sleep(20 * time.Millisecond)
		require.NoError(t, w.Stop())
		require.NoError(t, w.Stop())

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("worker did not stop")
		}
		assert.True(t, w.IsStopped())
	})
}
