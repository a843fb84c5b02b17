package route_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/usecase"
	"github.com/loopi-routing/internal/worker/route"
)

const group = "route-sequencing-workers"

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

func newWorker(stream *MockStreamRepository, maxRetries int) *route.SequencingWorker {
	uc := usecase.NewRouteUseCase(nil, nil, nil, zap.NewNop(), time.Minute, 1)
	return route.NewSequencingWorker(stream, uc, group, maxRetries, zap.NewNop())
}

func message(t *testing.T, id string, event domain.RouteSequenceEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func dubaiPoints() []domain.Point {
	return []domain.Point{
		{ID: "a", Name: "Burj Khalifa", Lat: 25.1972, Lng: 55.2744},
		{ID: "b", Name: "Dubai Marina", Lat: 25.0805, Lng: 55.1403},
		{ID: "c", Name: "Dubai Mall", Lat: 25.1985, Lng: 55.2796},
	}
}

func TestSequencingWorker_Name(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, 3)
	assert.Equal(t, "route-sequencing", w.Name())
	assert.Equal(t, group, w.ConsumerGroup())
}

func TestSequencingWorker_Stop(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, 3)

	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
	// повторный Stop безопасен
	require.NoError(t, w.Stop())
}

func TestSequencingWorker_StartFailsWithoutGroup(t *testing.T) {
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamRouteSequence, group).
		Return(errors.New("redis down"))

	w := newWorker(stream, 3)
	err := w.Start(context.Background())
	require.Error(t, err)
	stream.AssertExpectations(t)
}

func TestSequencingWorker_ContextCancellation(t *testing.T) {
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamRouteSequence, group).Return(nil)
	stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
		Return([]domain.StreamMessage{}, nil)

	w := newWorker(stream, 3)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestSequencingWorker_StopEndsLoop(t *testing.T) {
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamRouteSequence, group).Return(nil)
	stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
		Return([]domain.StreamMessage{}, nil)

	w := newWorker(stream, 3)

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestSequencingWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
			Return([]domain.StreamMessage{}, nil)

		n, err := newWorker(stream, 3).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("consume error", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
			Return(nil, errors.New("connection reset"))

		_, err := newWorker(stream, 3).ProcessBatch(ctx)
		require.Error(t, err)
	})

	t.Run("sequences and publishes", func(t *testing.T) {
		requestID := uuid.New()
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
			Return([]domain.StreamMessage{
				message(t, "1-0", domain.RouteSequenceEvent{
					RequestID: requestID,
					SessionID: "map-1",
					Mode:      domain.TravelModeWalking,
					Points:    dubaiPoints(),
				}),
			}, nil)

		var published *domain.RouteSequenceDoneEvent
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteDone, mock.Anything).
			Run(func(args mock.Arguments) {
				published = args.Get(2).(*domain.RouteSequenceDoneEvent)
			}).Return(nil)
		stream.On("AckMessages", mock.Anything, domain.StreamRouteSequence, group, []string{"1-0"}).Return(nil)

		n, err := newWorker(stream, 3).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		stream.AssertExpectations(t)

		require.NotNil(t, published)
		assert.Equal(t, requestID, published.RequestID)
		assert.Equal(t, "map-1", published.SessionID)
		assert.Equal(t, domain.TravelModeWalking, published.Mode)
		assert.Empty(t, published.Error)
		require.Len(t, published.Steps, 2)
		// Dubai Mall рядом с Burj Khalifa, Marina последняя
		assert.Equal(t, "Burj Khalifa", published.Steps[0].From)
		assert.Equal(t, "Dubai Mall", published.Steps[0].To)
		assert.Equal(t, "Dubai Marina", published.Steps[1].To)
		assert.Greater(t, published.TotalDistanceKm, 0.0)
	})

	t.Run("invalid event publishes error and acks", func(t *testing.T) {
		points := dubaiPoints()
		points[2].ID = "a"

		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
			Return([]domain.StreamMessage{
				message(t, "2-0", domain.RouteSequenceEvent{RequestID: uuid.New(), Mode: "driving", Points: points}),
				message(t, "3-0", domain.RouteSequenceEvent{RequestID: uuid.New(), Mode: "flying", Points: dubaiPoints()}),
			}, nil)

		var codes []string
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteDone, mock.Anything).
			Run(func(args mock.Arguments) {
				done := args.Get(2).(*domain.RouteSequenceDoneEvent)
				codes = append(codes, done.Error)
				assert.NotNil(t, done.Steps)
			}).Return(nil)
		stream.On("AckMessages", mock.Anything, domain.StreamRouteSequence, group, []string{"2-0", "3-0"}).Return(nil)

		_, err := newWorker(stream, 3).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"DUPLICATE_POINT_ID", "INVALID_TRAVEL_MODE"}, codes)
		stream.AssertExpectations(t)
	})

	t.Run("malformed message is acked without publish", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
			Return([]domain.StreamMessage{{ID: "4-0", Data: "{not json"}, {ID: "5-0"}}, nil)
		stream.On("AckMessages", mock.Anything, domain.StreamRouteSequence, group, []string{"4-0", "5-0"}).Return(nil)

		n, err := newWorker(stream, 3).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish retries then leaves message pending", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
			Return([]domain.StreamMessage{
				message(t, "6-0", domain.RouteSequenceEvent{RequestID: uuid.New(), Mode: "driving", Points: dubaiPoints()}),
			}, nil)
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteDone, mock.Anything).
			Return(errors.New("redis down"))
		stream.On("AckMessages", mock.Anything, domain.StreamRouteSequence, group, []string{}).Return(nil)

		_, err := newWorker(stream, 2).ProcessBatch(ctx)
		require.NoError(t, err)
		stream.AssertNumberOfCalls(t, "PublishToStream", 2)
	})

	t.Run("publish succeeds on retry", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("ConsumeBatch", mock.Anything, domain.StreamRouteSequence, group, mock.Anything, 20).
			Return([]domain.StreamMessage{
				message(t, "7-0", domain.RouteSequenceEvent{RequestID: uuid.New(), Mode: "driving", Points: dubaiPoints()}),
			}, nil)
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteDone, mock.Anything).
			Return(errors.New("timeout")).Once()
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteDone, mock.Anything).
			Return(nil).Once()
		stream.On("AckMessages", mock.Anything, domain.StreamRouteSequence, group, []string{"7-0"}).Return(nil)

		_, err := newWorker(stream, 3).ProcessBatch(ctx)
		require.NoError(t, err)
		stream.AssertExpectations(t)
	})
}
