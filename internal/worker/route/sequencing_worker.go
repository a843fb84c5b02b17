package route

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/loopi-routing/internal/pkg/errors"
	"github.com/loopi-routing/internal/usecase/dto"
	"github.com/loopi-routing/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second
	publishBackoff  = 50 * time.Millisecond
)

// Sequencer - упорядочивание точек без обращения к OSRM
type Sequencer interface {
	Sequence(ctx context.Context, req dto.SequenceRequest) (*dto.SequenceResponse, error)
}

// SequencingWorker читает stream:route:sequence и публикует
// порядок посещения в stream:route:done
type SequencingWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	sequencer    Sequencer
	consumerName string
	maxRetries   int
}

// NewSequencingWorker создает новый SequencingWorker
func NewSequencingWorker(
	streamRepo repository.StreamRepository,
	sequencer Sequencer,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *SequencingWorker {
	hostname, _ := os.Hostname()
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &SequencingWorker{
		BaseWorker:   worker.NewBaseWorker("route-sequencing", consumerGroup, logger),
		streamRepo:   streamRepo,
		sequencer:    sequencer,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *SequencingWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SequencingWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRouteSequence, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorSleep)
			continue
		}
		if processed == 0 {
			w.Pause(ctx, emptyQueueSleep)
		}
	}
}

// ProcessBatch читает и обрабатывает одну пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *SequencingWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRouteSequence,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	acked := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// битое сообщение подтверждаем, иначе оно застрянет в pending
			acked = append(acked, msg.ID)
			continue
		}

		done, err := w.handle(ctx, event)
		if err != nil {
			// ctx отменён: сообщение останется в pending и будет перечитано
			logger.Warn("Route sequencing interrupted",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			break
		}

		if err := w.publish(ctx, done); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			continue
		}
		acked = append(acked, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRouteSequence, w.ConsumerGroup(), acked); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("acked", len(acked)))

	return len(messages), nil
}

// handle упорядочивает точки события. Ошибки валидации попадают в Error
// результата; возвращается только ошибка отмены контекста.
func (w *SequencingWorker) handle(ctx context.Context, event *domain.RouteSequenceEvent) (*domain.RouteSequenceDoneEvent, error) {
	done := &domain.RouteSequenceDoneEvent{
		RequestID: event.RequestID,
		SessionID: event.SessionID,
		Mode:      event.Mode,
		Steps:     []domain.RouteStep{},
	}

	req := dto.SequenceRequest{
		Mode:   string(event.Mode),
		Points: make([]dto.PointInput, len(event.Points)),
	}
	for i, p := range event.Points {
		req.Points[i] = dto.PointInput{ID: p.ID, Name: p.Name, Lat: p.Lat, Lng: p.Lng}
	}

	resp, err := w.sequencer.Sequence(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			done.Error = appErr.Code
		} else {
			done.Error = err.Error()
		}
		return done, nil
	}

	done.Mode = resp.Mode
	done.Steps = resp.Steps
	done.TotalDistanceKm = resp.TotalDistanceKm
	done.TotalDurationMin = resp.TotalDurationMin
	return done, nil
}

// publish отправляет результат, повторяя попытку до maxRetries раз
func (w *SequencingWorker) publish(ctx context.Context, done *domain.RouteSequenceDoneEvent) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.streamRepo.PublishToStream(ctx, domain.StreamRouteDone, done); err == nil {
			return nil
		}
		if attempt < w.maxRetries && !w.Pause(ctx, publishBackoff*time.Duration(attempt)) {
			break
		}
	}
	return err
}

func parseMessage(msg domain.StreamMessage) (*domain.RouteSequenceEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.RouteSequenceEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
