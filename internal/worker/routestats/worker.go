// Package routestats читает события о построенных маршрутах из
// stream:route:planned и пополняет счётчики статистики.
package routestats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
	"github.com/route-suggestion-service/internal/metrics"
	"github.com/route-suggestion-service/internal/worker"
	"go.uber.org/zap"
)

const (
	// WorkerName - имя воркера в логах и менеджере
	WorkerName = "route-stats"

	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза при ошибке
)

// StatsRecorder учитывает одно событие маршрута
type StatsRecorder interface {
	RecordRoute(ctx context.Context, event *domain.RoutePlannedEvent) error
}

// Config - параметры чтения стрима
type Config struct {
	ConsumerGroup string
	ConsumerName  string
	BatchSize     int
	// BatchTimeout ограничивает чтение и обработку одного batch
	BatchTimeout time.Duration
}

// Worker обрабатывает события stream:route:planned
type Worker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	recorder   StatsRecorder
	batchSize  int
	timeout    time.Duration
}

// NewWorker создает новый Worker
func NewWorker(
	streamRepo repository.StreamRepository,
	recorder StatsRecorder,
	cfg Config,
	logger *zap.Logger,
) *Worker {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	return &Worker{
		BaseWorker: worker.NewBaseWorker(WorkerName, cfg.ConsumerGroup, cfg.ConsumerName, logger),
		streamRepo: streamRepo,
		recorder:   recorder,
		batchSize:  cfg.BatchSize,
		timeout:    cfg.BatchTimeout,
	}
}

// Start запускает воркер
func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting route stats worker",
		zap.String("stream", domain.StreamRoutePlanned),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRoutePlanned, w.ConsumerGroup()); err != nil {
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
}

// ProcessBatch читает и обрабатывает один batch сообщений.
// Возвращает количество прочитанных сообщений.
func (w *Worker) ProcessBatch(ctx context.Context) (int, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRoutePlanned,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	ackIDs := make([]string, 0, len(messages))
	recorded := 0

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			metrics.WorkerMessagesProcessed.WithLabelValues("invalid").Inc()
			// битое сообщение подтверждаем, иначе оно застрянет в PEL
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if err := w.recorder.RecordRoute(ctx, event); err != nil {
			if errors.Is(err, domain.ErrInvalidEvent) {
				metrics.WorkerMessagesProcessed.WithLabelValues("invalid").Inc()
				ackIDs = append(ackIDs, msg.ID)
				continue
			}
			// без ACK сообщение остаётся в PEL группы
			logger.Error("Failed to record route",
				zap.String("message_id", msg.ID),
				zap.String("route_id", event.RouteID.String()),
				zap.Error(err))
			metrics.WorkerMessagesProcessed.WithLabelValues("failed").Inc()
			continue
		}

		metrics.WorkerMessagesProcessed.WithLabelValues("recorded").Inc()
		ackIDs = append(ackIDs, msg.ID)
		recorded++
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRoutePlanned, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Debug("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("recorded", recorded),
		zap.Int("acked", len(ackIDs)))

	return len(messages), nil
}

func parseMessage(msg domain.StreamMessage) (*domain.RoutePlannedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("message %s has no data field", msg.ID)
	}

	var event domain.RoutePlannedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("unmarshal route event: %w", err)
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	return &event, nil
}
