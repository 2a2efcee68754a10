package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// BreakerSettings - параметры circuit breaker публикации
type BreakerSettings struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
	PublishTimeout   time.Duration
}

// DefaultBreakerSettings используются сервисом маршрутов
var DefaultBreakerSettings = BreakerSettings{
	FailureThreshold: 3,
	OpenTimeout:      30 * time.Second,
	PublishTimeout:   500 * time.Millisecond,
}

type eventPublisher struct {
	streams repository.StreamRepository
	breaker *gobreaker.CircuitBreaker[struct{}]
	timeout time.Duration
	logger  *zap.Logger
}

// NewEventPublisher публикует события в stream:route:planned через circuit breaker.
// После FailureThreshold ошибок подряд публикация сразу отвечает ErrOpenState.
func NewEventPublisher(streams repository.StreamRepository, settings BreakerSettings, logger *zap.Logger) repository.EventPublisher {
	p := &eventPublisher{
		streams: streams,
		timeout: settings.PublishTimeout,
		logger:  logger,
	}

	p.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "route-event-publisher",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return p
}

func (p *eventPublisher) PublishRoutePlanned(ctx context.Context, event *domain.RoutePlannedEvent) error {
	_, err := p.breaker.Execute(func() (struct{}, error) {
		pubCtx := ctx
		if p.timeout > 0 {
			var cancel context.CancelFunc
			pubCtx, cancel = context.WithTimeout(ctx, p.timeout)
			defer cancel()
		}
		return struct{}{}, p.streams.PublishToStream(pubCtx, domain.StreamRoutePlanned, event)
	})
	if err != nil {
		return fmt.Errorf("publish route planned: %w", err)
	}
	return nil
}
