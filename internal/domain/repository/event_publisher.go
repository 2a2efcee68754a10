package repository

import (
	"context"

	"github.com/route-suggestion-service/internal/domain"
)

// EventPublisher публикует события о построенных маршрутах
type EventPublisher interface {
	PublishRoutePlanned(ctx context.Context, event *domain.RoutePlannedEvent) error
}
