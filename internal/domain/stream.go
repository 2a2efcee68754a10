package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamRoutePlanned = "stream:route:planned"
)

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// RoutePlannedEvent - событие о построенном маршруте, уходит в stream:route:planned
type RoutePlannedEvent struct {
	RouteID    uuid.UUID    `json:"route_id"`
	Interests  InterestMask `json:"interests"`
	Wishes     WishMask     `json:"wishes"`
	Movement   string       `json:"movement"`
	PlaceIDs   []PlaceID    `json:"place_ids"`
	DistanceKm float64      `json:"distance_km"`
	PlannedAt  time.Time    `json:"planned_at"`
}

// Validate проверяет минимальную целостность события из стрима
func (e *RoutePlannedEvent) Validate() error {
	if e.RouteID == uuid.Nil {
		return ErrInvalidEvent
	}
	if len(e.PlaceIDs) == 0 {
		return ErrInvalidEvent
	}
	return nil
}
