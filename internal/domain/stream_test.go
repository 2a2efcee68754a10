package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoutePlannedEvent_Validate(t *testing.T) {
	tests := []struct {
		name        string
		event       RoutePlannedEvent
		expectedErr error
		description string
	}{
		{
			name: "complete event",
			event: RoutePlannedEvent{
				RouteID:   uuid.New(),
				Movement:  "walking",
				PlaceIDs:  []PlaceID{"1", "2"},
				PlannedAt: time.Now(),
			},
			expectedErr: nil,
			description: "Should accept an event with id and places",
		},
		{
			name: "missing route id",
			event: RoutePlannedEvent{
				PlaceIDs: []PlaceID{"1"},
			},
			expectedErr: ErrInvalidEvent,
			description: "Should reject an event without route id",
		},
		{
			name: "empty route",
			event: RoutePlannedEvent{
				RouteID: uuid.New(),
			},
			expectedErr: ErrInvalidEvent,
			description: "Should reject an event without places",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			assert.ErrorIs(t, err, tt.expectedErr, tt.description)
		})
	}
}
