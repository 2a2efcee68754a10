package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	// Hermitage -> St Isaac's Cathedral
	d := utils.HaversineDistance(59.9398, 30.3146, 59.9341, 30.3061)
	assert.InDelta(t, 0.79, d, 0.05)

	assert.Zero(t, utils.HaversineDistance(10, 10, 10, 10))
	// one degree of latitude
	assert.InDelta(t, 111.19, utils.HaversineDistance(0, 0, 1, 0), 0.01)
}

func TestRouteLengthKm(t *testing.T) {
	route := []domain.Place{
		{Coordinates: domain.Coordinates{0, 0}},
		{Coordinates: domain.Coordinates{0, 1}},
		{Coordinates: domain.Coordinates{0, 2}},
	}
	assert.InDelta(t, 222.39, utils.RouteLengthKm(route), 0.01)
	assert.Zero(t, utils.RouteLengthKm(route[:1]))
	assert.Zero(t, utils.RouteLengthKm(nil))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(59.93, 30.31))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
}
