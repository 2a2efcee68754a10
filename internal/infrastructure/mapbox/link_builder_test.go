package mapbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/route-suggestion-service/internal/config"
	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/infrastructure/mapbox"
)

func TestMovement(t *testing.T) {
	tests := []struct {
		name      string
		interests domain.InterestMask
		want      string
	}{
		{"no interests", 0, "walking"},
		{"cycling bit", 1 << 3, "cycling"},
		{"cycling among others", 1<<3 | 1<<0 | 1<<5, "cycling"},
		{"other bits only", 1<<2 | 1<<4, "walking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapbox.Movement(tt.interests))
		})
	}
}

func TestLinkBuilder_DirectionsLink(t *testing.T) {
	route := []domain.Place{
		{ID: "1", Coordinates: domain.Coordinates{30.3141, 59.9386}},
		{ID: "2", Coordinates: domain.Coordinates{30.3, 59.95}},
		{ID: "3", Coordinates: domain.Coordinates{-0.1, 10}},
	}

	t.Run("template", func(t *testing.T) {
		b := mapbox.NewLinkBuilder(&config.MapboxConfig{})
		link := b.DirectionsLink(route, "walking", "pk.abc")
		assert.Equal(t,
			"https://api.mapbox.com/directions/v5/mapbox/walking/30.3141,59.9386;30.3,59.95;-0.1,10"+
				"?steps=true&geometries=geojson&access_token=pk.abc",
			link)
	})

	t.Run("scenario", func(t *testing.T) {
		b := mapbox.NewLinkBuilder(&config.MapboxConfig{BaseURL: mapbox.DefaultBaseURL})
		link := b.DirectionsLink([]domain.Place{
			{ID: "A", Coordinates: domain.Coordinates{0, 0}},
			{ID: "B", Coordinates: domain.Coordinates{1, 1}},
		}, "walking", "T")
		assert.Equal(t,
			"https://api.mapbox.com/directions/v5/mapbox/walking/0,0;1,1?steps=true&geometries=geojson&access_token=T",
			link)
	})

	t.Run("token verbatim", func(t *testing.T) {
		b := mapbox.NewLinkBuilder(&config.MapboxConfig{})
		link := b.DirectionsLink(route[:1], "cycling", "a&b=c")
		assert.Equal(t,
			"https://api.mapbox.com/directions/v5/mapbox/cycling/30.3141,59.9386?steps=true&geometries=geojson&access_token=a&b=c",
			link)
	})

	t.Run("default token and custom base", func(t *testing.T) {
		b := mapbox.NewLinkBuilder(&config.MapboxConfig{BaseURL: "http://localhost:9000/", AccessToken: "pk.default"})
		link := b.DirectionsLink(route[:1], "walking", "")
		assert.Equal(t,
			"http://localhost:9000/directions/v5/mapbox/walking/30.3141,59.9386?steps=true&geometries=geojson&access_token=pk.default",
			link)
	})

	t.Run("request token wins over default", func(t *testing.T) {
		b := mapbox.NewLinkBuilder(&config.MapboxConfig{AccessToken: "pk.default"})
		link := b.DirectionsLink(route[:1], "walking", "pk.user")
		assert.Contains(t, link, "access_token=pk.user")
		assert.NotContains(t, link, "pk.default")
	})
}
