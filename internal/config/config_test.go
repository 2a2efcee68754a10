package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-suggestion-service/internal/config"
)

func TestLoadFrom(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		cfg, err := config.LoadFrom("testdata/missing.env")
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Server.Port)
		assert.Equal(t, config.CatalogSourceFile, cfg.Catalog.Source)
		assert.Equal(t, "data/places.json", cfg.Catalog.PlacesPath)
		assert.Equal(t, 7, cfg.Route.MaxPlaces)
		assert.Equal(t, 3, cfg.Route.MinPlaces)
		assert.Equal(t, "https://api.mapbox.com", cfg.Mapbox.BaseURL)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, 5*time.Minute, cfg.Cache.FilterTTL)
		assert.Equal(t, 20, cfg.Worker.BatchSize)
		assert.Equal(t, "*", cfg.CORSOrigins())
	})

	t.Run("values from file", func(t *testing.T) {
		cfg, err := config.LoadFrom("testdata/app.env")
		require.NoError(t, err)

		assert.Equal(t, 8088, cfg.Server.Port)
		assert.Equal(t, "/srv/catalog/places.json", cfg.Catalog.PlacesPath)
		assert.Equal(t, "pk.from-file", cfg.Mapbox.AccessToken)
		assert.Equal(t, 9, cfg.Route.MaxPlaces)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, time.Minute, cfg.Cache.FilterTTL)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("API_PORT", "9090")
		t.Setenv("MAPBOX_BASE_URL", "http://localhost:8080/")

		cfg, err := config.LoadFrom("testdata/app.env")
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "http://localhost:8080", cfg.Mapbox.BaseURL)
		assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
	})

	t.Run("unknown catalog source", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "s3")

		_, err := config.LoadFrom("testdata/missing.env")
		assert.Error(t, err)
	})

	t.Run("invalid route bounds", func(t *testing.T) {
		t.Setenv("ROUTE_MAX_PLACES", "0")

		_, err := config.LoadFrom("testdata/missing.env")
		assert.Error(t, err)
	})
}

func TestConfig_CORSOrigins(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{CORSAllowOrigins: " https://a.example , ,https://b.example"}}
	assert.Equal(t, "https://a.example,https://b.example", cfg.CORSOrigins())
}
