package file

import (
	"context"
	"fmt"
	"os"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
	"github.com/route-suggestion-service/internal/repository/catalogjson"
	"go.uber.org/zap"
)

type catalogSource struct {
	placesPath string
	eventsPath string
	logger     *zap.Logger
}

// NewCatalogSource создает источник каталога из двух JSON-файлов на диске
func NewCatalogSource(placesPath, eventsPath string, logger *zap.Logger) repository.CatalogSource {
	return &catalogSource{
		placesPath: placesPath,
		eventsPath: eventsPath,
		logger:     logger,
	}
}

// LoadPlaces читает документ мест
func (s *catalogSource) LoadPlaces(ctx context.Context) ([]domain.Place, error) {
	f, err := os.Open(s.placesPath)
	if err != nil {
		return nil, fmt.Errorf("open places file: %w", err)
	}
	defer f.Close()

	places, err := catalogjson.DecodePlaces(f)
	if err != nil {
		s.logger.Error("Failed to decode places file",
			zap.String("path", s.placesPath),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Places file loaded",
		zap.String("path", s.placesPath),
		zap.Int("count", len(places)))
	return places, nil
}

// LoadEvents читает документ событий
func (s *catalogSource) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	f, err := os.Open(s.eventsPath)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	events, err := catalogjson.DecodeEvents(f)
	if err != nil {
		s.logger.Error("Failed to decode events file",
			zap.String("path", s.eventsPath),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Events file loaded",
		zap.String("path", s.eventsPath),
		zap.Int("count", len(events)))
	return events, nil
}
