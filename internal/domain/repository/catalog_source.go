package repository

import (
	"context"

	"github.com/route-suggestion-service/internal/domain"
)

// CatalogSource отдаёт исходные документы каталога: места и события.
// Места возвращаются в порядке обхода каталога.
type CatalogSource interface {
	LoadPlaces(ctx context.Context) ([]domain.Place, error)
	LoadEvents(ctx context.Context) ([]domain.Event, error)
}
