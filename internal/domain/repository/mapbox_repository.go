package repository

import "github.com/route-suggestion-service/internal/domain"

// DirectionsLinkBuilder собирает ссылку на Mapbox Directions API
type DirectionsLinkBuilder interface {
	// DirectionsLink возвращает URL запроса маршрута по упорядоченным местам
	DirectionsLink(route []domain.Place, movement, token string) string
}
