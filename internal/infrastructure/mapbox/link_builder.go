package mapbox

import (
	"strconv"
	"strings"

	"github.com/route-suggestion-service/internal/config"
	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
)

const (
	DefaultBaseURL = "https://api.mapbox.com"

	MovementWalking = "walking"
	MovementCycling = "cycling"
)

type linkBuilder struct {
	baseURL      string
	defaultToken string
}

// NewLinkBuilder создает сборщик ссылок Directions API.
// Токен из конфига подставляется, если запрос пришёл без токена.
func NewLinkBuilder(cfg *config.MapboxConfig) repository.DirectionsLinkBuilder {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &linkBuilder{
		baseURL:      baseURL,
		defaultToken: cfg.AccessToken,
	}
}

// Movement выбирает профиль Directions по маске интересов
func Movement(interests domain.InterestMask) string {
	if interests.Has(domain.InterestCycling) {
		return MovementCycling
	}
	return MovementWalking
}

// DirectionsLink собирает
// {base}/directions/v5/mapbox/{movement}/{lon,lat;...}?steps=true&geometries=geojson&access_token={token}.
// Координаты в кратчайшей десятичной записи, токен как есть.
func (b *linkBuilder) DirectionsLink(route []domain.Place, movement, token string) string {
	if token == "" {
		token = b.defaultToken
	}

	var sb strings.Builder
	sb.WriteString(b.baseURL)
	sb.WriteString("/directions/v5/mapbox/")
	sb.WriteString(movement)
	sb.WriteByte('/')
	for i, p := range route {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(formatCoordinate(p.Coordinates.Lon()))
		sb.WriteByte(',')
		sb.WriteString(formatCoordinate(p.Coordinates.Lat()))
	}
	sb.WriteString("?steps=true&geometries=geojson&access_token=")
	sb.WriteString(token)
	return sb.String()
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
