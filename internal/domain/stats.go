package domain

import "time"

// RouteStatistics - агрегированная статистика построенных маршрутов
type RouteStatistics struct {
	TotalRoutes   int64            `json:"total_routes"`
	ByMovement    map[string]int64 `json:"by_movement"`
	TopPlaces     []PlaceVisits    `json:"top_places"`
	AvgDistanceKm float64          `json:"avg_distance_km"`
	LastUpdated   time.Time        `json:"last_updated"`
}

// PlaceVisits - сколько раз место попало в маршруты
type PlaceVisits struct {
	PlaceID PlaceID `json:"place_id"`
	Visits  int64   `json:"visits"`
}
