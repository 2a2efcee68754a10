package dto

// Маски приходят строками и приводятся к числу в use case:
// нечисловое значение считается нулём и ошибкой не является.

// RouteRequest - запрос на построение маршрута
type RouteRequest struct {
	Interests string `query:"interests"`
	Wishes    string `query:"wishes"`
	MapToken  string `query:"mapToken"`
	// MapboxToken - старое имя параметра токена
	MapboxToken string `query:"mapboxgl-token"`
}

// Token возвращает токен Mapbox из запроса, mapToken приоритетнее
func (r RouteRequest) Token() string {
	if r.MapToken != "" {
		return r.MapToken
	}
	return r.MapboxToken
}

// FilterRequest - запрос на фильтрацию мест по маскам
type FilterRequest struct {
	Interests string `query:"interests"`
	Wishes    string `query:"wishes"`
}

// DecodeRequest - запрос на разбор маски в номера битов
type DecodeRequest struct {
	Of string `query:"of"`
}

// StatsRequest - запрос статистики маршрутов
type StatsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}
