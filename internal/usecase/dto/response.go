package dto

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/route-suggestion-service/internal/domain"
)

// RouteResponse - ответ на запрос маршрута
type RouteResponse struct {
	OK       bool        `json:"ok"`
	Movement string      `json:"movement"`
	Link     string      `json:"link"`
	Places   RoutePlaces `json:"places" swaggertype:"object"`
}

// EmptyRouteResponse - ответ, когда фильтр не нашёл ни одного места
func EmptyRouteResponse() *RouteResponse {
	return &RouteResponse{
		OK:       false,
		Movement: "",
		Link:     "",
		Places:   NewRoutePlaces(nil),
	}
}

// RoutePlaces - места маршрута, сериализуются объектом {id: place}.
// Ключи идут в порядке обхода объекта: индексы по возрастанию, затем
// остальные в порядке маршрута. Повторный id занимает первую позицию.
type RoutePlaces struct {
	ids  []domain.PlaceID
	byID map[domain.PlaceID]domain.Place
}

// NewRoutePlaces строит отображение по упорядоченному маршруту
func NewRoutePlaces(route []domain.Place) RoutePlaces {
	rp := RoutePlaces{
		ids:  make([]domain.PlaceID, 0, len(route)),
		byID: make(map[domain.PlaceID]domain.Place, len(route)),
	}
	for _, p := range route {
		if _, dup := rp.byID[p.ID]; !dup {
			rp.ids = append(rp.ids, p.ID)
		}
		rp.byID[p.ID] = p
	}
	return rp
}

// Len - количество различных мест
func (rp RoutePlaces) Len() int {
	return len(rp.ids)
}

// Get возвращает место по идентификатору
func (rp RoutePlaces) Get(id domain.PlaceID) (domain.Place, bool) {
	p, ok := rp.byID[id]
	return p, ok
}

// IDs возвращает идентификаторы в порядке сериализации
func (rp RoutePlaces) IDs() []domain.PlaceID {
	return domain.ObjectKeyOrder(rp.ids)
}

func (rp RoutePlaces) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range rp.IDs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(rp.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CatalogHealth - состояние каталога в ответе health
type CatalogHealth struct {
	Places      int `json:"places"`
	EntryPoints int `json:"entry_points"`
}

// HealthResponse - ответ health check
type HealthResponse struct {
	Status  string            `json:"status"`
	Catalog CatalogHealth     `json:"catalog"`
	Deps    map[string]string `json:"dependencies,omitempty"`
}

// StatsResponse - статистика построенных маршрутов
type StatsResponse struct {
	Stats *domain.RouteStatistics `json:"stats"`
}
