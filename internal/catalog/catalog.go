// Package catalog хранит неизменяемый каталог мест, собранный один раз при
// старте из документов мест и событий.
package catalog

import (
	"fmt"

	"github.com/route-suggestion-service/internal/domain"
)

// Catalog - неизменяемый снимок каталога. После Build не модифицируется,
// поэтому безопасен для конкурентного чтения без блокировок.
type Catalog struct {
	places  []domain.Place
	index   map[domain.PlaceID]int
	entries []int
	source  domain.GeoJSONSource
}

// Build копирует места, применяет к ним события и возвращает снимок.
// События, ссылающиеся на несуществующие места, пропускаются.
func Build(places []domain.Place, events []domain.Event) (*Catalog, error) {
	c := &Catalog{
		places: make([]domain.Place, len(places)),
		index:  make(map[domain.PlaceID]int, len(places)),
	}
	copy(c.places, places)

	for i := range c.places {
		id := c.places[i].ID
		if _, exists := c.index[id]; exists {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicatePlace, id)
		}
		c.index[id] = i
	}

	for _, event := range events {
		for _, id := range event.Places {
			i, ok := c.index[id]
			if !ok {
				continue
			}
			c.places[i].Interests |= event.Interests
			c.places[i].Wishes |= event.Wishes
		}
	}

	features := make([]domain.Feature, 0, len(c.places))
	for i := range c.places {
		if c.places[i].IsEntry() {
			c.entries = append(c.entries, i)
		}
		features = append(features, domain.NewFeature(&c.places[i]))
	}

	c.source = domain.GeoJSONSource{
		Type: "geojson",
		Data: domain.FeatureCollection{
			Type:     "FeatureCollection",
			Features: features,
		},
	}

	return c, nil
}

// Len - количество мест
func (c *Catalog) Len() int {
	return len(c.places)
}

// Places возвращает копию списка мест в порядке каталога
func (c *Catalog) Places() []domain.Place {
	result := make([]domain.Place, len(c.places))
	copy(result, c.places)
	return result
}

// Get возвращает место по идентификатору
func (c *Catalog) Get(id domain.PlaceID) (domain.Place, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Place{}, false
	}
	return c.places[i], true
}

// Entries возвращает места с icon == "entry" в порядке каталога
func (c *Catalog) Entries() []domain.Place {
	result := make([]domain.Place, 0, len(c.entries))
	for _, i := range c.entries {
		result = append(result, c.places[i])
	}
	return result
}

// FeatureCollection возвращает GeoJSON-источник со всеми местами.
// Проекция строится один раз в Build; вызывающий не должен её изменять.
func (c *Catalog) FeatureCollection() domain.GeoJSONSource {
	return c.source
}
