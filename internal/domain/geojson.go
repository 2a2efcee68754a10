package domain

// GeoJSON-представление каталога для источника карты на клиенте

// PointGeometry - геометрия точки
type PointGeometry struct {
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
}

// FeatureProperties - свойства точки каталога
type FeatureProperties struct {
	ID         PlaceID      `json:"id"`
	Title      string       `json:"title"`
	TitleShort string       `json:"title_short"`
	Color      string       `json:"color"`
	Icon       string       `json:"icon"`
	Interests  InterestMask `json:"interests"`
	Wishes     WishMask     `json:"wishes"`
}

// Feature - GeoJSON Feature
type Feature struct {
	Type       string            `json:"type"`
	ID         PlaceID           `json:"id"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureCollection - GeoJSON FeatureCollection
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// GeoJSONSource - источник данных в формате, который принимает map.addSource
type GeoJSONSource struct {
	Type string            `json:"type"`
	Data FeatureCollection `json:"data"`
}

// NewFeature проецирует место в GeoJSON Feature
func NewFeature(p *Place) Feature {
	return Feature{
		Type: "Feature",
		ID:   p.ID,
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: p.Coordinates,
		},
		Properties: FeatureProperties{
			ID:         p.ID,
			Title:      p.Title,
			TitleShort: p.TitleShort,
			Color:      p.Color,
			Icon:       p.Icon,
			Interests:  p.Interests,
			Wishes:     p.Wishes,
		},
	}
}
