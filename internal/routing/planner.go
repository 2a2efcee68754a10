package routing

import (
	"math"

	"github.com/route-suggestion-service/internal/domain"
)

// SquaredDistance - квадрат евклидова расстояния в координатах (lon, lat).
// Плоское приближение без геодезической поправки.
func SquaredDistance(a, b domain.Coordinates) float64 {
	dLon := b.Lon() - a.Lon()
	dLat := b.Lat() - a.Lat()
	return dLon*dLon + dLat*dLat
}

// PlanRoute строит порядок обхода жадным алгоритмом ближайшего соседа.
//
// Маршрут начинается со start; на каждом шаге из оставшихся мест берётся
// ближайшее к последнему добавленному. При равных расстояниях побеждает
// первое в текущем порядке пула. Выбранное место удаляется из пула заменой
// на последний элемент. Сложность O(n^2); входной срез не изменяется.
func PlanRoute(selected []domain.Place, start domain.Place) []domain.Place {
	pool := make([]domain.Place, len(selected))
	copy(pool, selected)

	route := make([]domain.Place, 0, len(selected)+1)
	route = append(route, start)

	for len(pool) > 0 {
		last := route[len(route)-1].Coordinates

		best := 0
		bestDst := math.Inf(1)
		for i := range pool {
			if d := SquaredDistance(last, pool[i].Coordinates); d < bestDst {
				best = i
				bestDst = d
			}
		}

		route = append(route, pool[best])
		pool[best] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}

	return route
}
