// Package routing отбирает места для маршрута и упорядочивает их
// жадным алгоритмом ближайшего соседа.
package routing

import (
	"math/rand/v2"

	"github.com/route-suggestion-service/internal/domain"
)

const (
	// DefaultMaxPlaces - верхняя (исключённая) граница случайного количества мест
	DefaultMaxPlaces = 7
	// DefaultMinPlaces - минимум мест, если случайное количество оказалось меньше
	DefaultMinPlaces = 3
)

// RandomSource - источник равномерных случайных чисел в [0, n)
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

// IntN использует потокобезопасный глобальный генератор math/rand/v2
func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Selector реализует политику выбора подмножества мест и точки входа
type Selector struct {
	rnd       RandomSource
	maxPlaces int
	minPlaces int
}

// NewSelector создает Selector. Нулевые границы заменяются значениями по
// умолчанию, nil-источник - глобальным генератором.
func NewSelector(rnd RandomSource, maxPlaces, minPlaces int) *Selector {
	if rnd == nil {
		rnd = globalSource{}
	}
	if maxPlaces <= 0 {
		maxPlaces = DefaultMaxPlaces
	}
	if minPlaces <= 0 {
		minPlaces = DefaultMinPlaces
	}
	return &Selector{
		rnd:       rnd,
		maxPlaces: maxPlaces,
		minPlaces: minPlaces,
	}
}

// Select выбирает случайное подмножество отфильтрованных мест.
//
// Количество тянется равномерно из [0, maxPlaces); если оно меньше
// minPlaces, берётся min(minPlaces, len(filtered)). Затем столько же раз
// тянется случайный индекс; повторы схлопываются, поэтому итоговое
// подмножество может оказаться меньше. Места возвращаются в порядке
// первого вытягивания.
func (s *Selector) Select(filtered []domain.Place) ([]domain.Place, error) {
	if len(filtered) == 0 {
		return nil, domain.ErrNothingToSelect
	}

	count := s.rnd.IntN(s.maxPlaces)
	if count < s.minPlaces {
		count = min(s.minPlaces, len(filtered))
	}

	seen := make(map[int]struct{}, count)
	result := make([]domain.Place, 0, count)
	for i := 0; i < count; i++ {
		idx := s.rnd.IntN(len(filtered))
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		result = append(result, filtered[idx])
	}

	return result, nil
}

// PickEntry выбирает точку входа равномерно среди entries
func (s *Selector) PickEntry(entries []domain.Place) (domain.Place, error) {
	if len(entries) == 0 {
		return domain.Place{}, domain.ErrNoEntryPoint
	}
	return entries[s.rnd.IntN(len(entries))], nil
}
