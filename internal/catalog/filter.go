package catalog

import "github.com/route-suggestion-service/internal/domain"

// Filter возвращает места, удовлетворяющие domain.Matches, в порядке каталога.
// Запрос без интересов не совпадает ни с одним местом.
func (c *Catalog) Filter(interests domain.InterestMask, wishes domain.WishMask) []domain.Place {
	result := make([]domain.Place, 0)
	if interests == 0 {
		return result
	}

	wishes = wishes.Query()
	for i := range c.places {
		if domain.Matches(&c.places[i], interests, wishes) {
			result = append(result, c.places[i])
		}
	}
	return result
}
