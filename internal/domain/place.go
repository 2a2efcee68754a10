package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// IconEntry - значение icon, отмечающее точку входа маршрута
const IconEntry = "entry"

// PlaceID - идентификатор места. В исходных данных встречается и как число,
// и как строка; хранится в текстовом виде.
type PlaceID string

// UnmarshalJSON принимает JSON-строку или JSON-число
func (id *PlaceID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("place id: %w", err)
		}
		*id = PlaceID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("place id: %w", err)
	}
	*id = PlaceID(n.String())
	return nil
}

// MarshalJSON отдаёт целочисленные идентификаторы числом, остальные строкой
func (id PlaceID) MarshalJSON() ([]byte, error) {
	if id.isInteger() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id PlaceID) isInteger() bool {
	s := string(id)
	if s == "" || len(s) > 15 {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false
	}
	// каноническая форма: без ведущих нулей и знака "+"
	return strconv.FormatInt(n, 10) == s
}

// maxArrayIndex - граница ключей-индексов объекта
const maxArrayIndex = 1<<32 - 1

// IsArrayIndex сообщает, что идентификатор - каноническое целое меньше 2^32-1.
// Такие ключи при обходе JSON-объекта идут первыми по возрастанию.
func (id PlaceID) IsArrayIndex() bool {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil || n >= maxArrayIndex {
		return false
	}
	return strconv.FormatUint(n, 10) == string(id)
}

// ObjectKeyOrder раскладывает ключи в порядке обхода объекта: индексы по
// возрастанию, затем остальные в исходном порядке. Входной срез не меняется.
func ObjectKeyOrder(ids []PlaceID) []PlaceID {
	var indexed, named []PlaceID
	for _, id := range ids {
		if id.IsArrayIndex() {
			indexed = append(indexed, id)
		} else {
			named = append(named, id)
		}
	}

	sort.SliceStable(indexed, func(i, j int) bool {
		a, _ := strconv.ParseUint(string(indexed[i]), 10, 64)
		b, _ := strconv.ParseUint(string(indexed[j]), 10, 64)
		return a < b
	})

	return append(indexed, named...)
}

// Coordinates - пара (долгота, широта)
type Coordinates [2]float64

// Lon возвращает долготу
func (c Coordinates) Lon() float64 { return c[0] }

// Lat возвращает широту
func (c Coordinates) Lat() float64 { return c[1] }

// Place представляет точку интереса каталога
type Place struct {
	ID          PlaceID      `json:"id"`
	Coordinates Coordinates  `json:"coordinates"`
	Title       string       `json:"title"`
	TitleShort  string       `json:"title_short"`
	Color       string       `json:"color"`
	Icon        string       `json:"icon"`
	Interests   InterestMask `json:"interests"`
	Wishes      WishMask     `json:"wishes"`
}

// IsEntry - может ли место быть началом маршрута
func (p *Place) IsEntry() bool {
	return p.Icon == IconEntry
}

// Event - временное событие, добавляющее биты интересов и пожеланий местам
type Event struct {
	ID        string       `json:"-"`
	Places    []PlaceID    `json:"places"`
	Interests InterestMask `json:"interests"`
	Wishes    WishMask     `json:"wishes"`
}

// Matches - предикат фильтра. Зарезервированные биты пожеланий запроса
// игнорируются; ценовой уровень, флаги placeWish и ovzWish должны совпадать
// точно, а интересы - пересекаться хотя бы в одной категории.
func Matches(p *Place, interests InterestMask, wishes WishMask) bool {
	if !interests.Intersects(p.Interests) {
		return false
	}

	wishes = wishes.Query()
	return wishes.PriceTier() == p.Wishes.PriceTier() &&
		wishes.PlaceFlags() == p.Wishes.PlaceFlags() &&
		wishes.OVZ() == p.Wishes.OVZ()
}
