// Package catalogjson разбирает документы каталога: JSON-объекты вида
// {"<id>": {...}, ...} для мест и событий.
package catalogjson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/route-suggestion-service/internal/domain"
)

type entry struct {
	key string
	raw json.RawMessage
}

// DecodePlaces читает документ мест. Места возвращаются в порядке обхода
// каталога: числовые ключи по возрастанию, затем остальные в порядке
// документа. Идентификатор места всегда берётся из ключа.
func DecodePlaces(r io.Reader) ([]domain.Place, error) {
	entries, err := decodeObject(r)
	if err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}

	places := make([]domain.Place, 0, len(entries))
	for _, e := range entries {
		var p domain.Place
		if err := json.Unmarshal(e.raw, &p); err != nil {
			return nil, fmt.Errorf("decode place %q: %w", e.key, err)
		}
		// каталог индексируется ключом документа
		p.ID = domain.PlaceID(e.key)
		places = append(places, p)
	}
	return places, nil
}

// DecodeEvents читает документ событий
func DecodeEvents(r io.Reader) ([]domain.Event, error) {
	entries, err := decodeObject(r)
	if err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]domain.Event, 0, len(entries))
	for _, e := range entries {
		var ev domain.Event
		if err := json.Unmarshal(e.raw, &ev); err != nil {
			return nil, fmt.Errorf("decode event %q: %w", e.key, err)
		}
		ev.ID = e.key
		events = append(events, ev)
	}
	return events, nil
}

// decodeObject читает JSON-объект верхнего уровня, сохраняя порядок ключей.
// Повторный ключ сохраняет первую позицию и последнее значение.
func decodeObject(r io.Reader) ([]entry, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []entry
	positions := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}

		if i, dup := positions[key]; dup {
			entries[i].raw = raw
			continue
		}
		positions[key] = len(entries)
		entries = append(entries, entry{key: key, raw: raw})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}

	return orderKeys(entries), nil
}

// orderKeys раскладывает записи в порядке обхода объекта
func orderKeys(entries []entry) []entry {
	keys := make([]domain.PlaceID, len(entries))
	byKey := make(map[domain.PlaceID]entry, len(entries))
	for i, e := range entries {
		keys[i] = domain.PlaceID(e.key)
		byKey[keys[i]] = e
	}

	result := make([]entry, 0, len(entries))
	for _, k := range domain.ObjectKeyOrder(keys) {
		result = append(result, byKey[k])
	}
	return result
}
