package dto_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/usecase/dto"
)

func TestRouteRequest_Token(t *testing.T) {
	assert.Equal(t, "a", dto.RouteRequest{MapToken: "a", MapboxToken: "b"}.Token())
	assert.Equal(t, "b", dto.RouteRequest{MapboxToken: "b"}.Token())
	assert.Empty(t, dto.RouteRequest{}.Token())
}

func TestRoutePlaces_MarshalJSON(t *testing.T) {
	t.Run("empty route is an empty object", func(t *testing.T) {
		data, err := json.Marshal(dto.EmptyRouteResponse())
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":false,"movement":"","link":"","places":{}}`, string(data))
	})

	t.Run("object key order", func(t *testing.T) {
		rp := dto.NewRoutePlaces([]domain.Place{
			{ID: "gate", Icon: "entry"},
			{ID: "12"},
			{ID: "park"},
			{ID: "3"},
		})

		data, err := json.Marshal(rp)
		require.NoError(t, err)

		assert.Equal(t, []domain.PlaceID{"3", "12", "gate", "park"}, rp.IDs())
		assert.Regexp(t, `^\{"3":\{"id":3,.*\},"12":\{"id":12,.*\},"gate":\{"id":"gate",.*\},"park":\{"id":"park",.*\}\}$`, string(data))
	})

	t.Run("duplicate id collapses", func(t *testing.T) {
		rp := dto.NewRoutePlaces([]domain.Place{
			{ID: "1", Title: "start"},
			{ID: "2"},
			{ID: "1", Title: "start"},
		})
		assert.Equal(t, 2, rp.Len())

		var decoded map[string]domain.Place
		data, err := json.Marshal(rp)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Len(t, decoded, 2)
		assert.Equal(t, "start", decoded["1"].Title)
	})
}
