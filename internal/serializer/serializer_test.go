package serializer

import (
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRestaurant() models.Restaurant {
	pizza := &models.Pizza{ID: 7, Name: "Margherita", Ingredients: "Dough, Tomato Sauce, Cheese"}
	restaurant := models.Restaurant{ID: 3, Name: "Karen's Pizza Shack", Address: "address1"}
	restaurant.RestaurantPizzas = []models.RestaurantPizza{
		{ID: 11, Price: 12, RestaurantID: 3, PizzaID: 7, Pizza: pizza, Restaurant: &restaurant},
	}
	return restaurant
}

// node is a generic chain used to exercise the depth guard with distinct kinds
type node struct {
	kind string
	next *node
}

func (n node) ResourceName() string { return n.kind }

func (n node) Field(name string) (any, bool) {
	if name == "kind" {
		return n.kind, true
	}
	return nil, false
}

func (n node) Relation(name string) (any, bool) {
	if name == "next" {
		return n.next, true
	}
	return nil, false
}

func TestSerializeSummaryOnlySelectedFields(t *testing.T) {
	out, err := Serialize(sampleRestaurant(), RestaurantSummary)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"id":      uint(3),
		"name":    "Karen's Pizza Shack",
		"address": "address1",
	}, out)
}

func TestSerializeRestaurantDetail(t *testing.T) {
	out, err := Serialize(sampleRestaurant(), RestaurantDetail)
	require.NoError(t, err)

	items, ok := out["restaurant_pizzas"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, float64(12), item["price"])
	assert.Equal(t, uint(7), item["pizza_id"])
	assert.Equal(t, uint(3), item["restaurant_id"])
	assert.NotContains(t, item, "restaurant", "back-reference must not be expanded")

	pizza, ok := item["pizza"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Margherita", pizza["name"])
	assert.NotContains(t, pizza, "restaurant_pizzas")
	assert.NotContains(t, pizza, "restaurant")
}

func TestSerializeEmptyToManyIsEmptyList(t *testing.T) {
	out, err := Serialize(models.Restaurant{ID: 1, Name: "Empty"}, RestaurantDetail)
	require.NoError(t, err)

	items, ok := out["restaurant_pizzas"].([]map[string]any)
	require.True(t, ok)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSerializeNilToOneIsNull(t *testing.T) {
	out, err := Serialize(models.RestaurantPizza{ID: 1, Price: 5}, RestaurantPizzaDetail)
	require.NoError(t, err)

	assert.Contains(t, out, "pizza")
	assert.Nil(t, out["pizza"])
	assert.Nil(t, out["restaurant"])
}

func TestSerializeRejectsCycle(t *testing.T) {
	cyclic := View{
		Only: []string{"id"},
		Include: map[string]View{
			"restaurant_pizzas": {
				Only: []string{"id"},
				Include: map[string]View{
					"restaurant": RestaurantSummary,
				},
			},
		},
	}

	_, err := Serialize(sampleRestaurant(), cyclic)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestSerializeRejectsDepthBeyondMax(t *testing.T) {
	chain := node{kind: "a", next: &node{kind: "b", next: &node{kind: "c", next: &node{kind: "d"}}}}
	leaf := View{Only: []string{"kind"}}
	deep := View{Only: []string{"kind"}, Include: map[string]View{
		"next": {Only: []string{"kind"}, Include: map[string]View{
			"next": {Only: []string{"kind"}, Include: map[string]View{
				"next": leaf,
			}},
		}},
	}}
	require.Equal(t, 3, deep.Depth())

	_, err := Serialize(chain, deep)
	assert.ErrorIs(t, err, ErrDepthExceeded)

	out, err := Serialize(chain, deep.Include["next"])
	require.NoError(t, err)
	assert.Equal(t, "a", out["kind"])
}

func TestSerializeUnknownNames(t *testing.T) {
	testCases := []struct {
		name string
		view View
		want error
	}{
		{
			name: "unknown field",
			view: View{Only: []string{"id", "phone"}},
			want: ErrUnknownField,
		},
		{
			name: "unknown relation",
			view: View{Include: map[string]View{"owners": {}}},
			want: ErrUnknownRelation,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Serialize(sampleRestaurant(), tt.view)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSerializeListNeverNil(t *testing.T) {
	out, err := SerializeList([]models.Pizza{}, PizzaSummary)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = SerializeList([]models.Pizza{{ID: 1, Name: "Pepperoni", Ingredients: "Dough"}}, PizzaSummary)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"id": uint(1), "name": "Pepperoni", "ingredients": "Dough"}}, out)
}

func TestViewDepth(t *testing.T) {
	assert.Equal(t, 0, RestaurantSummary.Depth())
	assert.Equal(t, 2, RestaurantDetail.Depth())
	assert.Equal(t, 1, RestaurantPizzaDetail.Depth())
}
