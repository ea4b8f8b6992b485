package serializer

// Field sets shared by the API views
var (
	restaurantFields      = []string{"id", "name", "address"}
	pizzaFields           = []string{"id", "name", "ingredients"}
	restaurantPizzaFields = []string{"id", "price", "pizza_id", "restaurant_id"}
)

var (
	// RestaurantSummary is used by GET /restaurants
	RestaurantSummary = View{Only: restaurantFields}

	// PizzaSummary is used by GET /pizzas
	PizzaSummary = View{Only: pizzaFields}

	// RestaurantDetail is used by GET /restaurants/{id}: restaurant -> restaurant_pizzas -> pizza
	RestaurantDetail = View{
		Only: restaurantFields,
		Include: map[string]View{
			"restaurant_pizzas": {
				Only: restaurantPizzaFields,
				Include: map[string]View{
					"pizza": PizzaSummary,
				},
			},
		},
	}

	// RestaurantPizzaDetail is used by the restaurant_pizzas write endpoints
	RestaurantPizzaDetail = View{
		Only: restaurantPizzaFields,
		Include: map[string]View{
			"pizza":      PizzaSummary,
			"restaurant": RestaurantSummary,
		},
	}
)
