package serializer

// Response shapes produced by the views, declared for the API documentation

// PizzaDoc is a pizza rendered through PizzaSummary
type PizzaDoc struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"Emma"`
	Ingredients string `json:"ingredients" example:"Dough, Tomato Sauce, Cheese"`
}

// RestaurantDoc is a restaurant rendered through RestaurantSummary
type RestaurantDoc struct {
	ID      uint   `json:"id" example:"1"`
	Name    string `json:"name" example:"Karen's Pizza Shack"`
	Address string `json:"address" example:"address1"`
}

// RestaurantPizzaDoc holds the scalar fields of a restaurant pizza
type RestaurantPizzaDoc struct {
	ID           uint    `json:"id" example:"1"`
	Price        float64 `json:"price" example:"10"`
	PizzaID      uint    `json:"pizza_id" example:"1"`
	RestaurantID uint    `json:"restaurant_id" example:"1"`
}

// RestaurantPizzaWithPizzaDoc is an entry of RestaurantDetailDoc.RestaurantPizzas
type RestaurantPizzaWithPizzaDoc struct {
	RestaurantPizzaDoc
	Pizza *PizzaDoc `json:"pizza"`
}

// RestaurantDetailDoc is a restaurant rendered through RestaurantDetail
type RestaurantDetailDoc struct {
	RestaurantDoc
	RestaurantPizzas []RestaurantPizzaWithPizzaDoc `json:"restaurant_pizzas"`
}

// RestaurantPizzaDetailDoc is a restaurant pizza rendered through RestaurantPizzaDetail
type RestaurantPizzaDetailDoc struct {
	RestaurantPizzaDoc
	Pizza      *PizzaDoc      `json:"pizza"`
	Restaurant *RestaurantDoc `json:"restaurant"`
}
