package models

const (
	// MinPrice and MaxPrice bound the price of a pizza at a restaurant (inclusive)
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza is the join entity stating that a pizza is offered at a restaurant for a price
type RestaurantPizza struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Price        float64     `gorm:"not null;check:price >= 1 AND price <= 30" json:"price"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint        `gorm:"not null;index" json:"pizza_id"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
	Pizza        *Pizza      `json:"pizza,omitempty"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

func (RestaurantPizza) ResourceName() string {
	return "restaurant_pizza"
}

func (rp RestaurantPizza) Field(name string) (any, bool) {
	switch name {
	case "id":
		return rp.ID, true
	case "price":
		return rp.Price, true
	case "restaurant_id":
		return rp.RestaurantID, true
	case "pizza_id":
		return rp.PizzaID, true
	}
	return nil, false
}

func (rp RestaurantPizza) Relation(name string) (any, bool) {
	switch name {
	case "restaurant":
		return rp.Restaurant, true
	case "pizza":
		return rp.Pizza, true
	}
	return nil, false
}
