package models

// Pizza represents a pizza recipe that restaurants can offer
type Pizza struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Ingredients      string            `json:"ingredients"` // comma-separated
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE" json:"restaurant_pizzas,omitempty"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

func (Pizza) ResourceName() string {
	return "pizza"
}

func (p Pizza) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "name":
		return p.Name, true
	case "ingredients":
		return p.Ingredients, true
	}
	return nil, false
}

func (p Pizza) Relation(name string) (any, bool) {
	switch name {
	case "restaurant_pizzas":
		return p.RestaurantPizzas, true
	}
	return nil, false
}
