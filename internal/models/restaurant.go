package models

// Restaurant represents a place that serves pizzas at its own prices
type Restaurant struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Address          string            `json:"address"`
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant_pizzas,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// ResourceName identifies the entity kind when rendering nested views
func (Restaurant) ResourceName() string {
	return "restaurant"
}

// Field returns the scalar value stored under the given API field name
func (r Restaurant) Field(name string) (any, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "name":
		return r.Name, true
	case "address":
		return r.Address, true
	}
	return nil, false
}

// Relation returns the related entities stored under the given API relation name
func (r Restaurant) Relation(name string) (any, bool) {
	switch name {
	case "restaurant_pizzas":
		return r.RestaurantPizzas, true
	}
	return nil, false
}
