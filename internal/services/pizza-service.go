package services

import (
	"context"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza table
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by id
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza
	CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Order("id").Find(&pizzas).Error
	})
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return tx.First(&pizza, id).Error
	})
	if err != nil {
		return models.Pizza{}, notFound(err, ErrPizzaNotFound)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	pizza.ID = 0
	pizza.RestaurantPizzas = nil
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Create(&pizza).Error
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}
