package services

import (
	"context"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService manages the prices at which restaurants offer pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the input and creates the join row
	CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.RestaurantPizza, error)
	// GetRestaurantPizzaByID retrieves a restaurant pizza with its pizza and restaurant
	GetRestaurantPizzaByID(ctx context.Context, id uint) (models.RestaurantPizza, error)
	// UpdateRestaurantPizza changes the price of an existing restaurant pizza
	UpdateRestaurantPizza(ctx context.Context, id uint, input UpdateRestaurantPizzaInput) (models.RestaurantPizza, error)
	// DeleteRestaurantPizza deletes a restaurant pizza by its ID
	DeleteRestaurantPizza(ctx context.Context, id uint) error
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.RestaurantPizza, error) {
	problems := validateInput(input)

	var created models.RestaurantPizza
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if input.PizzaID != 0 {
			ok, err := exists(tx, &models.Pizza{}, input.PizzaID)
			if err != nil {
				return err
			}
			if !ok {
				problems = append(problems, "pizza_id must reference an existing pizza")
			}
		}
		if input.RestaurantID != 0 {
			ok, err := exists(tx, &models.Restaurant{}, input.RestaurantID)
			if err != nil {
				return err
			}
			if !ok {
				problems = append(problems, "restaurant_id must reference an existing restaurant")
			}
		}
		if len(problems) > 0 {
			return &ValidationError{Errors: problems}
		}

		created = models.RestaurantPizza{
			Price:        input.Price,
			PizzaID:      input.PizzaID,
			RestaurantID: input.RestaurantID,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		return loadRelations(tx, &created)
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(ctx context.Context, id uint) (models.RestaurantPizza, error) {
	var rp models.RestaurantPizza
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		rp.ID = id
		return loadRelations(tx, &rp)
	})
	if err != nil {
		return models.RestaurantPizza{}, notFound(err, ErrRestaurantPizzaNotFound)
	}
	return rp, nil
}

func (s *restaurantPizzaService) UpdateRestaurantPizza(ctx context.Context, id uint, input UpdateRestaurantPizzaInput) (models.RestaurantPizza, error) {
	var rp models.RestaurantPizza
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.First(&rp, id).Error; err != nil {
			return notFound(err, ErrRestaurantPizzaNotFound)
		}
		if problems := validateInput(input); len(problems) > 0 {
			return &ValidationError{Errors: problems}
		}
		// Only the price column is written; foreign keys stay untouched
		if err := tx.Model(&rp).Update("price", input.Price).Error; err != nil {
			return err
		}
		return loadRelations(tx, &rp)
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return rp, nil
}

func (s *restaurantPizzaService) DeleteRestaurantPizza(ctx context.Context, id uint) error {
	return inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		result := tx.Delete(&models.RestaurantPizza{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRestaurantPizzaNotFound
		}
		return nil
	})
}

// loadRelations reloads rp by its ID with pizza and restaurant attached
func loadRelations(tx *gorm.DB, rp *models.RestaurantPizza) error {
	id := rp.ID
	*rp = models.RestaurantPizza{}
	return tx.Preload("Pizza").Preload("Restaurant").First(rp, id).Error
}

// exists reports whether a row with the given primary key is present in model's table
func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
