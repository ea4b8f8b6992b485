package services

import (
	"context"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant table
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by id
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas and their pizzas
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant together with its restaurant pizzas
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Order("id").Find(&restaurants).Error
	})
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return tx.
			Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			Preload("RestaurantPizzas.Pizza").
			First(&restaurant, id).Error
	})
	if err != nil {
		return models.Restaurant{}, notFound(err, ErrRestaurantNotFound)
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	restaurant.RestaurantPizzas = nil
	err := inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Create(&restaurant).Error
	})
	if err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			return notFound(err, ErrRestaurantNotFound)
		}
		// The foreign key cascades as well; deleting explicitly keeps backends
		// without enforced foreign keys consistent.
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
}
