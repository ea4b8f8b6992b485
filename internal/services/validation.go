package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
)

// CreateRestaurantPizzaInput carries the fields accepted when offering a pizza at a restaurant
type CreateRestaurantPizzaInput struct {
	Price        float64 `json:"price" validate:"gte=1,lte=30" example:"5"`
	PizzaID      uint    `json:"pizza_id" validate:"required" example:"1"`
	RestaurantID uint    `json:"restaurant_id" validate:"required" example:"3"`
}

// UpdateRestaurantPizzaInput carries the mutable fields of a restaurant pizza
type UpdateRestaurantPizzaInput struct {
	Price float64 `json:"price" validate:"gte=1,lte=30" example:"12"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report API field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput runs struct validation and returns one message per failing field
func validateInput(input any) []string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "price":
		return fmt.Sprintf("price must be between %d and %d", models.MinPrice, models.MaxPrice)
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
