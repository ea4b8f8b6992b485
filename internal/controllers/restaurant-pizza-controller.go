package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/serializer"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza offers a pizza at a restaurant
	CreateRestaurantPizza(ctx *gin.Context)
	// UpdateRestaurantPizza changes the price of an offer
	UpdateRestaurantPizza(ctx *gin.Context)
	// DeleteRestaurantPizza removes an offer
	DeleteRestaurantPizza(ctx *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body services.CreateRestaurantPizzaInput true "Restaurant pizza"
// @Success 201 {object} serializer.RestaurantPizzaDetailDoc
// @Failure 400 {object} models.ValidationErrorResponse
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input services.CreateRestaurantPizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	if err != nil {
		respondWriteError(ctx, err, models.MsgRestaurantPizzaNotFound)
		return
	}
	respondSerialized(ctx, http.StatusCreated, created, serializer.RestaurantPizzaDetail)
}

// UpdateRestaurantPizza godoc
// @Summary Update a restaurant pizza
// @Description Change the price of a restaurant pizza. Pizza and restaurant cannot be changed.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Param restaurant_pizza body services.UpdateRestaurantPizzaInput true "New price"
// @Success 200 {object} serializer.RestaurantPizzaDetailDoc
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurant_pizzas/{id} [patch]
func (c *restaurantPizzaController) UpdateRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgRestaurantPizzaNotFound)
		return
	}

	var input services.UpdateRestaurantPizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	updated, err := c.service.UpdateRestaurantPizza(ctx.Request.Context(), id, input)
	if err != nil {
		respondWriteError(ctx, err, models.MsgRestaurantPizzaNotFound)
		return
	}
	respondSerialized(ctx, http.StatusOK, updated, serializer.RestaurantPizzaDetail)
}

// DeleteRestaurantPizza godoc
// @Summary Delete a restaurant pizza
// @Description Delete a restaurant pizza by its ID
// @Tags restaurant_pizzas
// @Param id path int true "RestaurantPizza ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurant_pizzas/{id} [delete]
func (c *restaurantPizzaController) DeleteRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgRestaurantPizzaNotFound)
		return
	}

	if err := c.service.DeleteRestaurantPizza(ctx.Request.Context(), id); err != nil {
		respondWriteError(ctx, err, models.MsgRestaurantPizzaNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
