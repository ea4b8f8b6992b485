package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/serializer"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their offers
	GetAllRestaurants(ctx *gin.Context)
	// GetRestaurantByID returns one restaurant with its pizzas
	GetRestaurantByID(ctx *gin.Context)
	// DeleteRestaurant deletes a restaurant and its offers
	DeleteRestaurant(ctx *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary List restaurants
// @Description Get all restaurants without their offers
// @Tags restaurants
// @Produce json
// @Success 200 {array} serializer.RestaurantDoc
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		respondReadError(ctx, err, models.MsgRestaurantNotFound)
		return
	}

	body, err := serializer.SerializeList(restaurants, serializer.RestaurantSummary)
	if err != nil {
		respondSerializeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, body)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with its restaurant pizzas and their pizza
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} serializer.RestaurantDetailDoc
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgRestaurantNotFound)
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		respondReadError(ctx, err, models.MsgRestaurantNotFound)
		return
	}
	respondSerialized(ctx, http.StatusOK, restaurant, serializer.RestaurantDetail)
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant pizza referencing it
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx, models.MsgRestaurantNotFound)
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondWriteError(ctx, err, models.MsgRestaurantNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
