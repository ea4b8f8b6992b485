package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/auth"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
)

// Dependencies are the shared resources the routes are built from
type Dependencies struct {
	DB *gorm.DB

	// OAuth issues tokens; required when AuthEnabled is true
	OAuth       *auth.OAuthService
	AuthEnabled bool
	JWTSecret   string

	// Logger receives one entry per request; nil disables request logging
	Logger *logrus.Logger
}

// New builds the gin engine serving the API
func New(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Metrics())
	if deps.Logger != nil {
		router.Use(middleware.RequestLogger(deps.Logger))
	}

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(deps.DB))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(deps.DB))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(deps.DB))
	healthController := controllers.NewHealthController(deps.DB)

	jwtSecret := []byte(deps.JWTSecret)
	admin := middleware.Protect(deps.AuthEnabled, jwtSecret, models.RoleAdmin)

	router.GET("/", healthController.Index)
	router.GET("/health", healthController.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", with(admin, restaurantController.DeleteRestaurant)...)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", with(admin, restaurantPizzaController.CreateRestaurantPizza)...)
	router.PATCH("/restaurant_pizzas/:id", with(admin, restaurantPizzaController.UpdateRestaurantPizza)...)
	router.DELETE("/restaurant_pizzas/:id", with(admin, restaurantPizzaController.DeleteRestaurantPizza)...)

	if deps.AuthEnabled && deps.OAuth != nil {
		clientController := controllers.NewClientController(services.NewClientService(deps.DB))

		router.POST("/oauth/token", deps.OAuth.HandleToken)

		protectedApi := router.Group("/api/v1/protected")
		protectedApi.Use(middleware.OAuth2Auth(jwtSecret), middleware.RequireRole(models.RoleAdmin))
		{
			protectedApi.POST("/clients", clientController.CreateClient)
			protectedApi.GET("/clients", clientController.ListClients)
			protectedApi.DELETE("/clients/:id", clientController.DeleteClient)
		}
	}

	return router
}

// with prepends guard handlers to handler
func with(guards []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(guards)+1)
	handlers = append(handlers, guards...)
	return append(handlers, handler)
}
