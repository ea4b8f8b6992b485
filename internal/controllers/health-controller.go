package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
)

// ServiceName is reported by the health endpoint
const ServiceName = "restaurant-pizza-api"

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Service   string `json:"service" example:"restaurant-pizza-api"`
	Database  string `json:"database" example:"up"`
}

// HealthController serves the banner and health endpoints
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Index godoc
// @Summary Index
// @Description HTML banner
// @Tags health
// @Produce html
// @Success 200 {string} string "<h1>Code challenge</h1>"
// @Router / [get]
func (hc *HealthController) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (hc *HealthController) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   ServiceName,
		Database:  "up",
	}

	if err := database.Ping(hc.db); err != nil {
		log.WithError(err).Warn("Database ping failed")
		response.Status = "unhealthy"
		response.Database = "down"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}
