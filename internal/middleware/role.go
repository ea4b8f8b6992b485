package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
)

// RequireRole is a middleware that checks if the user has the required role.
// It must run after OAuth2Auth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUserID); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("User not authenticated"))
			return
		}

		userRole, ok := c.Get(ContextUserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewErrorResponse("User role not found in token"))
			return
		}

		if role, _ := userRole.(string); role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewErrorResponse("Insufficient permissions: "+requiredRole+" role required"))
			return
		}

		c.Next()
	}
}

// Protect returns the handlers guarding a route: none when auth is disabled,
// otherwise token validation followed by the role check.
func Protect(enabled bool, jwtSecret []byte, requiredRole string) []gin.HandlerFunc {
	if !enabled {
		return nil
	}
	return []gin.HandlerFunc{OAuth2Auth(jwtSecret), RequireRole(requiredRole)}
}
