package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/auth"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
)

// Context keys set by OAuth2Auth
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClientID = "clientID"
	ContextScopes   = "scopes"
)

const bearerPrefix = "Bearer "

// OAuth2Auth validates the Bearer JWT issued by the token endpoint and stores
// the user id, role, client id and scopes in the gin context (RFC 6750)
func OAuth2Auth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, errorCode, description := bearerToken(c.GetHeader("Authorization"))
		if errorCode != "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, errorCode, description)
			return
		}

		claims, err := auth.ParseAccessToken(tokenString, jwtSecret)
		if err != nil {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, err.Error())
			return
		}

		// ParseAccessToken already rejected unusable uids
		userID, _ := claims.UserIDValue()
		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)
		if clientID := claims.ClientID(); clientID != "" {
			c.Set(ContextClientID, clientID)
		}
		if claims.Scope != "" {
			c.Set(ContextScopes, claims.Scope)
		}

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
// On failure it returns the OAuth2 error code and a description.
func bearerToken(header string) (token, errorCode, description string) {
	switch {
	case header == "":
		return "", models.ErrInvalidRequest, "Missing Authorization header. A valid Bearer token is required."
	case !strings.HasPrefix(header, bearerPrefix):
		return "", models.ErrInvalidRequest, "Authorization header must use Bearer scheme. Format: 'Bearer <token>'"
	}

	token = strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", models.ErrInvalidToken, "Bearer token is empty"
	}
	return token, "", ""
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, status int, errorCode, description string) {
	c.Header("WWW-Authenticate", fmt.Sprintf(`Bearer error="%s"`, errorCode))
	c.AbortWithStatusJSON(status, models.NewOAuth2Error(errorCode, description))
}
