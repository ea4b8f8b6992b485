package auth

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
)

// AccessClaims are the claims carried by issued access tokens.
// The audience is the id of the client the token was issued to.
type AccessClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	Scope  string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// ClientID returns the first audience entry
func (c *AccessClaims) ClientID() string {
	if len(c.Audience) == 0 {
		return ""
	}
	return c.Audience[0]
}

// UserIDValue returns the numeric owner id
func (c *AccessClaims) UserIDValue() (uint, error) {
	if c.UserID == "" {
		return 0, errors.New("token missing required 'uid' claim")
	}
	id, err := strconv.ParseUint(c.UserID, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid uid claim %q: must be a positive number", c.UserID)
	}
	return uint(id), nil
}

var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// ParseAccessToken verifies the signature and time claims of tokenString and
// checks that the uid and role claims are usable
func ParseAccessToken(tokenString string, secret []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods(hmacMethods),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if _, err := claims.UserIDValue(); err != nil {
		return nil, err
	}

	switch claims.Role {
	case models.RoleAdmin, models.RoleUser:
	case "":
		return nil, errors.New("token missing required 'role' claim")
	default:
		return nil, fmt.Errorf("invalid role '%s'. Allowed roles: admin, user", claims.Role)
	}
	return claims, nil
}
