package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestParseAccessToken(t *testing.T) {
	now := time.Now()
	valid := func() *AccessClaims {
		return &AccessClaims{
			UserID: "3",
			Role:   "user",
			RegisteredClaims: jwt.RegisteredClaims{
				Audience:  jwt.ClaimStrings{"client"},
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	claims, err := ParseAccessToken(sign(t, jwt.SigningMethodHS512, []byte(testJWTSecret), valid()), []byte(testJWTSecret))
	require.NoError(t, err)
	assert.Equal(t, "client", claims.ClientID())
	id, err := claims.UserIDValue()
	require.NoError(t, err)
	assert.Equal(t, uint(3), id)

	testCases := []struct {
		name   string
		mutate func(c *AccessClaims)
		method jwt.SigningMethod
	}{
		{name: "expired", mutate: func(c *AccessClaims) { c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute)) }},
		{name: "no expiry", mutate: func(c *AccessClaims) { c.ExpiresAt = nil }},
		{name: "issued in the future", mutate: func(c *AccessClaims) { c.IssuedAt = jwt.NewNumericDate(now.Add(time.Hour)) }},
		{name: "missing uid", mutate: func(c *AccessClaims) { c.UserID = "" }},
		{name: "zero uid", mutate: func(c *AccessClaims) { c.UserID = "0" }},
		{name: "non numeric uid", mutate: func(c *AccessClaims) { c.UserID = "abc" }},
		{name: "missing role", mutate: func(c *AccessClaims) { c.Role = "" }},
		{name: "unknown role", mutate: func(c *AccessClaims) { c.Role = "root" }},
		{name: "none algorithm", mutate: func(*AccessClaims) {}, method: jwt.SigningMethodNone},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			var token string
			if tt.method == jwt.SigningMethodNone {
				token = sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, c)
			} else {
				token = sign(t, jwt.SigningMethodHS512, []byte(testJWTSecret), c)
			}

			_, err := ParseAccessToken(token, []byte(testJWTSecret))
			assert.Error(t, err)
		})
	}
}
