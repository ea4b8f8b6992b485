package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
)

func setupTokenRouter(t *testing.T) (*gin.Engine, *OAuthService) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret)
	createClient(t, db, "test_client_id", "test_secret", models.RoleAdmin)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", oauthService.HandleToken)
	return router, oauthService
}

func postToken(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClientCredentialsFlow(t *testing.T) {
	router, _ := setupTokenRouter(t)

	w := postToken(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"test_client_id"},
		"client_secret": {"test_secret"},
		"scope":         {"read"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response["token_type"])
	assert.Equal(t, "read", response["scope"])
	assert.Equal(t, AccessTokenLifetime.Seconds(), response["expires_in"])

	accessToken, ok := response["access_token"].(string)
	require.True(t, ok)
	assert.Equal(t, 2, strings.Count(accessToken, "."), "access token should be a JWT")
}

func TestClientCredentialsErrors(t *testing.T) {
	testCases := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantError  string
	}{
		{
			name:       "wrong secret",
			form:       url.Values{"grant_type": {"client_credentials"}, "client_id": {"test_client_id"}, "client_secret": {"wrong_secret"}},
			wantStatus: http.StatusUnauthorized,
			wantError:  models.ErrInvalidClient,
		},
		{
			name:       "unknown client",
			form:       url.Values{"grant_type": {"client_credentials"}, "client_id": {"ghost"}, "client_secret": {"test_secret"}},
			wantStatus: http.StatusUnauthorized,
			wantError:  models.ErrInvalidClient,
		},
		{
			name:       "missing secret",
			form:       url.Values{"grant_type": {"client_credentials"}, "client_id": {"test_client_id"}},
			wantStatus: http.StatusBadRequest,
			wantError:  models.ErrInvalidRequest,
		},
		{
			name:       "unsupported grant",
			form:       url.Values{"grant_type": {"password"}, "client_id": {"test_client_id"}, "client_secret": {"test_secret"}},
			wantStatus: http.StatusBadRequest,
			wantError:  models.ErrUnsupportedGrantType,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTokenRouter(t)
			w := postToken(router, tt.form)

			assert.Equal(t, tt.wantStatus, w.Code)
			var response models.OAuth2Error
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantError, response.Error)
		})
	}
}
