package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
)

const testJWTSecret = "test-jwt-secret-key-32-characters"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.User{}, &models.OAuthClient{}, &models.OAuthToken{})
	require.NoError(t, err)

	return db
}

// createClient stores a client with a bcrypt-hashed secret owned by a new user with role
func createClient(t *testing.T, db *gorm.DB, clientID, secret, role string) *models.OAuthClient {
	user := &models.User{Email: clientID + "@example.com", Name: clientID, Role: role}
	require.NoError(t, db.Create(user).Error)

	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)

	client := &models.OAuthClient{
		ID:         clientID,
		Secret:     string(hashedSecret),
		Domain:     "http://localhost",
		Scopes:     "read write",
		UserID:     user.ID,
		GrantTypes: "client_credentials",
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func TestOAuthServerInitialization(t *testing.T) {
	db := setupTestDB(t)

	oauthService := NewOAuthService(db, testJWTSecret)
	assert.NotNil(t, oauthService)
	assert.NotNil(t, oauthService.GetServer())
}

func TestJWTTokenGeneration(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret)
	client := createClient(t, db, "test_client", "test_secret", models.RoleAdmin)

	tokenInfo, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "test_client",
		ClientSecret: "test_secret",
		Scope:        "read",
	})
	require.NoError(t, err)
	require.NotNil(t, tokenInfo)

	// The access token is a JWT signed with the configured secret carrying uid and role
	claims, err := ParseAccessToken(tokenInfo.GetAccess(), []byte(testJWTSecret))
	require.NoError(t, err)
	assert.Equal(t, client.GetUserID(), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "test_client", claims.ClientID())
	assert.Equal(t, "read", claims.Scope)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(AccessTokenLifetime), claims.ExpiresAt.Time, time.Minute)

	_, err = ParseAccessToken(tokenInfo.GetAccess(), []byte("another-secret-another-secret-123"))
	assert.Error(t, err)

	// Issued tokens are persisted
	var stored models.OAuthToken
	require.NoError(t, db.Where("access_token = ?", tokenInfo.GetAccess()).First(&stored).Error)
	assert.Equal(t, "test_client", stored.ClientID)
	assert.Nil(t, stored.RefreshToken)
}

func TestJWTTokenGenerationWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret)
	createClient(t, db, "test_client", "test_secret", models.RoleUser)

	_, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "test_client",
		ClientSecret: "wrong",
	})
	assert.Error(t, err)
}

func TestClientStoreIntegration(t *testing.T) {
	db := setupTestDB(t)
	createClient(t, db, "integration_test_client", "integration_test_secret", models.RoleUser)

	clientStore := NewGormClientStore(db)
	retrievedClient, err := clientStore.GetByID(context.Background(), "integration_test_client")
	require.NoError(t, err)
	assert.Equal(t, "integration_test_client", retrievedClient.GetID())
	assert.False(t, retrievedClient.IsPublic())

	verifier, ok := retrievedClient.(oauth2.ClientPasswordVerifier)
	require.True(t, ok)
	assert.True(t, verifier.VerifyPassword("integration_test_secret"))
	assert.False(t, verifier.VerifyPassword("nope"))

	_, err = clientStore.GetByID(context.Background(), "missing")
	assert.Error(t, err)
}

func TestTokenStoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret)
	createClient(t, db, "store_client", "store_secret", models.RoleUser)

	ti, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "store_client",
		ClientSecret: "store_secret",
	})
	require.NoError(t, err)

	store := NewGormTokenStore(db)
	loaded, err := store.GetByAccess(context.Background(), ti.GetAccess())
	require.NoError(t, err)
	assert.Equal(t, "store_client", loaded.GetClientID())
	assert.True(t, loaded.GetAccessExpiresIn() > 0)

	require.NoError(t, store.RemoveByAccess(context.Background(), ti.GetAccess()))
	_, err = store.GetByAccess(context.Background(), ti.GetAccess())
	assert.Error(t, err)

	_, err = store.GetByCode(context.Background(), "any")
	assert.Error(t, err)
}
