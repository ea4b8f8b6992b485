package auth

import (
	"time"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
)

// AccessTokenLifetime is how long issued access tokens stay valid
const AccessTokenLifetime = 2 * time.Hour

// OAuthService issues JWT access tokens to registered clients
type OAuthService struct {
	server  *server.Server
	clients services.ClientService
}

func NewOAuthService(db *gorm.DB, jwtSecret string) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: AccessTokenLifetime})

	// JWT access tokens carry uid and role claims read by middleware.OAuth2Auth
	manager.MapAccessGenerate(NewCustomJWTAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS512, db))

	// Configure token store
	manager.MustTokenStorage(NewGormTokenStore(db), nil)

	// Configure client store
	manager.MapClientStorage(NewGormClientStore(db))

	srv := server.NewDefaultServer(manager)
	srv.SetAllowedGrantType(oauth2.ClientCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &OAuthService{
		server:  srv,
		clients: services.NewClientService(db),
	}
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}
