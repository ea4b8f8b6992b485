package models

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is a machine client allowed to request access tokens.
// It implements oauth2.ClientInfo and oauth2.ClientPasswordVerifier.
type OAuthClient struct {
	ID          string         `gorm:"primaryKey" json:"client_id"`
	Secret      string         `gorm:"not null" json:"-"` // bcrypt hash
	Name        string         `json:"name"`
	Domain      string         `json:"domain"`
	UserID      uint           `json:"user_id"`     // owning user, source of the token role
	Scopes      string         `json:"scopes"`      // space-separated list of allowed scopes
	GrantTypes  string         `json:"grant_types"` // space-separated list, empty allows client_credentials
	RedirectURI string         `json:"redirect_uri"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

func (c *OAuthClient) GetID() string {
	return c.ID
}

func (c *OAuthClient) GetSecret() string {
	return c.Secret
}

func (c *OAuthClient) GetDomain() string {
	return c.Domain
}

func (c *OAuthClient) IsPublic() bool {
	return false
}

func (c *OAuthClient) GetUserID() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}

// VerifyPassword compares a plain secret against the stored bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}

// AllowsGrant reports whether the client may use the given grant type
func (c *OAuthClient) AllowsGrant(grantType string) bool {
	grants := strings.Fields(c.GrantTypes)
	if len(grants) == 0 {
		return grantType == "client_credentials"
	}
	for _, g := range grants {
		if g == grantType {
			return true
		}
	}
	return false
}
