package models

import (
	"time"
)

// OAuthToken records an issued access token so it can be looked up or revoked
type OAuthToken struct {
	ID           uint      `gorm:"primaryKey"`
	ClientID     string    `gorm:"not null;index"`
	UserID       *string   // nil when no owning user was resolved
	AccessToken  string    `gorm:"uniqueIndex;not null"`
	RefreshToken *string   `gorm:"index"`
	Scopes       string
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}

// Expired reports whether the token is past its expiry at the given instant
func (t OAuthToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
