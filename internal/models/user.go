package models

import (
	"time"
)

// Roles carried in access tokens
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User owns OAuth clients; its role is copied into every token those clients obtain
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Role      string    `gorm:"not null;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may mutate restaurant data when auth is enabled
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
