package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserService manages the users that own OAuth clients
type UserService interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	// GetOrCreateUser returns the user with the given email, creating it with role if absent.
	// The boolean reports whether the user was created.
	GetOrCreateUser(ctx context.Context, email, name, role string) (*models.User, bool, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	return inTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUserAlreadyExists
		}
		if user.Role == "" {
			user.Role = models.RoleUser
		}
		return tx.Create(user).Error
	})
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (s *userService) GetOrCreateUser(ctx context.Context, email, name, role string) (*models.User, bool, error) {
	user, err := s.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return user, false, nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, false, err
	}

	user = &models.User{Email: email, Name: name, Role: role}
	if err := s.CreateUser(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
