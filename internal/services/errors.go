package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is wrapped by every "entity id absent" error returned by this package.
// Handlers should translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

var (
	ErrRestaurantNotFound      = fmt.Errorf("restaurant %w", ErrNotFound)
	ErrPizzaNotFound           = fmt.Errorf("pizza %w", ErrNotFound)
	ErrRestaurantPizzaNotFound = fmt.Errorf("restaurant pizza %w", ErrNotFound)
)

// ValidationError is returned when a write is rejected before persistence.
// Handlers should translate it into an HTTP 400 response listing Errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// IsValidationError reports whether err carries a *ValidationError and returns it
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// notFound maps gorm's missing-record error to the given sentinel
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// inTransaction runs fn inside one transaction bound to the request context.
// Any error returned by fn rolls the transaction back.
func inTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
