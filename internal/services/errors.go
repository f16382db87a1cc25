package services

import (
	"errors"
	"fmt"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/media"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/repositories"
)

// Error variables returned by every service. Handlers map them to HTTP statuses.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorage            = errors.New("storage error")
)

// invalid wraps a validation detail into ErrValidation.
func invalid(detail any) error {
	return fmt.Errorf("%w: %v", ErrValidation, detail)
}

// storeError translates repository errors into service errors.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repositories.ErrDuplicateKey):
		return ErrDuplicateKey
	case errors.Is(err, repositories.ErrForeignKey):
		return invalid(repositories.ErrForeignKey)
	default:
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
}

// mediaError translates upload errors. Bad input is a validation error,
// anything else is a storage failure.
func mediaError(err error) error {
	switch {
	case errors.Is(err, media.ErrTooManyFiles),
		errors.Is(err, media.ErrUnsupportedType),
		errors.Is(err, media.ErrEmptyFile):
		return invalid(err)
	default:
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
}
