package repositories

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for API users.
type UserRepositoryFacade interface {
	// SaveUser persists a new user. Fails with ErrDuplicate when the email
	// is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
