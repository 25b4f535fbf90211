package services

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/finanzapp/finanzas_backend/internal/dto"
)

// AuthSvcFacade defines registration and credential verification.
type AuthSvcFacade interface {
	// Register creates a new user with a bcrypt-hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and returns a signed JWT.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// GetUserByID retrieves a user, used by the auth middleware to validate
	// token subjects.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
