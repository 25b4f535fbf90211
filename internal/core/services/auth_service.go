package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/finanzapp/finanzas_backend/internal/middleware"
	"github.com/finanzapp/finanzas_backend/internal/platform/config"
	"github.com/finanzapp/finanzas_backend/internal/utils"
)

// ErrInvalidCredentials is returned when the email or password is wrong.
// The message stays identical for both cases so login attempts can't probe
// which emails exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authService provides registration and credential verification.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new user with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("User registered", "user_id", user.UserID)
	return &user, nil
}

// Login verifies credentials and returns a signed JWT.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("User logged in", "user_id", user.UserID)
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// GetUserByID retrieves a user.
func (s *authService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
