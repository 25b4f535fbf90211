package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/finanzapp/finanzas_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// accountService provides account management operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account with its opening balance.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()

	balance := req.Balance
	if balance.IsZero() {
		balance = decimal.Zero
	}

	account := domain.Account{
		AccountID:     uuid.NewString(),
		Name:          req.Name,
		Balance:       balance,
		AccountNumber: req.AccountNumber,
		ImageURL:      req.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Account created", "account_id", account.AccountID)
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// UpdateAccount updates an account's details. The balance never changes here;
// it only moves together with ledger entries.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.ImageURL != nil {
		account.ImageURL = *req.ImageURL
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccountDetails(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}
	return account, nil
}

// DeleteAccount removes an account that no ledger entries reference.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Account deleted", "account_id", accountID)
	return nil
}
