package dto

import (
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name          string          `json:"name" binding:"required"`
	Balance       decimal.Decimal `json:"balance"` // Opening balance, defaults to zero
	AccountNumber string          `json:"accountNumber"`
	ImageURL      string          `json:"imageURL"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	AccountNumber string          `json:"accountNumber"`
	ImageURL      string          `json:"imageURL"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Balance is absent on purpose: it only moves with ledger entries.
type UpdateAccountRequest struct {
	Name          *string `json:"name"`
	AccountNumber *string `json:"accountNumber"`
	ImageURL      *string `json:"imageURL"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		Balance:       acc.Balance,
		AccountNumber: acc.AccountNumber,
		ImageURL:      acc.ImageURL,
		CreatedAt:     acc.CreatedAt,
		UpdatedAt:     acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
