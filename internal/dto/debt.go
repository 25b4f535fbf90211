package dto

import (
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to register a debt.
type CreateDebtRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Description string          `json:"description" binding:"required"`
}

// PayDebtRequest defines the data needed to pay down a debt.
// Amount omitted means "pay the full pending balance".
type PayDebtRequest struct {
	AccountID string           `json:"accountID" binding:"required"`
	Amount    *decimal.Decimal `json:"amount"`
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	DebtID         string          `json:"debtID"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
}

// ToDebtResponse converts a domain.Debt to DebtResponse DTO
func ToDebtResponse(debt *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:         debt.DebtID,
		OriginalAmount: debt.OriginalAmount,
		PendingAmount:  debt.PendingAmount,
		Description:    debt.Description,
		Status:         string(debt.Status),
		CreatedAt:      debt.CreatedAt,
		PaidAt:         debt.PaidAt,
	}
}

// ToListDebtResponse converts a slice of domain.Debt to DTOs
func ToListDebtResponse(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i, debt := range debts {
		res[i] = ToDebtResponse(&debt)
	}
	return res
}
