package services

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/finanzapp/finanzas_backend/internal/dto"
)

// DebtReaderSvc defines read operations for debts
type DebtReaderSvc interface {
	// GetDebtByID retrieves a specific debt.
	GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebts retrieves all debts, most recent first.
	ListDebts(ctx context.Context) ([]domain.Debt, error)
}

// DebtWriterSvc defines write operations for debts
type DebtWriterSvc interface {
	// CreateDebt registers a new open debt.
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error)

	// PayDebt applies a partial or full payment: it writes an expense entry
	// against the paying account, decrements the account balance and the
	// debt's pending amount, and closes the debt when it reaches zero. All
	// of that happens in one atomic unit.
	PayDebt(ctx context.Context, debtID string, req dto.PayDebtRequest) (*domain.Debt, error)
}

// DebtSvcFacade combines all debt-related service interfaces
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
}
