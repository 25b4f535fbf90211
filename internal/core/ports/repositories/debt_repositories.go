package repositories

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DebtReader defines read operations for debts
type DebtReader interface {
	// FindDebtByID retrieves a specific debt.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebts retrieves all debts, most recent first.
	ListDebts(ctx context.Context) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debts
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error
}

// DebtTxSupport defines operations that participate in atomic units.
type DebtTxSupport interface {
	// FindDebtForUpdate locks the debt row for update within a transaction,
	// serializing concurrent payments on the same debt.
	FindDebtForUpdate(ctx context.Context, tx pgx.Tx, debtID string) (*domain.Debt, error)

	// UpdateDebtInTx overwrites pending amount, status and paid_at within a
	// transaction.
	UpdateDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
	DebtTxSupport
}
