package repositories

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by name.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// SumBalances returns the sum of all account balances.
	SumBalances(ctx context.Context) (decimal.Decimal, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountDetails updates name, account number and image reference.
	// The balance column is deliberately out of reach here: it only moves
	// together with transaction rows, inside a database transaction.
	UpdateAccountDetails(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Implementations must refuse when
	// transactions still reference it so the derived balance can't silently
	// lose its backing ledger.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTransactionSupport defines operations that participate in atomic units
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks the rows for
	// update within a transaction. All IDs must be found or the call fails.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceDeltasInTx adjusts account balances by signed deltas within
	// a given transaction.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
