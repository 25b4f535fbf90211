package repositories

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// FindTransactionByID retrieves a single ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all entries joined with their account name,
	// most recent date first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// SumAmountByType returns the total amount over all entries of one type.
	SumAmountByType(ctx context.Context, txnType domain.TransactionType) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for ledger entries
type TransactionWriter interface {
	// AttachReceipt sets the receipt reference on an existing entry. This is
	// the only permitted in-place edit; entries are otherwise immutable.
	AttachReceipt(ctx context.Context, transactionID string, receiptURL string) error
}

// TransactionTxSupport defines operations that participate in atomic units.
// Inserting or deleting an entry always travels with the balance update of
// the owning account, so these only exist in transaction-scoped form.
type TransactionTxSupport interface {
	// InsertTransactionInTx persists a new ledger entry within a transaction.
	InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// InsertTransactionsInTx persists several entries in one batch within a
	// transaction (used by transfers for their paired rows).
	InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error

	// FindTransactionForUpdate locks one entry row within a transaction.
	FindTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)

	// DeleteTransactionInTx removes an entry within a transaction.
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionTxSupport
}
