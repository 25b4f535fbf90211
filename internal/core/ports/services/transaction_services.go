package services

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/finanzapp/finanzas_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger entries
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific ledger entry.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all ledger entries, most recent first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for ledger entries
type TransactionWriterSvc interface {
	// CreateTransaction records a new entry and applies its signed amount to
	// the owning account balance in one atomic unit.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// AttachReceipt stores the uploaded receipt and links it to the entry.
	AttachReceipt(ctx context.Context, transactionID string, filename string, content []byte) (*domain.Transaction, error)

	// DeleteTransaction removes an entry and reverses its balance effect in
	// one atomic unit.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransferSvc defines the paired-entry movement between two accounts
type TransferSvc interface {
	// Transfer moves an amount between two accounts by writing an expense
	// entry on the source and an income entry on the destination atomically.
	Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResponse, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransferSvc
}
