package dto

import (
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
type CreateTransactionRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Description string          `json:"description" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Date        time.Time       `json:"date" binding:"required"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	AccountName   string          `json:"accountName,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	Date          time.Time       `json:"date"`
	ReceiptURL    string          `json:"receiptURL,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransferRequest defines the data needed to move money between accounts.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date" binding:"required"`
}

// TransferResponse returns both halves of a completed transfer.
type TransferResponse struct {
	OutgoingTransaction TransactionResponse `json:"outgoingTransaction"`
	IncomingTransaction TransactionResponse `json:"incomingTransaction"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		AccountName:   txn.AccountName,
		Amount:        txn.Amount,
		Description:   txn.Description,
		Type:          string(txn.Type),
		Date:          txn.Date,
		ReceiptURL:    txn.ReceiptURL,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsResponse wraps the list of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
