package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for storage.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is the database shape of a ledger entry.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Type          TransactionType `db:"type"`
	Date          time.Time       `db:"date"`
	ReceiptURL    string          `db:"receipt_url"`
	CreatedAt     time.Time       `db:"created_at"`

	AccountName string `db:"account_name"` // populated by list joins only
}
