package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry as money in or money out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// ParseTransactionType rejects unrecognized type strings at the boundary so
// business logic only ever sees the closed set.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// SignedAmount returns the amount with the sign it contributes to the owning
// account's balance: positive for income, negative for expense.
func (t TransactionType) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t == Expense {
		return amount.Neg()
	}
	return amount
}

// Transaction is a single append-only ledger entry against one account.
// Entries are immutable once created; the only permitted in-place edit is
// attaching a receipt reference.
type Transaction struct {
	TransactionID string
	AccountID     string
	Amount        decimal.Decimal // always positive; sign comes from Type
	Description   string
	Type          TransactionType
	Date          time.Time
	ReceiptURL    string
	CreatedAt     time.Time

	// AccountName is populated on list reads that join the accounts table.
	AccountName string
}
