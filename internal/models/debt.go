package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus mirrors domain.DebtStatus for storage.
type DebtStatus string

const (
	DebtOpen DebtStatus = "OPEN"
	DebtPaid DebtStatus = "PAID"
)

// Debt is the database shape of a tracked obligation.
type Debt struct {
	DebtID         string          `db:"debt_id"`
	OriginalAmount decimal.Decimal `db:"original_amount"`
	PendingAmount  decimal.Decimal `db:"pending_amount"`
	Description    string          `db:"description"`
	Status         DebtStatus      `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	PaidAt         *time.Time      `db:"paid_at"`
}
