package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus is the debt payoff state machine: OPEN is initial, PAID is
// terminal. PendingAmount reaches exactly zero when and only when the debt
// transitions to PAID.
type DebtStatus string

const (
	DebtOpen DebtStatus = "OPEN"
	DebtPaid DebtStatus = "PAID"
)

// ParseDebtStatus rejects unrecognized status strings at the boundary.
func ParseDebtStatus(s string) (DebtStatus, error) {
	switch DebtStatus(s) {
	case DebtOpen, DebtPaid:
		return DebtStatus(s), nil
	default:
		return "", fmt.Errorf("unknown debt status %q", s)
	}
}

// Debt tracks an obligation and its remaining unpaid balance.
// PendingAmount is non-increasing over the debt's lifetime.
type Debt struct {
	DebtID         string
	OriginalAmount decimal.Decimal
	PendingAmount  decimal.Decimal
	Description    string
	Status         DebtStatus
	CreatedAt      time.Time
	PaidAt         *time.Time // set only when Status == DebtPaid
}
