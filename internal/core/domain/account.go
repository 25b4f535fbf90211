package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a financial account within the ledger.
// Balance is a derived cache: it must always equal the signed sum of the
// transactions referencing the account, which is why every transaction write
// updates it inside the same database transaction.
type Account struct {
	AccountID     string
	Name          string
	Balance       decimal.Decimal
	AccountNumber string
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
