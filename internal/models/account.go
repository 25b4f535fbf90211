package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database shape of a ledger account.
// Balance is persisted but derived: it is only ever written together with
// the transaction rows that change it.
type Account struct {
	AccountID     string          `db:"account_id"`
	Name          string          `db:"name"`
	Balance       decimal.Decimal `db:"balance"`
	AccountNumber string          `db:"account_number"`
	ImageURL      string          `db:"image_url"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
