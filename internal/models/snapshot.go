package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySnapshot is the database shape of one day's closing balance.
// The date column carries a unique constraint: one snapshot per day.
type DailySnapshot struct {
	SnapshotID   string          `db:"snapshot_id"`
	Date         time.Time       `db:"date"`
	FinalBalance decimal.Decimal `db:"final_balance"`
	PnlDay       decimal.Decimal `db:"pnl_day"`
	CreatedAt    time.Time       `db:"created_at"`
}

// BalanceRollup is the database shape of the singleton rollup row (id = 1).
type BalanceRollup struct {
	BalanceTotal decimal.Decimal `db:"balance_total"`
	PnlDaily     decimal.Decimal `db:"pnl_daily"`
	PnlWeekly    decimal.Decimal `db:"pnl_weekly"`
	PnlMonthly   decimal.Decimal `db:"pnl_monthly"`
	PnlAnnual    decimal.Decimal `db:"pnl_annual"`
	UpdatedAt    time.Time       `db:"updated_at"`
}
