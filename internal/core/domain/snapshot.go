package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySnapshot records the ledger's total balance at the end of one day.
// PnlDay is the delta against the previous recorded day, or zero when no
// prior snapshot exists. At most one snapshot exists per calendar date.
type DailySnapshot struct {
	SnapshotID   string
	Date         time.Time // date component only, UTC
	FinalBalance decimal.Decimal
	PnlDay       decimal.Decimal
	CreatedAt    time.Time
}

// BalanceRollup is the singleton aggregate over the snapshot history. Every
// periodic figure is recomputed fresh from the snapshot table on each write,
// never accumulated incrementally, so corrected or missed days can't drift.
type BalanceRollup struct {
	BalanceTotal decimal.Decimal
	PnlDaily     decimal.Decimal
	PnlWeekly    decimal.Decimal // trailing 7 days including today
	PnlMonthly   decimal.Decimal // since the first day of the current month
	PnlAnnual    decimal.Decimal // since the first day of the current year
	UpdatedAt    time.Time
}
