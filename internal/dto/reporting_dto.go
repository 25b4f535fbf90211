package dto

import "github.com/shopspring/decimal"

// SummaryResponse aggregates the whole ledger into one view: total balance
// across accounts plus lifetime income and expense sums.
type SummaryResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
