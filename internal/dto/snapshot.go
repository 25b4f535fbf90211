package dto

import (
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordSnapshotRequest defines the data needed to record a daily snapshot.
// Date carries day precision; any time-of-day component is truncated.
// FinalBalance may legitimately be zero, so it carries no required tag.
type RecordSnapshotRequest struct {
	Date         time.Time       `json:"date" binding:"required"`
	FinalBalance decimal.Decimal `json:"finalBalance"`
}

// SnapshotResponse defines the data returned for a daily snapshot.
type SnapshotResponse struct {
	SnapshotID   string          `json:"snapshotID"`
	Date         time.Time       `json:"date"`
	FinalBalance decimal.Decimal `json:"finalBalance"`
	PnlDay       decimal.Decimal `json:"pnlDay"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// RollupResponse defines the data returned for the balance rollup.
type RollupResponse struct {
	BalanceTotal decimal.Decimal `json:"balanceTotal"`
	PnlDaily     decimal.Decimal `json:"pnlDaily"`
	PnlWeekly    decimal.Decimal `json:"pnlWeekly"`
	PnlMonthly   decimal.Decimal `json:"pnlMonthly"`
	PnlAnnual    decimal.Decimal `json:"pnlAnnual"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToSnapshotResponse converts a domain.DailySnapshot to SnapshotResponse DTO
func ToSnapshotResponse(snap *domain.DailySnapshot) SnapshotResponse {
	return SnapshotResponse{
		SnapshotID:   snap.SnapshotID,
		Date:         snap.Date,
		FinalBalance: snap.FinalBalance,
		PnlDay:       snap.PnlDay,
		CreatedAt:    snap.CreatedAt,
	}
}

// ToListSnapshotResponse converts a slice of domain.DailySnapshot to DTOs
func ToListSnapshotResponse(snaps []domain.DailySnapshot) []SnapshotResponse {
	res := make([]SnapshotResponse, len(snaps))
	for i, snap := range snaps {
		res[i] = ToSnapshotResponse(&snap)
	}
	return res
}

// ToRollupResponse converts a domain.BalanceRollup to RollupResponse DTO
func ToRollupResponse(rollup *domain.BalanceRollup) RollupResponse {
	return RollupResponse{
		BalanceTotal: rollup.BalanceTotal,
		PnlDaily:     rollup.PnlDaily,
		PnlWeekly:    rollup.PnlWeekly,
		PnlMonthly:   rollup.PnlMonthly,
		PnlAnnual:    rollup.PnlAnnual,
		UpdatedAt:    rollup.UpdatedAt,
	}
}
