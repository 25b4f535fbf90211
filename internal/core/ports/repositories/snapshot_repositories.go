package repositories

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SnapshotReader defines read operations for snapshots and the rollup
type SnapshotReader interface {
	// ListSnapshots retrieves the snapshot history, most recent date first.
	ListSnapshots(ctx context.Context) ([]domain.DailySnapshot, error)

	// GetRollup retrieves the singleton rollup record.
	GetRollup(ctx context.Context) (*domain.BalanceRollup, error)
}

// SnapshotTxSupport defines operations that participate in atomic units.
// Snapshot writes and rollup recomputation are inseparable.
type SnapshotTxSupport interface {
	// LockRollupInTx locks the singleton rollup row for update, serializing
	// concurrent snapshot writers.
	LockRollupInTx(ctx context.Context, tx pgx.Tx) error

	// FindLatestSnapshotBeforeInTx retrieves the most recent snapshot dated
	// strictly before the given date, or nil when there is none.
	FindLatestSnapshotBeforeInTx(ctx context.Context, tx pgx.Tx, date time.Time) (*domain.DailySnapshot, error)

	// UpsertSnapshotInTx inserts the snapshot for its date, overwriting the
	// existing row when the day was already recorded.
	UpsertSnapshotInTx(ctx context.Context, tx pgx.Tx, snapshot domain.DailySnapshot) error

	// RecomputeRollupInTx rebuilds the singleton rollup from the snapshot
	// table as of the given date: trailing 7 days, month-to-date and
	// year-to-date sums of pnl_day. Nothing is accumulated incrementally.
	RecomputeRollupInTx(ctx context.Context, tx pgx.Tx, asOf time.Time) (*domain.BalanceRollup, error)
}

// SnapshotRepositoryFacade combines all snapshot-related repository interfaces
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotTxSupport
}
