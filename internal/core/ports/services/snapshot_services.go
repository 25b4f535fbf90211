package services

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/finanzapp/finanzas_backend/internal/dto"
)

// SnapshotReaderSvc defines read operations for snapshots and the rollup
type SnapshotReaderSvc interface {
	// ListSnapshots retrieves the daily snapshot history, most recent first.
	ListSnapshots(ctx context.Context) ([]domain.DailySnapshot, error)

	// GetRollup retrieves the current rollup of balance and period PNL.
	GetRollup(ctx context.Context) (*domain.BalanceRollup, error)
}

// SnapshotWriterSvc defines write operations for snapshots
type SnapshotWriterSvc interface {
	// RecordSnapshot stores the day's closing balance, derives the day's PNL
	// from the previous snapshot, and recomputes the rollup in one atomic
	// unit. Recording the same date again overwrites the earlier snapshot.
	RecordSnapshot(ctx context.Context, req dto.RecordSnapshotRequest) (*domain.DailySnapshot, error)
}

// SnapshotSvcFacade combines all snapshot-related service interfaces
type SnapshotSvcFacade interface {
	SnapshotReaderSvc
	SnapshotWriterSvc
}
