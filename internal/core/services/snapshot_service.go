package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/finanzapp/finanzas_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// snapshotService provides daily snapshot and rollup operations. Recording a
// day and refreshing the rollup are one atomic unit behind a lock on the
// rollup row, so concurrent recordings serialize.
type snapshotService struct {
	transactor   portsrepo.Transactor
	snapshotRepo portsrepo.SnapshotRepositoryFacade
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(transactor portsrepo.Transactor, snapshotRepo portsrepo.SnapshotRepositoryFacade) portssvc.SnapshotSvcFacade {
	return &snapshotService{transactor: transactor, snapshotRepo: snapshotRepo}
}

var _ portssvc.SnapshotSvcFacade = (*snapshotService)(nil)

// ListSnapshots retrieves the daily snapshot history.
func (s *snapshotService) ListSnapshots(ctx context.Context) ([]domain.DailySnapshot, error) {
	return s.snapshotRepo.ListSnapshots(ctx)
}

// GetRollup retrieves the current rollup of balance and period PNL.
func (s *snapshotService) GetRollup(ctx context.Context) (*domain.BalanceRollup, error) {
	return s.snapshotRepo.GetRollup(ctx)
}

// RecordSnapshot stores the day's closing balance and refreshes the rollup.
// The day's PNL is derived from the latest earlier snapshot; the first
// snapshot ever recorded carries zero PNL. Recording a date that already has
// a snapshot replaces it, and because the rollup is recomputed from the
// table rather than accumulated, the replaced day is never double counted.
func (s *snapshotService) RecordSnapshot(ctx context.Context, req dto.RecordSnapshotRequest) (*domain.DailySnapshot, error) {
	if req.FinalBalance.IsNegative() {
		return nil, fmt.Errorf("%w: final balance must not be negative", apperrors.ErrValidation)
	}

	day := truncateToDay(req.Date)
	now := time.Now().UTC()

	snapshot := domain.DailySnapshot{
		SnapshotID:   uuid.NewString(),
		Date:         day,
		FinalBalance: req.FinalBalance,
		CreatedAt:    now,
	}

	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.snapshotRepo.LockRollupInTx(ctx, tx); err != nil {
			return err
		}

		prev, err := s.snapshotRepo.FindLatestSnapshotBeforeInTx(ctx, tx, day)
		if err != nil {
			return err
		}
		if prev != nil {
			snapshot.PnlDay = req.FinalBalance.Sub(prev.FinalBalance)
		} else {
			snapshot.PnlDay = decimal.Zero
		}

		if err := s.snapshotRepo.UpsertSnapshotInTx(ctx, tx, snapshot); err != nil {
			return err
		}

		_, err = s.snapshotRepo.RecomputeRollupInTx(ctx, tx, day)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Snapshot recorded",
		"date", day.Format("2006-01-02"),
		"pnl_day", snapshot.PnlDay.String(),
	)
	return &snapshot, nil
}

// truncateToDay drops the time-of-day component in UTC.
func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
