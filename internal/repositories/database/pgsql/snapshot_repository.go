package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	"github.com/finanzapp/finanzas_backend/internal/models"
	"github.com/finanzapp/finanzas_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSnapshotRepository struct {
	pool *pgxpool.Pool
}

// newPgxSnapshotRepository creates a new repository for daily snapshots and
// the singleton balance rollup.
func newPgxSnapshotRepository(pool *pgxpool.Pool) portsrepo.SnapshotRepositoryFacade {
	return &PgxSnapshotRepository{pool: pool}
}

var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

const snapshotColumns = `snapshot_id, date, final_balance, pnl_day, created_at`

func scanSnapshot(row pgx.Row) (models.DailySnapshot, error) {
	var m models.DailySnapshot
	err := row.Scan(
		&m.SnapshotID,
		&m.Date,
		&m.FinalBalance,
		&m.PnlDay,
		&m.CreatedAt,
	)
	return m, err
}

// ListSnapshots retrieves the snapshot history, most recent date first.
func (r *PgxSnapshotRepository) ListSnapshots(ctx context.Context) ([]domain.DailySnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM daily_snapshots ORDER BY date DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	snaps := []domain.DailySnapshot{}
	for rows.Next() {
		m, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snaps = append(snaps, mapping.ToDomainDailySnapshot(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", rows.Err())
	}
	return snaps, nil
}

// GetRollup retrieves the singleton rollup record.
func (r *PgxSnapshotRepository) GetRollup(ctx context.Context) (*domain.BalanceRollup, error) {
	query := `
		SELECT balance_total, pnl_daily, pnl_weekly, pnl_monthly, pnl_annual, updated_at
		FROM balance_rollup
		WHERE id = 1;
	`
	var m models.BalanceRollup
	err := r.pool.QueryRow(ctx, query).Scan(
		&m.BalanceTotal,
		&m.PnlDaily,
		&m.PnlWeekly,
		&m.PnlMonthly,
		&m.PnlAnnual,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get balance rollup: %w", err)
	}

	d := mapping.ToDomainBalanceRollup(m)
	return &d, nil
}

// LockRollupInTx locks the singleton rollup row for update. Every snapshot
// writer passes through this lock, so concurrent recordings serialize here.
func (r *PgxSnapshotRepository) LockRollupInTx(ctx context.Context, tx pgx.Tx) error {
	var id int
	err := tx.QueryRow(ctx, `SELECT id FROM balance_rollup WHERE id = 1 FOR UPDATE;`).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock balance rollup: %w", err)
	}
	return nil
}

// FindLatestSnapshotBeforeInTx retrieves the most recent snapshot dated
// strictly before the given date, or nil when there is none.
func (r *PgxSnapshotRepository) FindLatestSnapshotBeforeInTx(ctx context.Context, tx pgx.Tx, date time.Time) (*domain.DailySnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM daily_snapshots WHERE date < $1 ORDER BY date DESC LIMIT 1;`

	m, err := scanSnapshot(tx.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find snapshot before %s: %w", date.Format("2006-01-02"), err)
	}

	d := mapping.ToDomainDailySnapshot(m)
	return &d, nil
}

// UpsertSnapshotInTx inserts the snapshot for its date, replacing the row
// when the day was already recorded.
func (r *PgxSnapshotRepository) UpsertSnapshotInTx(ctx context.Context, tx pgx.Tx, snapshot domain.DailySnapshot) error {
	m := mapping.ToModelDailySnapshot(snapshot)

	query := `
		INSERT INTO daily_snapshots (snapshot_id, date, final_balance, pnl_day, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE
		SET final_balance = EXCLUDED.final_balance,
		    pnl_day = EXCLUDED.pnl_day,
		    created_at = EXCLUDED.created_at;
	`
	_, err := tx.Exec(ctx, query,
		m.SnapshotID,
		m.Date,
		m.FinalBalance,
		m.PnlDay,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot for %s: %w", m.Date.Format("2006-01-02"), err)
	}
	return nil
}

// RecomputeRollupInTx rebuilds the singleton rollup from the snapshot table
// as of the given date. The period sums are recomputed from scratch every
// time rather than accumulated, so an overwritten day never double counts.
func (r *PgxSnapshotRepository) RecomputeRollupInTx(ctx context.Context, tx pgx.Tx, asOf time.Time) (*domain.BalanceRollup, error) {
	query := `
		UPDATE balance_rollup
		SET balance_total = COALESCE((SELECT final_balance FROM daily_snapshots WHERE date <= $1 ORDER BY date DESC LIMIT 1), 0),
		    pnl_daily     = COALESCE((SELECT pnl_day FROM daily_snapshots WHERE date <= $1 ORDER BY date DESC LIMIT 1), 0),
		    pnl_weekly    = (SELECT COALESCE(SUM(pnl_day), 0) FROM daily_snapshots WHERE date > $1::date - 7 AND date <= $1),
		    pnl_monthly   = (SELECT COALESCE(SUM(pnl_day), 0) FROM daily_snapshots WHERE date_trunc('month', date) = date_trunc('month', $1::date) AND date <= $1),
		    pnl_annual    = (SELECT COALESCE(SUM(pnl_day), 0) FROM daily_snapshots WHERE date_trunc('year', date) = date_trunc('year', $1::date) AND date <= $1),
		    updated_at    = $2
		WHERE id = 1
		RETURNING balance_total, pnl_daily, pnl_weekly, pnl_monthly, pnl_annual, updated_at;
	`
	var m models.BalanceRollup
	err := tx.QueryRow(ctx, query, asOf, time.Now().UTC()).Scan(
		&m.BalanceTotal,
		&m.PnlDaily,
		&m.PnlWeekly,
		&m.PnlMonthly,
		&m.PnlAnnual,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to recompute balance rollup: %w", err)
	}

	d := mapping.ToDomainBalanceRollup(m)
	return &d, nil
}
