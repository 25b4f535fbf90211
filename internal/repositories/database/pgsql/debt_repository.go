package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	"github.com/finanzapp/finanzas_backend/internal/models"
	"github.com/finanzapp/finanzas_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDebtRepository struct {
	pool *pgxpool.Pool
}

// newPgxDebtRepository creates a new repository for debts.
func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{pool: pool}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, original_amount, pending_amount, description, status, created_at, paid_at`

func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	var paidAt sql.NullTime
	err := row.Scan(
		&m.DebtID,
		&m.OriginalAmount,
		&m.PendingAmount,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&paidAt,
	)
	if err != nil {
		return models.Debt{}, err
	}
	if paidAt.Valid {
		t := paidAt.Time
		m.PaidAt = &t
	}
	return m, nil
}

// FindDebtByID retrieves a specific debt.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1;`

	m, err := scanDebt(r.pool.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}

	d := mapping.ToDomainDebt(m)
	return &d, nil
}

// ListDebts retrieves all debts, most recent first.
func (r *PgxDebtRepository) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	debts := []domain.Debt{}
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, mapping.ToDomainDebt(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", rows.Err())
	}
	return debts, nil
}

// SaveDebt persists a new debt.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)

	query := `
		INSERT INTO debts (debt_id, original_amount, pending_amount, description, status, created_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.DebtID,
		m.OriginalAmount,
		m.PendingAmount,
		m.Description,
		m.Status,
		m.CreatedAt,
		m.PaidAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: debt with ID %s already exists", apperrors.ErrDuplicate, m.DebtID)
		}
		return fmt.Errorf("failed to save debt %s: %w", m.DebtID, err)
	}
	return nil
}

// FindDebtForUpdate locks the debt row within a transaction.
func (r *PgxDebtRepository) FindDebtForUpdate(ctx context.Context, tx pgx.Tx, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1 FOR UPDATE;`

	m, err := scanDebt(tx.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock debt %s: %w", debtID, err)
	}

	d := mapping.ToDomainDebt(m)
	return &d, nil
}

// UpdateDebtInTx overwrites pending amount, status and paid_at within a transaction.
func (r *PgxDebtRepository) UpdateDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)

	cmdTag, err := tx.Exec(ctx,
		`UPDATE debts SET pending_amount = $2, status = $3, paid_at = $4 WHERE debt_id = $1;`,
		m.DebtID, m.PendingAmount, m.Status, m.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt %s: %w", m.DebtID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
