package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	"github.com/finanzapp/finanzas_backend/internal/models"
	"github.com/finanzapp/finanzas_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements the facade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, balance, account_number, image_url, created_at, updated_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	var accountNumber, imageURL sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Balance,
		&accountNumber,
		&imageURL,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}
	m.AccountNumber = accountNumber.String
	m.ImageURL = imageURL.String
	return m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, balance, account_number, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Balance,
		nullString(m.AccountNumber),
		nullString(m.ImageURL),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// ListAccounts retrieves all accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}

// SumBalances returns the sum of all account balances.
func (r *PgxAccountRepository) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM accounts;`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account balances: %w", err)
	}
	return total, nil
}

// UpdateAccountDetails updates name, account number and image reference.
// The balance column stays out of this statement on purpose.
func (r *PgxAccountRepository) UpdateAccountDetails(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, account_number = $3, image_url = $4, updated_at = $5
		WHERE account_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		nullString(m.AccountNumber),
		nullString(m.ImageURL),
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account unless ledger entries still reference it.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	var refs int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(1) FROM transactions WHERE account_id = $1;`, accountID).Scan(&refs)
	if err != nil {
		return fmt.Errorf("failed to count transactions for account %s: %w", accountID, err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: account %s has %d transactions", apperrors.ErrConflict, accountID, refs)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountsByIDsForUpdate selects accounts and locks the rows for update.
// Every requested ID must resolve or the whole call fails with ErrNotFound.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) FOR UPDATE;`

	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for update: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row during locked fetch: %w", err)
		}
		accountsMap[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", rows.Err())
	}

	for _, id := range accountIDs {
		if _, ok := accountsMap[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}
	return accountsMap, nil
}

// ApplyBalanceDeltasInTx adjusts balances by signed deltas within a transaction.
func (r *PgxAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `UPDATE accounts SET balance = balance + $2, updated_at = $3 WHERE account_id = $1;`
	for accountID, delta := range balanceChanges {
		batch.Queue(query, accountID, delta, now)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for range balanceChanges {
		cmdTag, err := br.Exec()
		if err != nil {
			return fmt.Errorf("failed to apply balance delta: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
