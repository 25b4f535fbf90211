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
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, account_id, amount, description, type, date, receipt_url, created_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var receiptURL sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Amount,
		&m.Description,
		&m.Type,
		&m.Date,
		&receiptURL,
		&m.CreatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	m.ReceiptURL = receiptURL.String
	return m, nil
}

// FindTransactionByID retrieves a single ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves all entries with their account name, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.account_id, t.amount, t.description, t.type, t.date, t.receipt_url, t.created_at, a.name
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		ORDER BY t.date DESC, t.created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		var receiptURL sql.NullString
		err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.Amount,
			&m.Description,
			&m.Type,
			&m.Date,
			&receiptURL,
			&m.CreatedAt,
			&m.AccountName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		m.ReceiptURL = receiptURL.String
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

// SumAmountByType returns the total amount over all entries of one type.
func (r *PgxTransactionRepository) SumAmountByType(ctx context.Context, txnType domain.TransactionType) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = $1;`,
		string(txnType),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s transactions: %w", txnType, err)
	}
	return total, nil
}

// AttachReceipt sets the receipt reference on an existing entry.
func (r *PgxTransactionRepository) AttachReceipt(ctx context.Context, transactionID string, receiptURL string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE transactions SET receipt_url = $2 WHERE transaction_id = $1;`,
		transactionID, receiptURL,
	)
	if err != nil {
		return fmt.Errorf("failed to attach receipt to transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// InsertTransactionInTx persists a new ledger entry within a transaction.
func (r *PgxTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, account_id, amount, description, type, date, receipt_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.Amount,
		m.Description,
		m.Type,
		m.Date,
		nullString(m.ReceiptURL),
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// InsertTransactionsInTx persists several entries in one batch.
func (r *PgxTransactionRepository) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO transactions (transaction_id, account_id, amount, description, type, date, receipt_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.AccountID,
			m.Amount,
			m.Description,
			m.Type,
			m.Date,
			nullString(m.ReceiptURL),
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for range txns {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert transaction batch: %w", err)
		}
	}
	return nil
}

// FindTransactionForUpdate locks one entry row within a transaction.
func (r *PgxTransactionRepository) FindTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`

	m, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// DeleteTransactionInTx removes an entry within a transaction.
func (r *PgxTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
