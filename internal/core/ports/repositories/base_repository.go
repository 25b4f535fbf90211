package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// Transactor runs a function inside one database transaction: every write fn
// performs becomes visible on commit, or none of them do. Services use this
// as the single atomic-unit primitive for multi-row state changes.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
