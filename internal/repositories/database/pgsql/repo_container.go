package pgsql

import (
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := &BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		Transactor:      base,
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CryptoRepo:      newPgxCryptoRepository(dbPool),
		DebtRepo:        newPgxDebtRepository(dbPool),
		SnapshotRepo:    newPgxSnapshotRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
