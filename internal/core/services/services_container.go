package services

import (
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, receipts portssvc.ReceiptStorage) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.Transactor, repos.TransactionRepo, repos.AccountRepo, receipts)
	container.Crypto = NewCryptoService(repos.Transactor, repos.CryptoRepo)
	container.Debt = NewDebtService(repos.Transactor, repos.DebtRepo, repos.TransactionRepo, repos.AccountRepo)
	container.Snapshot = NewSnapshotService(repos.Transactor, repos.SnapshotRepo)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.TransactionRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.CryptoSvcFacade      = (*cryptoService)(nil)
	_ portssvc.DebtSvcFacade        = (*debtService)(nil)
	_ portssvc.SnapshotSvcFacade    = (*snapshotService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
)
