package services

import (
	"context"
	"fmt"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
)

// reportingService provides aggregate read operations across the ledger.
type reportingService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{accountRepo: accountRepo, txnRepo: txnRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetSummary returns total balance plus lifetime income and expense sums.
func (s *reportingService) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	balance, err := s.accountRepo.SumBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}
	income, err := s.txnRepo.SumAmountByType(ctx, domain.Income)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}
	expenses, err := s.txnRepo.SumAmountByType(ctx, domain.Expense)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	return &dto.SummaryResponse{
		Balance:  balance,
		Income:   income,
		Expenses: expenses,
	}, nil
}
