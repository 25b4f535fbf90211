package services

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/dto"
)

// ReportingSvcFacade defines aggregate read operations across the ledger.
type ReportingSvcFacade interface {
	// GetSummary returns total balance plus lifetime income and expense sums.
	GetSummary(ctx context.Context) (*dto.SummaryResponse, error)
}
