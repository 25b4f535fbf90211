package mapping

import (
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/finanzapp/finanzas_backend/internal/models"
)

// ToModelDebt converts a domain Debt to a model Debt
func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:         d.DebtID,
		OriginalAmount: d.OriginalAmount,
		PendingAmount:  d.PendingAmount,
		Description:    d.Description,
		Status:         models.DebtStatus(d.Status),
		CreatedAt:      d.CreatedAt,
		PaidAt:         d.PaidAt,
	}
}

// ToDomainDebt converts a model Debt to a domain Debt
func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:         m.DebtID,
		OriginalAmount: m.OriginalAmount,
		PendingAmount:  m.PendingAmount,
		Description:    m.Description,
		Status:         domain.DebtStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		PaidAt:         m.PaidAt,
	}
}

// ToDomainDebtSlice converts a slice of model Debts to domain Debts
func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}
