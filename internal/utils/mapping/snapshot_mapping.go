package mapping

import (
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/finanzapp/finanzas_backend/internal/models"
)

// ToModelDailySnapshot converts a domain DailySnapshot to a model DailySnapshot
func ToModelDailySnapshot(d domain.DailySnapshot) models.DailySnapshot {
	return models.DailySnapshot{
		SnapshotID:   d.SnapshotID,
		Date:         d.Date,
		FinalBalance: d.FinalBalance,
		PnlDay:       d.PnlDay,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainDailySnapshot converts a model DailySnapshot to a domain DailySnapshot
func ToDomainDailySnapshot(m models.DailySnapshot) domain.DailySnapshot {
	return domain.DailySnapshot{
		SnapshotID:   m.SnapshotID,
		Date:         m.Date,
		FinalBalance: m.FinalBalance,
		PnlDay:       m.PnlDay,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainDailySnapshotSlice converts model DailySnapshots to domain DailySnapshots
func ToDomainDailySnapshotSlice(ms []models.DailySnapshot) []domain.DailySnapshot {
	ds := make([]domain.DailySnapshot, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDailySnapshot(m)
	}
	return ds
}

// ToDomainBalanceRollup converts a model BalanceRollup to a domain BalanceRollup
func ToDomainBalanceRollup(m models.BalanceRollup) domain.BalanceRollup {
	return domain.BalanceRollup{
		BalanceTotal: m.BalanceTotal,
		PnlDaily:     m.PnlDaily,
		PnlWeekly:    m.PnlWeekly,
		PnlMonthly:   m.PnlMonthly,
		PnlAnnual:    m.PnlAnnual,
		UpdatedAt:    m.UpdatedAt,
	}
}
