package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/finanzapp/finanzas_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrDebtAlreadyPaid     = errors.New("debt is already paid")
	ErrPaymentTooLarge     = errors.New("payment exceeds pending amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// debtService provides debt lifecycle operations. A debt moves from open to
// paid through payments; each payment writes an expense entry against the
// paying account, moves the balance, and shrinks the pending amount in one
// atomic unit.
type debtService struct {
	transactor  portsrepo.Transactor
	debtRepo    portsrepo.DebtRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewDebtService creates a new DebtService.
func NewDebtService(transactor portsrepo.Transactor, debtRepo portsrepo.DebtRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.DebtSvcFacade {
	return &debtService{
		transactor:  transactor,
		debtRepo:    debtRepo,
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// GetDebtByID retrieves a specific debt.
func (s *debtService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	return s.debtRepo.FindDebtByID(ctx, debtID)
}

// ListDebts retrieves all debts, most recent first.
func (s *debtService) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	return s.debtRepo.ListDebts(ctx)
}

// CreateDebt registers a new open debt with its full amount pending.
func (s *debtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	debt := domain.Debt{
		DebtID:         uuid.NewString(),
		OriginalAmount: req.Amount,
		PendingAmount:  req.Amount,
		Description:    req.Description,
		Status:         domain.DebtOpen,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Debt created", "debt_id", debt.DebtID)
	return &debt, nil
}

// PayDebt applies a partial or full payment. An omitted amount pays the full
// pending balance. The debt row is locked first so two concurrent payments
// can never both drain the same pending amount.
func (s *debtService) PayDebt(ctx context.Context, debtID string, req dto.PayDebtRequest) (*domain.Debt, error) {
	if req.Amount != nil && req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	var paid domain.Debt
	var payAmount decimal.Decimal

	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		debt, err := s.debtRepo.FindDebtForUpdate(ctx, tx, debtID)
		if err != nil {
			return err
		}
		if debt.Status == domain.DebtPaid {
			return fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrDebtAlreadyPaid)
		}

		payAmount = debt.PendingAmount
		if req.Amount != nil {
			payAmount = *req.Amount
		}
		if payAmount.GreaterThan(debt.PendingAmount) {
			return fmt.Errorf("%w: %w (pending %s)", apperrors.ErrConflict, ErrPaymentTooLarge, debt.PendingAmount.String())
		}

		accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{req.AccountID})
		if err != nil {
			return err
		}
		if accounts[req.AccountID].Balance.LessThan(payAmount) {
			return fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrInsufficientBalance)
		}

		payment := domain.Transaction{
			TransactionID: uuid.NewString(),
			AccountID:     req.AccountID,
			Amount:        payAmount,
			Description:   fmt.Sprintf("Debt payment: %s", debt.Description),
			Type:          domain.Expense,
			Date:          now,
			CreatedAt:     now,
		}
		if err := s.txnRepo.InsertTransactionInTx(ctx, tx, payment); err != nil {
			return err
		}

		deltas := map[string]decimal.Decimal{
			req.AccountID: payAmount.Neg(),
		}
		if err := s.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, now); err != nil {
			return err
		}

		debt.PendingAmount = debt.PendingAmount.Sub(payAmount)
		if debt.PendingAmount.IsZero() {
			debt.Status = domain.DebtPaid
			debt.PaidAt = &now
		}
		if err := s.debtRepo.UpdateDebtInTx(ctx, tx, *debt); err != nil {
			return err
		}

		paid = *debt
		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Debt payment applied",
		"debt_id", debtID,
		"amount", payAmount.String(),
		"status", string(paid.Status),
	)
	return &paid, nil
}
