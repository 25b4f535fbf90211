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
	ErrSameAccountTransfer = errors.New("transfer requires two different accounts")
)

// transactionService provides ledger entry operations. Every write that
// touches an account balance runs inside one database transaction together
// with the entry row it belongs to.
type transactionService struct {
	transactor  portsrepo.Transactor
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	receipts    portssvc.ReceiptStorage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactor portsrepo.Transactor, txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, receipts portssvc.ReceiptStorage) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactor:  transactor,
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		receipts:    receipts,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// GetTransactionByID retrieves a specific ledger entry.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves all ledger entries, most recent first.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx)
}

// CreateTransaction records a new entry and applies its signed amount to the
// owning account balance atomically.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		Description:   req.Description,
		Type:          txnType,
		Date:          req.Date,
		CreatedAt:     now,
	}

	err = s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{req.AccountID}); err != nil {
			return err
		}
		if err := s.txnRepo.InsertTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
		deltas := map[string]decimal.Decimal{
			req.AccountID: txnType.SignedAmount(req.Amount),
		}
		return s.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Transaction recorded",
		"transaction_id", txn.TransactionID,
		"account_id", txn.AccountID,
		"type", string(txn.Type),
	)
	return &txn, nil
}

// AttachReceipt stores the uploaded receipt and links it to the entry.
func (s *transactionService) AttachReceipt(ctx context.Context, transactionID string, filename string, content []byte) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	receiptURL, err := s.receipts.Store(ctx, filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store receipt for transaction %s: %w", transactionID, err)
	}

	if err := s.txnRepo.AttachReceipt(ctx, transactionID, receiptURL); err != nil {
		return nil, err
	}

	txn.ReceiptURL = receiptURL
	return txn, nil
}

// DeleteTransaction removes an entry and reverses its balance effect in one
// atomic unit, so the account balance stays consistent with its ledger.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	now := time.Now().UTC()

	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		txn, err := s.txnRepo.FindTransactionForUpdate(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{txn.AccountID}); err != nil {
			return err
		}
		if err := s.txnRepo.DeleteTransactionInTx(ctx, tx, transactionID); err != nil {
			return err
		}
		// Undo the signed effect the entry once had
		deltas := map[string]decimal.Decimal{
			txn.AccountID: txn.Type.SignedAmount(txn.Amount).Neg(),
		}
		return s.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, now)
	})
	if err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Transaction deleted", "transaction_id", transactionID)
	return nil
}

// Transfer moves an amount between two accounts by writing a paired expense
// and income entry atomically. The source account may go negative; the ledger
// records what happened rather than policing it.
func (s *transactionService) Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResponse, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSameAccountTransfer)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	description := req.Description
	if description == "" {
		description = "Transfer between accounts"
	}

	now := time.Now().UTC()
	outgoing := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.FromAccountID,
		Amount:        req.Amount,
		Description:   description,
		Type:          domain.Expense,
		Date:          req.Date,
		CreatedAt:     now,
	}
	incoming := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.ToAccountID,
		Amount:        req.Amount,
		Description:   description,
		Type:          domain.Income,
		Date:          req.Date,
		CreatedAt:     now,
	}

	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		// One locking statement for both rows keeps lock acquisition ordered
		// by the database and rules out lock cycles between transfers.
		if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{req.FromAccountID, req.ToAccountID}); err != nil {
			return err
		}
		if err := s.txnRepo.InsertTransactionsInTx(ctx, tx, []domain.Transaction{outgoing, incoming}); err != nil {
			return err
		}
		deltas := map[string]decimal.Decimal{
			req.FromAccountID: req.Amount.Neg(),
			req.ToAccountID:   req.Amount,
		}
		return s.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to transfer: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Transfer completed",
		"from_account_id", req.FromAccountID,
		"to_account_id", req.ToAccountID,
		"amount", req.Amount.String(),
	)

	outResp := dto.ToTransactionResponse(&outgoing)
	inResp := dto.ToTransactionResponse(&incoming)
	return &dto.TransferResponse{
		OutgoingTransaction: outResp,
		IncomingTransaction: inResp,
	}, nil
}
