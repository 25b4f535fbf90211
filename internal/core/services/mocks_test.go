package services_test

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// decimalEq matches a decimal argument by numeric value rather than internal
// representation, so computed results compare equal to literals.
func decimalEq(value int64) interface{} {
	want := decimal.NewFromInt(value)
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}

// MockTransactor runs the unit body directly with a nil transaction handle.
// Setting an expectation error on WithTx simulates a failure to begin.
type MockTransactor struct {
	mock.Mock
}

func (m *MockTransactor) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(nil)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountDetails(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, now)
	return args.Error(0)
}

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountByType(ctx context.Context, txnType domain.TransactionType) (decimal.Decimal, error) {
	args := m.Called(ctx, txnType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) AttachReceipt(ctx context.Context, transactionID string, receiptURL string) error {
	args := m.Called(ctx, transactionID, receiptURL)
	return args.Error(0)
}

func (m *MockTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	args := m.Called(ctx, tx, txns)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	args := m.Called(ctx, tx, transactionID)
	return args.Error(0)
}

// MockCryptoRepository is a mock type for the CryptoRepositoryFacade interface
type MockCryptoRepository struct {
	mock.Mock
}

func (m *MockCryptoRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.CryptoAsset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CryptoAsset), args.Error(1)
}

func (m *MockCryptoRepository) ListAssets(ctx context.Context) ([]domain.CryptoAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CryptoAsset), args.Error(1)
}

func (m *MockCryptoRepository) ListTrades(ctx context.Context) ([]domain.CryptoTrade, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CryptoTrade), args.Error(1)
}

func (m *MockCryptoRepository) SaveAsset(ctx context.Context, asset domain.CryptoAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockCryptoRepository) FindAssetForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.CryptoAsset, error) {
	args := m.Called(ctx, tx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CryptoAsset), args.Error(1)
}

func (m *MockCryptoRepository) InsertTradeInTx(ctx context.Context, tx pgx.Tx, trade domain.CryptoTrade) error {
	args := m.Called(ctx, tx, trade)
	return args.Error(0)
}

func (m *MockCryptoRepository) UpdateAssetPositionInTx(ctx context.Context, tx pgx.Tx, assetID string, quantity, averagePrice decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, assetID, quantity, averagePrice, now)
	return args.Error(0)
}

// MockDebtRepository is a mock type for the DebtRepositoryFacade interface
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) FindDebtForUpdate(ctx context.Context, tx pgx.Tx, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, tx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) UpdateDebtInTx(ctx context.Context, tx pgx.Tx, debt domain.Debt) error {
	args := m.Called(ctx, tx, debt)
	return args.Error(0)
}

// MockSnapshotRepository is a mock type for the SnapshotRepositoryFacade interface
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) ListSnapshots(ctx context.Context) ([]domain.DailySnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) GetRollup(ctx context.Context) (*domain.BalanceRollup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceRollup), args.Error(1)
}

func (m *MockSnapshotRepository) LockRollupInTx(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSnapshotRepository) FindLatestSnapshotBeforeInTx(ctx context.Context, tx pgx.Tx, date time.Time) (*domain.DailySnapshot, error) {
	args := m.Called(ctx, tx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) UpsertSnapshotInTx(ctx context.Context, tx pgx.Tx, snapshot domain.DailySnapshot) error {
	args := m.Called(ctx, tx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) RecomputeRollupInTx(ctx context.Context, tx pgx.Tx, asOf time.Time) (*domain.BalanceRollup, error) {
	args := m.Called(ctx, tx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceRollup), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockReceiptStorage is a mock type for the ReceiptStorage interface
type MockReceiptStorage struct {
	mock.Mock
}

func (m *MockReceiptStorage) Store(ctx context.Context, name string, content []byte) (string, error) {
	args := m.Called(ctx, name, content)
	return args.String(0), args.Error(1)
}
