package services_test

import (
	"context"
	"testing"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/core/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DebtServiceTestSuite struct {
	suite.Suite
	mockTransactor  *MockTransactor
	mockDebtRepo    *MockDebtRepository
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockTransactor = new(MockTransactor)
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewDebtService(suite.mockTransactor, suite.mockDebtRepo, suite.mockTxnRepo, suite.mockAccountRepo)
}

func (suite *DebtServiceTestSuite) openDebt(original, pending int64) *domain.Debt {
	return &domain.Debt{
		DebtID:         uuid.NewString(),
		OriginalAmount: decimal.NewFromInt(original),
		PendingAmount:  decimal.NewFromInt(pending),
		Description:    "loan from friend",
		Status:         domain.DebtOpen,
	}
}

func (suite *DebtServiceTestSuite) lockedAccount(accountID string) map[string]domain.Account {
	return map[string]domain.Account{
		accountID: {AccountID: accountID, Balance: decimal.NewFromInt(1000)},
	}
}

// decimalPtr returns a pointer to the provided decimal.Decimal value.
func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func (suite *DebtServiceTestSuite) TestCreateDebt_StartsOpenWithFullAmountPending() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{Amount: decimal.NewFromInt(500), Description: "car repair"}

	suite.mockDebtRepo.On("SaveDebt", ctx, mock.MatchedBy(func(debt domain.Debt) bool {
		return debt.OriginalAmount.Equal(decimal.NewFromInt(500)) &&
			debt.PendingAmount.Equal(decimal.NewFromInt(500)) &&
			debt.Status == domain.DebtOpen &&
			debt.PaidAt == nil
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DebtOpen, debt.Status)
	suite.True(debt.PendingAmount.Equal(debt.OriginalAmount))
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestPayDebt_PartialPaymentKeepsDebtOpen() {
	ctx := context.Background()
	debt := suite.openDebt(100, 100)
	accountID := uuid.NewString()
	req := dto.PayDebtRequest{AccountID: accountID, Amount: decimalPtr(decimal.NewFromInt(40))}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockDebtRepo.On("FindDebtForUpdate", ctx, nil, debt.DebtID).Return(debt, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).
		Return(suite.lockedAccount(accountID), nil).Once()
	suite.mockTxnRepo.On("InsertTransactionInTx", ctx, nil, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.AccountID == accountID &&
			txn.Type == domain.Expense &&
			txn.Amount.Equal(decimal.NewFromInt(40))
	})).Return(nil).Once()
	suite.mockAccountRepo.On("ApplyBalanceDeltasInTx", ctx, nil, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas[accountID].Equal(decimal.NewFromInt(-40))
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDebtRepo.On("UpdateDebtInTx", ctx, nil, mock.MatchedBy(func(updated domain.Debt) bool {
		return updated.PendingAmount.Equal(decimal.NewFromInt(60)) &&
			updated.Status == domain.DebtOpen &&
			updated.PaidAt == nil
	})).Return(nil).Once()

	paid, err := suite.service.PayDebt(ctx, debt.DebtID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DebtOpen, paid.Status)
	suite.True(paid.PendingAmount.Equal(decimal.NewFromInt(60)))
	suite.Nil(paid.PaidAt)
	suite.mockDebtRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestPayDebt_FullPaymentClosesDebt() {
	ctx := context.Background()
	debt := suite.openDebt(100, 60)
	accountID := uuid.NewString()
	req := dto.PayDebtRequest{AccountID: accountID, Amount: decimalPtr(decimal.NewFromInt(60))}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockDebtRepo.On("FindDebtForUpdate", ctx, nil, debt.DebtID).Return(debt, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).
		Return(suite.lockedAccount(accountID), nil).Once()
	suite.mockTxnRepo.On("InsertTransactionInTx", ctx, nil, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockAccountRepo.On("ApplyBalanceDeltasInTx", ctx, nil, mock.Anything, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDebtRepo.On("UpdateDebtInTx", ctx, nil, mock.MatchedBy(func(updated domain.Debt) bool {
		return updated.PendingAmount.IsZero() &&
			updated.Status == domain.DebtPaid &&
			updated.PaidAt != nil
	})).Return(nil).Once()

	paid, err := suite.service.PayDebt(ctx, debt.DebtID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DebtPaid, paid.Status)
	suite.True(paid.PendingAmount.IsZero())
	suite.NotNil(paid.PaidAt)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestPayDebt_OverpaymentRejected() {
	ctx := context.Background()
	debt := suite.openDebt(100, 30)
	req := dto.PayDebtRequest{AccountID: uuid.NewString(), Amount: decimalPtr(decimal.NewFromInt(50))}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockDebtRepo.On("FindDebtForUpdate", ctx, nil, debt.DebtID).Return(debt, nil).Once()

	paid, err := suite.service.PayDebt(ctx, debt.DebtID, req)

	suite.Require().Error(err)
	suite.Nil(paid)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrPaymentTooLarge)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "InsertTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "UpdateDebtInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestPayDebt_OmittedAmountPaysFullPending() {
	ctx := context.Background()
	debt := suite.openDebt(100, 75)
	accountID := uuid.NewString()
	req := dto.PayDebtRequest{AccountID: accountID}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockDebtRepo.On("FindDebtForUpdate", ctx, nil, debt.DebtID).Return(debt, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).
		Return(suite.lockedAccount(accountID), nil).Once()
	suite.mockTxnRepo.On("InsertTransactionInTx", ctx, nil, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(decimal.NewFromInt(75))
	})).Return(nil).Once()
	suite.mockAccountRepo.On("ApplyBalanceDeltasInTx", ctx, nil, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas[accountID].Equal(decimal.NewFromInt(-75))
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDebtRepo.On("UpdateDebtInTx", ctx, nil, mock.MatchedBy(func(updated domain.Debt) bool {
		return updated.PendingAmount.IsZero() && updated.Status == domain.DebtPaid
	})).Return(nil).Once()

	paid, err := suite.service.PayDebt(ctx, debt.DebtID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DebtPaid, paid.Status)
	suite.True(paid.PendingAmount.IsZero())
	suite.mockDebtRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestPayDebt_InsufficientBalanceRejected() {
	ctx := context.Background()
	debt := suite.openDebt(100, 80)
	accountID := uuid.NewString()
	// Account only holds 50 against a payment of 80
	accounts := map[string]domain.Account{
		accountID: {AccountID: accountID, Balance: decimal.NewFromInt(50)},
	}
	req := dto.PayDebtRequest{AccountID: accountID, Amount: decimalPtr(decimal.NewFromInt(80))}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockDebtRepo.On("FindDebtForUpdate", ctx, nil, debt.DebtID).Return(debt, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, []string{accountID}).Return(accounts, nil).Once()

	paid, err := suite.service.PayDebt(ctx, debt.DebtID, req)

	suite.Require().Error(err)
	suite.Nil(paid)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrInsufficientBalance)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "InsertTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestPayDebt_AlreadyPaidRejected() {
	ctx := context.Background()
	debt := suite.openDebt(100, 0)
	debt.Status = domain.DebtPaid
	req := dto.PayDebtRequest{AccountID: uuid.NewString(), Amount: decimalPtr(decimal.NewFromInt(10))}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockDebtRepo.On("FindDebtForUpdate", ctx, nil, debt.DebtID).Return(debt, nil).Once()

	paid, err := suite.service.PayDebt(ctx, debt.DebtID, req)

	suite.Require().Error(err)
	suite.Nil(paid)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrDebtAlreadyPaid)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestPayDebt_NonPositiveAmountRejected() {
	ctx := context.Background()

	paid, err := suite.service.PayDebt(ctx, uuid.NewString(), dto.PayDebtRequest{
		AccountID: uuid.NewString(),
		Amount:    decimalPtr(decimal.Zero),
	})

	suite.Require().Error(err)
	suite.Nil(paid)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactor.AssertNotCalled(suite.T(), "WithTx", mock.Anything)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
