package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockTxnRepo)
}

func (suite *ReportingServiceTestSuite) TestGetSummary_AggregatesBalanceIncomeAndExpenses() {
	ctx := context.Background()

	suite.mockAccountRepo.On("SumBalances", ctx).Return(decimal.NewFromInt(3200), nil).Once()
	suite.mockTxnRepo.On("SumAmountByType", ctx, domain.Income).Return(decimal.NewFromInt(5000), nil).Once()
	suite.mockTxnRepo.On("SumAmountByType", ctx, domain.Expense).Return(decimal.NewFromInt(1800), nil).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.Balance.Equal(decimal.NewFromInt(3200)))
	suite.True(summary.Income.Equal(decimal.NewFromInt(5000)))
	suite.True(summary.Expenses.Equal(decimal.NewFromInt(1800)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetSummary_BalanceQueryFailurePropagates() {
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	suite.mockAccountRepo.On("SumBalances", ctx).Return(decimal.Zero, dbErr).Once()

	summary, err := suite.service.GetSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, dbErr)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SumAmountByType", mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
