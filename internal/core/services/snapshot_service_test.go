package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/core/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SnapshotServiceTestSuite struct {
	suite.Suite
	mockTransactor   *MockTransactor
	mockSnapshotRepo *MockSnapshotRepository
	service          portssvc.SnapshotSvcFacade
}

func (suite *SnapshotServiceTestSuite) SetupTest() {
	suite.mockTransactor = new(MockTransactor)
	suite.mockSnapshotRepo = new(MockSnapshotRepository)
	suite.service = services.NewSnapshotService(suite.mockTransactor, suite.mockSnapshotRepo)
}

func (suite *SnapshotServiceTestSuite) rollup() *domain.BalanceRollup {
	return &domain.BalanceRollup{BalanceTotal: decimal.NewFromInt(1000)}
}

func (suite *SnapshotServiceTestSuite) TestRecordSnapshot_FirstSnapshotHasZeroPnl() {
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := dto.RecordSnapshotRequest{Date: day, FinalBalance: decimal.NewFromInt(1500)}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockSnapshotRepo.On("LockRollupInTx", ctx, nil).Return(nil).Once()
	suite.mockSnapshotRepo.On("FindLatestSnapshotBeforeInTx", ctx, nil, day).Return(nil, nil).Once()
	suite.mockSnapshotRepo.On("UpsertSnapshotInTx", ctx, nil, mock.MatchedBy(func(snap domain.DailySnapshot) bool {
		return snap.Date.Equal(day) &&
			snap.FinalBalance.Equal(decimal.NewFromInt(1500)) &&
			snap.PnlDay.IsZero()
	})).Return(nil).Once()
	suite.mockSnapshotRepo.On("RecomputeRollupInTx", ctx, nil, day).Return(suite.rollup(), nil).Once()

	snap, err := suite.service.RecordSnapshot(ctx, req)

	suite.Require().NoError(err)
	suite.True(snap.PnlDay.IsZero())
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *SnapshotServiceTestSuite) TestRecordSnapshot_DerivesPnlFromLatestEarlierDay() {
	ctx := context.Background()
	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	prev := &domain.DailySnapshot{
		Date:         day.AddDate(0, 0, -1),
		FinalBalance: decimal.NewFromInt(1500),
	}
	req := dto.RecordSnapshotRequest{Date: day, FinalBalance: decimal.NewFromInt(1430)}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockSnapshotRepo.On("LockRollupInTx", ctx, nil).Return(nil).Once()
	suite.mockSnapshotRepo.On("FindLatestSnapshotBeforeInTx", ctx, nil, day).Return(prev, nil).Once()
	suite.mockSnapshotRepo.On("UpsertSnapshotInTx", ctx, nil, mock.MatchedBy(func(snap domain.DailySnapshot) bool {
		return snap.PnlDay.Equal(decimal.NewFromInt(-70))
	})).Return(nil).Once()
	suite.mockSnapshotRepo.On("RecomputeRollupInTx", ctx, nil, day).Return(suite.rollup(), nil).Once()

	snap, err := suite.service.RecordSnapshot(ctx, req)

	suite.Require().NoError(err)
	suite.True(snap.PnlDay.Equal(decimal.NewFromInt(-70)))
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *SnapshotServiceTestSuite) TestRecordSnapshot_TruncatesDateToMidnightUTC() {
	ctx := context.Background()
	lateEvening := time.Date(2025, 3, 12, 23, 45, 12, 0, time.UTC)
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	req := dto.RecordSnapshotRequest{Date: lateEvening, FinalBalance: decimal.NewFromInt(900)}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockSnapshotRepo.On("LockRollupInTx", ctx, nil).Return(nil).Once()
	suite.mockSnapshotRepo.On("FindLatestSnapshotBeforeInTx", ctx, nil, day).Return(nil, nil).Once()
	suite.mockSnapshotRepo.On("UpsertSnapshotInTx", ctx, nil, mock.MatchedBy(func(snap domain.DailySnapshot) bool {
		return snap.Date.Equal(day)
	})).Return(nil).Once()
	suite.mockSnapshotRepo.On("RecomputeRollupInTx", ctx, nil, day).Return(suite.rollup(), nil).Once()

	snap, err := suite.service.RecordSnapshot(ctx, req)

	suite.Require().NoError(err)
	suite.True(snap.Date.Equal(day))
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *SnapshotServiceTestSuite) TestRecordSnapshot_LockFailureAbortsBeforeWrite() {
	ctx := context.Background()
	day := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)
	req := dto.RecordSnapshotRequest{Date: day, FinalBalance: decimal.NewFromInt(100)}
	lockErr := errors.New("lock wait timeout")

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Once()
	suite.mockSnapshotRepo.On("LockRollupInTx", ctx, nil).Return(lockErr).Once()

	snap, err := suite.service.RecordSnapshot(ctx, req)

	suite.Require().Error(err)
	suite.Nil(snap)
	suite.ErrorIs(err, lockErr)
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "UpsertSnapshotInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "RecomputeRollupInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SnapshotServiceTestSuite) TestRecordSnapshot_SameDayRerecordReplacesAndReaggregates() {
	ctx := context.Background()
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	prev := &domain.DailySnapshot{
		Date:         day.AddDate(0, 0, -1),
		FinalBalance: decimal.NewFromInt(1000),
	}

	suite.mockTransactor.On("WithTx", ctx).Return(nil).Twice()
	suite.mockSnapshotRepo.On("LockRollupInTx", ctx, nil).Return(nil).Twice()
	suite.mockSnapshotRepo.On("FindLatestSnapshotBeforeInTx", ctx, nil, day).Return(prev, nil).Twice()
	// First recording of the day
	suite.mockSnapshotRepo.On("UpsertSnapshotInTx", ctx, nil, mock.MatchedBy(func(snap domain.DailySnapshot) bool {
		return snap.Date.Equal(day) &&
			snap.FinalBalance.Equal(decimal.NewFromInt(1100)) &&
			snap.PnlDay.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()
	// Re-recording the same date replaces the row; the day's PNL is derived
	// from the prior day again, not from the replaced record
	suite.mockSnapshotRepo.On("UpsertSnapshotInTx", ctx, nil, mock.MatchedBy(func(snap domain.DailySnapshot) bool {
		return snap.Date.Equal(day) &&
			snap.FinalBalance.Equal(decimal.NewFromInt(1200)) &&
			snap.PnlDay.Equal(decimal.NewFromInt(200))
	})).Return(nil).Once()
	suite.mockSnapshotRepo.On("RecomputeRollupInTx", ctx, nil, day).Return(suite.rollup(), nil).Twice()

	first, err := suite.service.RecordSnapshot(ctx, dto.RecordSnapshotRequest{
		Date:         day,
		FinalBalance: decimal.NewFromInt(1100),
	})
	suite.Require().NoError(err)
	suite.True(first.PnlDay.Equal(decimal.NewFromInt(100)))

	second, err := suite.service.RecordSnapshot(ctx, dto.RecordSnapshotRequest{
		Date:         day,
		FinalBalance: decimal.NewFromInt(1200),
	})
	suite.Require().NoError(err)
	suite.True(second.PnlDay.Equal(decimal.NewFromInt(200)))
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *SnapshotServiceTestSuite) TestRecordSnapshot_NegativeBalanceRejected() {
	ctx := context.Background()
	req := dto.RecordSnapshotRequest{
		Date:         time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		FinalBalance: decimal.NewFromInt(-1),
	}

	snap, err := suite.service.RecordSnapshot(ctx, req)

	suite.Require().Error(err)
	suite.Nil(snap)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactor.AssertNotCalled(suite.T(), "WithTx", mock.Anything)
}

func (suite *SnapshotServiceTestSuite) TestGetRollup_ReturnsCurrentAggregates() {
	ctx := context.Background()
	rollup := &domain.BalanceRollup{
		BalanceTotal: decimal.NewFromInt(2500),
		PnlDaily:     decimal.NewFromInt(50),
		PnlWeekly:    decimal.NewFromInt(120),
		PnlMonthly:   decimal.NewFromInt(300),
		PnlAnnual:    decimal.NewFromInt(900),
	}

	suite.mockSnapshotRepo.On("GetRollup", ctx).Return(rollup, nil).Once()

	got, err := suite.service.GetRollup(ctx)

	suite.Require().NoError(err)
	suite.True(got.BalanceTotal.Equal(decimal.NewFromInt(2500)))
	suite.True(got.PnlWeekly.Equal(decimal.NewFromInt(120)))
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func TestSnapshotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotServiceTestSuite))
}
