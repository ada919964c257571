package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	safeRepo *MockSafeRepository
	txnRepo  *MockTransactionRepository
	service  portssvc.LedgerSvcFacade
	ctx      context.Context
	admin    domain.Capability
	clerk    domain.Capability
	history  []domain.Transaction
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.safeRepo = new(MockSafeRepository)
	suite.txnRepo = new(MockTransactionRepository)
	suite.service = services.NewLedgerService(suite.safeRepo, suite.txnRepo, fixedClock())
	suite.ctx = context.Background()
	suite.admin = domain.NewCapability("admin", domain.RoleAdmin)
	suite.clerk = domain.NewCapability("clerk", domain.RoleStandard, "s1")
	suite.history = []domain.Transaction{
		movement("t1", "s1", domain.Income, 500, testNow.Add(-3*time.Hour)),
		movement("t2", "s1", domain.Expense, 50, testNow.Add(-2*time.Hour)),
		movement("t3", "s1", domain.Income, 200, testNow.Add(-1*time.Hour)),
	}
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.safeRepo.AssertExpectations(suite.T())
	suite.txnRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func balances(txns []domain.AnnotatedTransaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.RunningBalance.String()
	}
	return out
}

func (suite *LedgerServiceTestSuite) TestGetLedgerView_StandardUserSeesGrantedSafesOnly() {
	suite.safeRepo.On("ListSafesByIDs", mock.Anything, []string{"s1"}).
		Return([]domain.Safe{{SafeID: "s1", Name: "Main", Balance: decimal.NewFromInt(650)}}, nil).Once()
	suite.txnRepo.On("ListTransactionsBySafes", mock.Anything, []string{"s1"}, (*domain.DateRange)(nil)).
		Return(suite.history, nil).Once()

	view, err := suite.service.GetLedgerView(suite.ctx, suite.clerk, nil)

	suite.Require().NoError(err)
	suite.Require().Len(view.Safes, 1)
	suite.Equal("Main", view.Safes[0].SafeName)
	suite.Equal([]string{"650", "450", "500"}, balances(view.Safes[0].Transactions))
	suite.Equal("t3", view.Safes[0].Transactions[0].TransactionID)
	suite.Equal("650", view.TotalBalance.String())
	suite.Nil(view.Flow)
}

func (suite *LedgerServiceTestSuite) TestGetLedgerView_CombinedAcrossSafes() {
	suite.safeRepo.On("ListSafes", mock.Anything).Return([]domain.Safe{
		{SafeID: "s1", Name: "Main", Balance: decimal.NewFromInt(650)},
		{SafeID: "s2", Name: "Petty", Balance: decimal.NewFromInt(30)},
	}, nil).Once()
	txns := append([]domain.Transaction{
		movement("p1", "s2", domain.Income, 30, testNow.Add(-150*time.Minute)),
	}, suite.history...)
	suite.txnRepo.On("ListTransactionsBySafes", mock.Anything, []string{"s1", "s2"}, (*domain.DateRange)(nil)).Return(txns, nil).Once()

	view, err := suite.service.GetLedgerView(suite.ctx, suite.admin, nil)

	suite.Require().NoError(err)
	suite.Len(view.Safes, 2)
	suite.Equal([]string{"30"}, balances(view.Safes[1].Transactions))
	suite.Equal([]string{"680", "480", "530", "500"}, balances(view.Combined))
	suite.Equal("680", view.TotalBalance.String())
}

func (suite *LedgerServiceTestSuite) TestGetLedgerView_NoGrants() {
	view, err := suite.service.GetLedgerView(suite.ctx, domain.NewCapability("new", domain.RoleStandard), nil)

	suite.Require().NoError(err)
	suite.NotNil(view.Safes)
	suite.Empty(view.Safes)
	suite.NotNil(view.Combined)
	suite.Empty(view.Combined)
	suite.True(view.TotalBalance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestGetLedgerView_EmptySafe() {
	suite.safeRepo.On("ListSafesByIDs", mock.Anything, []string{"s1"}).
		Return([]domain.Safe{{SafeID: "s1", Name: "Main", Balance: decimal.Zero}}, nil).Once()
	suite.txnRepo.On("ListTransactionsBySafes", mock.Anything, []string{"s1"}, (*domain.DateRange)(nil)).
		Return([]domain.Transaction{}, nil).Once()

	view, err := suite.service.GetLedgerView(suite.ctx, suite.clerk, nil)

	suite.Require().NoError(err)
	suite.Require().Len(view.Safes, 1)
	suite.NotNil(view.Safes[0].Transactions)
	suite.Empty(view.Safes[0].Transactions)
	suite.Equal("0", view.TotalBalance.String())
}

func (suite *LedgerServiceTestSuite) TestGetLedgerView_InvertedRange() {
	r := &domain.DateRange{From: testNow, To: testNow.AddDate(0, 0, -1)}

	_, err := suite.service.GetLedgerView(suite.ctx, suite.admin, r)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestGetTodayView_AddsFlowTotals() {
	today := domain.DayRange(testNow)
	suite.safeRepo.On("ListSafesByIDs", mock.Anything, []string{"s1"}).
		Return([]domain.Safe{{SafeID: "s1", Name: "Main", Balance: decimal.NewFromInt(650)}}, nil).Once()
	suite.txnRepo.On("ListTransactionsBySafes", mock.Anything, []string{"s1"}, mock.MatchedBy(func(r *domain.DateRange) bool {
		return r != nil && r.From.Equal(today.From) && r.To.Equal(today.To)
	})).Return(suite.history, nil).Once()

	view, err := suite.service.GetTodayView(suite.ctx, suite.clerk)

	suite.Require().NoError(err)
	suite.Require().NotNil(view.Flow)
	suite.Equal("700", view.Flow.Income.String())
	suite.Equal("50", view.Flow.Expense.String())
	suite.Equal("650", view.Flow.Net.String())
	suite.Require().NotNil(view.Safes[0].Flow)
	suite.Equal("650", view.Safes[0].Flow.Net.String())
	suite.True(view.CurrentDate.Equal(testNow))
}

func (suite *LedgerServiceTestSuite) TestRecomputeBalance_Idempotent() {
	suite.safeRepo.On("Begin", mock.Anything).Return(nil, nil).Twice()
	suite.safeRepo.On("LockSafeForUpdate", mock.Anything, mock.Anything, "s1").Return(&domain.Safe{SafeID: "s1"}, nil).Twice()
	suite.txnRepo.On("FindTransactionsBySafeInTx", mock.Anything, mock.Anything, "s1").Return(suite.history, nil).Twice()
	suite.safeRepo.On("SaveSafeBalanceInTx", mock.Anything, mock.Anything, "s1", decimalEq("650")).Return(nil).Twice()
	suite.safeRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Twice()
	suite.safeRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Twice()

	first, err := suite.service.RecomputeBalance(suite.ctx, suite.admin, "s1")
	suite.Require().NoError(err)
	second, err := suite.service.RecomputeBalance(suite.ctx, suite.admin, "s1")
	suite.Require().NoError(err)

	suite.True(first.Equal(second))
	suite.Equal("650", first.String())
}

func (suite *LedgerServiceTestSuite) TestRecomputeBalance_UnknownSafe() {
	suite.safeRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.safeRepo.On("LockSafeForUpdate", mock.Anything, mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()
	suite.safeRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.RecomputeBalance(suite.ctx, suite.admin, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestRecomputeBalance_RequiresAdmin() {
	_, err := suite.service.RecomputeBalance(suite.ctx, suite.clerk, "s1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LedgerServiceTestSuite) TestRecomputeAllBalances() {
	suite.safeRepo.On("ListSafes", mock.Anything).Return([]domain.Safe{{SafeID: "s1"}, {SafeID: "s2"}}, nil).Once()
	suite.safeRepo.On("Begin", mock.Anything).Return(nil, nil).Twice()
	suite.safeRepo.On("LockSafeForUpdate", mock.Anything, mock.Anything, mock.AnythingOfType("string")).Return(&domain.Safe{}, nil).Twice()
	suite.txnRepo.On("FindTransactionsBySafeInTx", mock.Anything, mock.Anything, "s1").Return(suite.history, nil).Once()
	suite.txnRepo.On("FindTransactionsBySafeInTx", mock.Anything, mock.Anything, "s2").Return([]domain.Transaction{}, nil).Once()
	suite.safeRepo.On("SaveSafeBalanceInTx", mock.Anything, mock.Anything, "s1", decimalEq("650")).Return(nil).Once()
	suite.safeRepo.On("SaveSafeBalanceInTx", mock.Anything, mock.Anything, "s2", decimalEq("0")).Return(nil).Once()
	suite.safeRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Twice()
	suite.safeRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Twice()

	result, err := suite.service.RecomputeAllBalances(suite.ctx, suite.admin)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.Equal("650", result["s1"].String())
}

func (suite *LedgerServiceTestSuite) TestListSafeTransactions_PagesWithFullHistoryBalances() {
	suite.safeRepo.On("FindSafeByID", mock.Anything, "s1").Return(&domain.Safe{SafeID: "s1"}, nil).Twice()
	suite.txnRepo.On("ListTransactionsBySafes", mock.Anything, []string{"s1"}, (*domain.DateRange)(nil)).Return(suite.history, nil).Twice()

	first, err := suite.service.ListSafeTransactions(suite.ctx, suite.clerk, "s1", 2, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"650", "450"}, balances(first.Transactions))
	suite.Require().NotNil(first.NextToken)

	second, err := suite.service.ListSafeTransactions(suite.ctx, suite.clerk, "s1", 2, first.NextToken)
	suite.Require().NoError(err)
	suite.Equal([]string{"500"}, balances(second.Transactions))
	suite.Nil(second.NextToken)
}

func (suite *LedgerServiceTestSuite) TestListSafeTransactions_BadToken() {
	suite.safeRepo.On("FindSafeByID", mock.Anything, "s1").Return(&domain.Safe{SafeID: "s1"}, nil).Once()
	suite.txnRepo.On("ListTransactionsBySafes", mock.Anything, []string{"s1"}, (*domain.DateRange)(nil)).Return(suite.history, nil).Once()
	token := "%%%not-base64"

	_, err := suite.service.ListSafeTransactions(suite.ctx, suite.clerk, "s1", 2, &token)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListSafeTransactions_HiddenSafe() {
	_, err := suite.service.ListSafeTransactions(suite.ctx, suite.clerk, "s2", 10, nil)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}
