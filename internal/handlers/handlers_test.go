package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/SscSPs/cashflow_app/internal/handlers"
	"github.com/SscSPs/cashflow_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedgerView(ctx context.Context, cap domain.Capability, dateRange *domain.DateRange) (*domain.LedgerView, error) {
	args := m.Called(ctx, cap, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerView), args.Error(1)
}
func (m *MockLedgerService) GetTodayView(ctx context.Context, cap domain.Capability) (*domain.LedgerView, error) {
	args := m.Called(ctx, cap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerView), args.Error(1)
}
func (m *MockLedgerService) ListSafeTransactions(ctx context.Context, cap domain.Capability, safeID string, limit int, nextToken *string) (*domain.TransactionPage, error) {
	args := m.Called(ctx, cap, safeID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}
func (m *MockLedgerService) RecomputeBalanceInTx(ctx context.Context, tx pgx.Tx, safeID string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, safeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) RecomputeBalance(ctx context.Context, cap domain.Capability, safeID string) (decimal.Decimal, error) {
	args := m.Called(ctx, cap, safeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) RecomputeAllBalances(ctx context.Context, cap domain.Capability) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, cap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, cap domain.Capability, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, cap, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, cap domain.Capability, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, cap, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, cap domain.Capability, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, cap, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, cap domain.Capability, transactionID string) error {
	args := m.Called(ctx, cap, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock SafeService ---
type MockSafeService struct {
	mock.Mock
}

func (m *MockSafeService) GetSafeByID(ctx context.Context, cap domain.Capability, safeID string) (*domain.Safe, error) {
	args := m.Called(ctx, cap, safeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Safe), args.Error(1)
}
func (m *MockSafeService) ListSafes(ctx context.Context, cap domain.Capability) ([]domain.Safe, error) {
	args := m.Called(ctx, cap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Safe), args.Error(1)
}
func (m *MockSafeService) CreateSafe(ctx context.Context, cap domain.Capability, req dto.CreateSafeRequest) (*domain.Safe, error) {
	args := m.Called(ctx, cap, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Safe), args.Error(1)
}
func (m *MockSafeService) UpdateSafe(ctx context.Context, cap domain.Capability, safeID string, req dto.UpdateSafeRequest) (*domain.Safe, error) {
	args := m.Called(ctx, cap, safeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Safe), args.Error(1)
}
func (m *MockSafeService) DeleteSafe(ctx context.Context, cap domain.Capability, safeID string) error {
	args := m.Called(ctx, cap, safeID)
	return args.Error(0)
}

var _ portssvc.SafeSvcFacade = (*MockSafeService)(nil)

// --- Mock AccessGrantService ---
type MockAccessGrantService struct {
	mock.Mock
}

func (m *MockAccessGrantService) GetCapability(ctx context.Context, userID string) (domain.Capability, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Capability), args.Error(1)
}
func (m *MockAccessGrantService) AssignSafe(ctx context.Context, cap domain.Capability, req dto.AssignSafeRequest) (*domain.AccessGrant, error) {
	args := m.Called(ctx, cap, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessGrant), args.Error(1)
}
func (m *MockAccessGrantService) RevokeGrant(ctx context.Context, cap domain.Capability, userID, safeID string) error {
	args := m.Called(ctx, cap, userID, safeID)
	return args.Error(0)
}
func (m *MockAccessGrantService) ListGrants(ctx context.Context, cap domain.Capability, userID *string) ([]domain.AccessGrant, error) {
	args := m.Called(ctx, cap, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccessGrant), args.Error(1)
}

var _ portssvc.AccessGrantSvcFacade = (*MockAccessGrantService)(nil)

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	jwtSecret       string
	mockLedger      *MockLedgerService
	mockTransaction *MockTransactionService
	mockSafe        *MockSafeService
	mockAccess      *MockAccessGrantService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

const (
	adminID = "admin-1"
	clerkID = "clerk-1"
)

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cashflow-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLedger = new(MockLedgerService)
	suite.mockTransaction = new(MockTransactionService)
	suite.mockSafe = new(MockSafeService)
	suite.mockAccess = new(MockAccessGrantService)

	suite.mockAccess.On("GetCapability", mock.Anything, adminID).Return(domain.NewCapability(adminID, domain.RoleAdmin), nil).Maybe()
	suite.mockAccess.On("GetCapability", mock.Anything, clerkID).Return(domain.NewCapability(clerkID, domain.RoleStandard, "s1"), nil).Maybe()

	container := &portssvc.ServiceContainer{
		Ledger:      suite.mockLedger,
		Transaction: suite.mockTransaction,
		Safe:        suite.mockSafe,
		AccessGrant: suite.mockAccess,
	}

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret), middleware.LoadCapability(suite.mockAccess))
	handlers.RegisterAPIRoutes(v1, container)
}

func (suite *HandlerTestSuite) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func isClerk(cap domain.Capability) bool {
	return cap.UserID == clerkID && !cap.IsAdmin()
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestGetLedger_RendersRunningBalances() {
	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	income := domain.Transaction{TransactionID: "t1", SafeID: "s1", CategoryType: domain.Income, Amount: decimal.NewFromInt(500), TransactionDate: day}
	expense := domain.Transaction{TransactionID: "t2", SafeID: "s1", CategoryType: domain.Expense, Amount: decimal.NewFromInt(50), TransactionDate: day.Add(time.Hour)}
	annotated := []domain.AnnotatedTransaction{
		{Transaction: expense, RunningBalance: decimal.NewFromInt(450)},
		{Transaction: income, RunningBalance: decimal.NewFromInt(500)},
	}
	view := &domain.LedgerView{
		Safes:        []domain.SafeLedger{{SafeID: "s1", SafeName: "Main", SafeBalance: decimal.NewFromInt(450), Transactions: annotated}},
		Combined:     annotated,
		TotalBalance: decimal.NewFromInt(450),
		CurrentDate:  day,
	}
	suite.mockLedger.On("GetLedgerView", mock.Anything, mock.MatchedBy(isClerk), (*domain.DateRange)(nil)).Return(view, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", clerkID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Safes, 1)
	suite.Require().Len(res.Safes[0].Transactions, 2)
	suite.Equal("t2", res.Safes[0].Transactions[0].TransactionID)
	suite.Equal("-50", res.Safes[0].Transactions[0].SignedAmount.String())
	suite.Equal("450", res.Safes[0].Transactions[0].RunningBalance.String())
	suite.Equal("500", res.Safes[0].Transactions[1].RunningBalance.String())
	suite.Equal("450", res.TotalBalance.String())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetLedger_PassesDateRange() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockLedger.On("GetLedgerView", mock.Anything, mock.Anything, mock.MatchedBy(func(r *domain.DateRange) bool {
		return r != nil && r.From.Equal(from) && r.To.Equal(to)
	})).Return(&domain.LedgerView{Safes: []domain.SafeLedger{}, Combined: []domain.AnnotatedTransaction{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?from=2024-03-01T00:00:00Z&to=2024-03-31T00:00:00Z", clerkID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetLedger_InvertedRangeIsBadRequest() {
	suite.mockLedger.On("GetLedgerView", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?from=2024-03-31T00:00:00Z&to=2024-03-01T00:00:00Z", clerkID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetToday_OmitsRunningBalances() {
	income := domain.Transaction{TransactionID: "t3", SafeID: "s1", CategoryType: domain.Income, Amount: decimal.NewFromInt(200), TransactionDate: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	annotated := []domain.AnnotatedTransaction{{Transaction: income, RunningBalance: decimal.NewFromInt(200)}}
	flow := domain.FlowSummary{Income: decimal.NewFromInt(200), Expense: decimal.Zero, Net: decimal.NewFromInt(200)}
	view := &domain.LedgerView{
		Safes:        []domain.SafeLedger{{SafeID: "s1", SafeName: "Main", SafeBalance: decimal.NewFromInt(650), Transactions: annotated, Flow: &flow}},
		Combined:     annotated,
		TotalBalance: decimal.NewFromInt(650),
		Flow:         &flow,
	}
	suite.mockLedger.On("GetTodayView", mock.Anything, mock.MatchedBy(isClerk)).Return(view, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/today", clerkID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "runningBalance")
	var res dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().NotNil(res.Flow)
	suite.Equal("200", res.Flow.Income.String())
	suite.Equal("650", res.Safes[0].SafeBalance.String())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/safes", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSafe.AssertNotCalled(suite.T(), "ListSafes", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateTransaction_Success() {
	created := &domain.Transaction{
		TransactionID: "t3",
		SafeID:        "s1",
		CategoryID:    "c-sales",
		CategoryType:  domain.Income,
		Amount:        decimal.NewFromInt(200),
		PaymentMethod: domain.PaymentCash,
	}
	suite.mockTransaction.On("CreateTransaction", mock.Anything, mock.MatchedBy(isClerk), mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.SafeID == "s1" && req.Amount.Equal(decimal.NewFromInt(200)) && req.PaymentMethod == domain.PaymentCash
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", clerkID, gin.H{
		"safeID":        "s1",
		"categoryID":    "c-sales",
		"amount":        "200",
		"paymentMethod": "cash",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("t3", res.TransactionID)
	suite.Equal("200", res.SignedAmount.String())
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateTransaction_RejectsInvalidBody() {
	cases := map[string]gin.H{
		"zero amount":      {"safeID": "s1", "categoryID": "c", "amount": "0", "paymentMethod": "cash"},
		"negative amount":  {"safeID": "s1", "categoryID": "c", "amount": "-5", "paymentMethod": "cash"},
		"sub-cent amount":  {"safeID": "s1", "categoryID": "c", "amount": "10.005", "paymentMethod": "cash"},
		"rounds to zero":   {"safeID": "s1", "categoryID": "c", "amount": "0.001", "paymentMethod": "cash"},
		"unknown method":   {"safeID": "s1", "categoryID": "c", "amount": "5", "paymentMethod": "barter"},
		"missing safe":     {"categoryID": "c", "amount": "5", "paymentMethod": "cash"},
		"missing category": {"safeID": "s1", "amount": "5", "paymentMethod": "cash"},
	}
	for name, body := range cases {
		w := suite.do(http.MethodPost, "/api/v1/transactions", clerkID, body)
		suite.Equal(http.StatusBadRequest, w.Code, name)
	}
	suite.mockTransaction.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateTransaction_ErrorMapping() {
	cases := []struct {
		err  error
		code int
	}{
		{apperrors.ErrForbidden, http.StatusForbidden},
		{apperrors.ErrValidation, http.StatusBadRequest},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrConsistency, http.StatusInternalServerError},
	}
	body := gin.H{"safeID": "s2", "categoryID": "c", "amount": "10", "paymentMethod": "check"}

	for _, tc := range cases {
		suite.mockTransaction.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err).Once()
		w := suite.do(http.MethodPost, "/api/v1/transactions", clerkID, body)
		suite.Equal(tc.code, w.Code, tc.err.Error())
	}
}

func (suite *HandlerTestSuite) TestCreateTransaction_ConsistencyFailureCarriesHint() {
	suite.mockTransaction.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrConsistency).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", clerkID, gin.H{"safeID": "s1", "categoryID": "c", "amount": "10", "paymentMethod": "cash"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	var res handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.NotEmpty(res.Hint)
}

func (suite *HandlerTestSuite) TestDeleteTransaction() {
	suite.mockTransaction.On("DeleteTransaction", mock.Anything, mock.Anything, "t-old").Return(apperrors.ErrForbidden).Once()
	suite.mockTransaction.On("DeleteTransaction", mock.Anything, mock.Anything, "t-today").Return(nil).Once()

	suite.Equal(http.StatusForbidden, suite.do(http.MethodDelete, "/api/v1/transactions/t-old", clerkID, nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/transactions/t-today", clerkID, nil).Code)
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateTransaction_PassesPartialFields() {
	suite.mockTransaction.On("UpdateTransaction", mock.Anything, mock.Anything, "t1", mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
		return req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(75)) && req.SafeID == nil && req.TransactionDate == nil
	})).Return(&domain.Transaction{TransactionID: "t1", CategoryType: domain.Expense, Amount: decimal.NewFromInt(75)}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/transactions/t1", clerkID, gin.H{"amount": "75"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSafeWrites_RequireAdmin() {
	w := suite.do(http.MethodPost, "/api/v1/safes", clerkID, gin.H{"name": "Petty cash"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/safes/s1/recompute", clerkID, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	suite.mockSafe.AssertNotCalled(suite.T(), "CreateSafe", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "RecomputeBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateSafe_AsAdmin() {
	suite.mockSafe.On("CreateSafe", mock.Anything, mock.Anything, dto.CreateSafeRequest{Name: "Petty cash"}).
		Return(&domain.Safe{SafeID: "s9", Name: "Petty cash", Balance: decimal.Zero}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/safes", adminID, gin.H{"name": "Petty cash"})

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.SafeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("s9", res.SafeID)
	suite.True(res.Balance.IsZero())
}

func (suite *HandlerTestSuite) TestDeleteSafe_InUseIsConflict() {
	suite.mockSafe.On("DeleteSafe", mock.Anything, mock.Anything, "s1").Return(apperrors.ErrConflict).Once()

	w := suite.do(http.MethodDelete, "/api/v1/safes/s1", adminID, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestRecompute() {
	suite.mockLedger.On("RecomputeBalance", mock.Anything, mock.Anything, "s1").Return(decimal.NewFromInt(650), nil).Once()
	suite.mockLedger.On("RecomputeAllBalances", mock.Anything, mock.Anything).
		Return(map[string]decimal.Decimal{"s2": decimal.NewFromInt(30), "s1": decimal.NewFromInt(650)}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/safes/s1/recompute", adminID, nil)
	suite.Equal(http.StatusOK, w.Code)
	var one dto.RecomputeBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &one))
	suite.Equal("650", one.Balance.String())

	w = suite.do(http.MethodPost, "/api/v1/safes/recompute", adminID, nil)
	suite.Equal(http.StatusOK, w.Code)
	var all []dto.RecomputeBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &all))
	suite.Require().Len(all, 2)
	suite.Equal("s1", all[0].SafeID)
	suite.Equal("s2", all[1].SafeID)
}

func (suite *HandlerTestSuite) TestListSafeTransactions() {
	next := "opaque"
	page := &domain.TransactionPage{
		SafeID: "s1",
		Transactions: []domain.AnnotatedTransaction{
			{Transaction: domain.Transaction{TransactionID: "t3", CategoryType: domain.Income, Amount: decimal.NewFromInt(200)}, RunningBalance: decimal.NewFromInt(650)},
		},
		NextToken: &next,
	}
	suite.mockLedger.On("ListSafeTransactions", mock.Anything, mock.Anything, "s1", 1, (*string)(nil)).Return(page, nil).Once()
	suite.mockLedger.On("ListSafeTransactions", mock.Anything, mock.Anything, "s1", 50, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "garbage"
	})).Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodGet, "/api/v1/safes/s1/transactions?limit=1", clerkID, nil)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.TransactionPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().NotNil(res.NextToken)
	suite.Equal("opaque", *res.NextToken)
	suite.Equal("650", res.Transactions[0].RunningBalance.String())

	w = suite.do(http.MethodGet, "/api/v1/safes/s1/transactions?nextToken=garbage", clerkID, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetSafe_HiddenIsForbidden() {
	suite.mockSafe.On("GetSafeByID", mock.Anything, mock.Anything, "s2").Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodGet, "/api/v1/safes/s2", clerkID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}
