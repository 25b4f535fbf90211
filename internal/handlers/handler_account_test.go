package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/finanzapp/finanzas_backend/internal/handlers"
	"github.com/finanzapp/finanzas_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finanzas-test",
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

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockAccountService = new(MockAccountService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		ReceiptBaseURL: "/receipts",
		IsProduction:   true, // keeps swagger routes out of the test router
	}
	container := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container, suite.T().TempDir())
}

func (suite *AccountHandlerTestSuite) doRequest(method, url string, body []byte, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	expected := []domain.Account{
		{AccountID: uuid.NewString(), Name: "Checking", Balance: decimal.NewFromInt(100)},
		{AccountID: uuid.NewString(), Name: "Savings", Balance: decimal.NewFromInt(2500)},
	}
	suite.mockAccountService.On("ListAccounts", mock.Anything).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Accounts, 2)
	suite.Equal(expected[0].AccountID, body.Accounts[0].AccountID)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_MissingTokenRejected() {
	w := suite.doRequest(http.MethodGet, "/api/v1/accounts", nil, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	payload := []byte(`{"name":"Checking","balance":"150.50"}`)
	created := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Checking",
		Balance:   decimal.RequireFromString("150.50"),
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.Name == "Checking" && req.Balance.Equal(decimal.RequireFromString("150.50"))
	})).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", payload, true)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.AccountID, body.AccountID)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MalformedBodyRejected() {
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", []byte(`{"name":`), true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_ConflictWhileReferenced() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("DeleteAccount", mock.Anything, accountID).
		Return(apperrors.ErrConflict).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil, true)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
