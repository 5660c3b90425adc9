package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/handlers"
	"github.com/retailware/cashbox_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	args := m.Called(ctx, expenseID, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockExpenseService *MockExpenseService
	jwtSecret          string
	userID             string
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockExpenseService = new(MockExpenseService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	services := &portssvc.ServiceContainer{
		ExpenseSvc: suite.mockExpenseService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// generateTestToken creates a signed JWT for the test user.
func (suite *ExpenseHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cashbox-test",
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

func (suite *ExpenseHandlerTestSuite) postExpense(body []byte, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	reqBody := dto.CreateExpenseRequest{
		Category:      "rent",
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: "cash",
	}
	expected := &domain.Expense{
		ExpenseID:     uuid.NewString(),
		Category:      "rent",
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: domain.PaymentCash,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: suite.userID,
		},
	}

	suite.mockExpenseService.On("CreateExpense", mock.Anything, mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
		return req.Category == "rent" && req.Amount.Equal(decimal.NewFromInt(500))
	}), suite.userID).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.postExpense(body, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ExpenseID, resp.ExpenseID)
	suite.Equal("rent", resp.Category)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(500)))
	suite.Equal("cash", resp.PaymentMethod)
	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_InsufficientBalanceBody() {
	reqBody := dto.CreateExpenseRequest{
		Category:      "supplies",
		Amount:        decimal.NewFromInt(900),
		PaymentMethod: "cash",
	}
	balErr := apperrors.NewInsufficientBalanceError("safe", decimal.NewFromInt(100), decimal.NewFromInt(900))

	suite.mockExpenseService.On("CreateExpense", mock.Anything, mock.AnythingOfType("dto.CreateExpenseRequest"), suite.userID).
		Return(nil, balErr).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.postExpense(body, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	// Clients key on this exact shape; every field must survive the trip.
	var resp dto.InsufficientBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("INSUFFICIENT_BALANCE", resp.Error)
	suite.NotEmpty(resp.Message)
	suite.True(resp.RequiredAmount.Equal(decimal.NewFromInt(900)))
	suite.True(resp.AvailableBalance.Equal(decimal.NewFromInt(100)))
	suite.Equal("safe", resp.MoneyBoxName)
	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_NoOpenCashBoxConflict() {
	reqBody := dto.CreateExpenseRequest{
		Category:      "supplies",
		Amount:        decimal.NewFromInt(50),
		PaymentMethod: "cash",
	}

	suite.mockExpenseService.On("CreateExpense", mock.Anything, mock.AnythingOfType("dto.CreateExpenseRequest"), suite.userID).
		Return(nil, apperrors.ErrNoOpenCashBox).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.postExpense(body, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_MissingTokenUnauthorized() {
	body, _ := json.Marshal(dto.CreateExpenseRequest{
		Category:      "rent",
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "cash",
	})

	w := suite.postExpense(body, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_InvalidPaymentMethodRejected() {
	body := []byte(`{"category":"rent","amount":10,"paymentMethod":"barter"}`)

	w := suite.postExpense(body, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_NotFound() {
	expenseID := uuid.NewString()

	suite.mockExpenseService.On("GetExpenseByID", mock.Anything, expenseID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses/"+expenseID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestExpenseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
