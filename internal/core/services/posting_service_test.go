package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/core/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CashBoxService (as used by PostingService) ---
type MockCashBoxService struct {
	mock.Mock
}

var _ portssvc.CashBoxSvcFacade = (*MockCashBoxService)(nil)

func (m *MockCashBoxService) OpenCashBox(ctx context.Context, userID string, openingBalance decimal.Decimal) (*domain.CashBox, error) {
	args := m.Called(ctx, userID, openingBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBox), args.Error(1)
}

func (m *MockCashBoxService) CloseCashBox(ctx context.Context, userID string) (*domain.CashBox, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBox), args.Error(1)
}

func (m *MockCashBoxService) GetUserCashBox(ctx context.Context, userID string) (*domain.CashBox, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBox), args.Error(1)
}

func (m *MockCashBoxService) AddTransaction(ctx context.Context, p portssvc.CashTransactionParams) (*domain.CashBoxTransaction, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBoxTransaction), args.Error(1)
}

func (m *MockCashBoxService) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CashBoxTransaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.CashBoxTransaction), returnedNextToken, args.Error(2)
}

func (m *MockCashBoxService) GetTransactionsByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.CashBoxTransaction, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBoxTransaction), args.Error(1)
}

// --- Mock MoneyBoxService (as used by PostingService) ---
type MockMoneyBoxService struct {
	mock.Mock
}

var _ portssvc.MoneyBoxSvcFacade = (*MockMoneyBoxService)(nil)

func (m *MockMoneyBoxService) CreateMoneyBox(ctx context.Context, req dto.CreateMoneyBoxRequest, creatorUserID string) (*domain.MoneyBox, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyBox), args.Error(1)
}

func (m *MockMoneyBoxService) GetMoneyBoxByID(ctx context.Context, moneyBoxID string) (*domain.MoneyBox, error) {
	args := m.Called(ctx, moneyBoxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyBox), args.Error(1)
}

func (m *MockMoneyBoxService) ListMoneyBoxes(ctx context.Context) ([]domain.MoneyBox, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoneyBox), args.Error(1)
}

func (m *MockMoneyBoxService) UpdateMoneyBox(ctx context.Context, moneyBoxID string, req dto.UpdateMoneyBoxRequest, updaterUserID string) (*domain.MoneyBox, error) {
	args := m.Called(ctx, moneyBoxID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyBox), args.Error(1)
}

func (m *MockMoneyBoxService) DeleteMoneyBox(ctx context.Context, moneyBoxID string) error {
	args := m.Called(ctx, moneyBoxID)
	return args.Error(0)
}

func (m *MockMoneyBoxService) AddTransaction(ctx context.Context, p portssvc.MoneyTransactionParams) (*domain.MoneyBoxTransaction, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyBoxTransaction), args.Error(1)
}

func (m *MockMoneyBoxService) ManualTransaction(ctx context.Context, moneyBoxID string, req dto.BoxTransactionRequest, userID string) (*domain.MoneyBoxTransaction, error) {
	args := m.Called(ctx, moneyBoxID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyBoxTransaction), args.Error(1)
}

func (m *MockMoneyBoxService) TransferBetweenBoxes(ctx context.Context, fromBoxID, toBoxID string, amount decimal.Decimal, notes, userID string) (*domain.MoneyBoxTransaction, *domain.MoneyBoxTransaction, error) {
	args := m.Called(ctx, fromBoxID, toBoxID, amount, notes, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.MoneyBoxTransaction), args.Get(1).(*domain.MoneyBoxTransaction), args.Error(2)
}

func (m *MockMoneyBoxService) ListTransactions(ctx context.Context, moneyBoxID string, limit int, nextToken *string) ([]domain.MoneyBoxTransaction, *string, error) {
	args := m.Called(ctx, moneyBoxID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.MoneyBoxTransaction), returnedNextToken, args.Error(2)
}

func (m *MockMoneyBoxService) GetTransactionsByDateRange(ctx context.Context, moneyBoxID string, from, to time.Time) ([]domain.MoneyBoxTransaction, error) {
	args := m.Called(ctx, moneyBoxID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoneyBoxTransaction), args.Error(1)
}

// --- Test Suite Setup ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockCashBoxSvc  *MockCashBoxService
	mockMoneyBoxSvc *MockMoneyBoxService
	service         portssvc.PostingSvcFacade
	userID          string
	moneyBoxID      string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockCashBoxSvc = new(MockCashBoxService)
	suite.mockMoneyBoxSvc = new(MockMoneyBoxService)
	suite.service = services.NewPostingService(suite.mockCashBoxSvc, suite.mockMoneyBoxSvc)
	suite.userID = uuid.NewString()
	suite.moneyBoxID = uuid.NewString()
}

func (suite *PostingServiceTestSuite) cashTxn(amount decimal.Decimal) *domain.CashBoxTransaction {
	return &domain.CashBoxTransaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Amount:        amount,
		BalanceAfter:  amount,
	}
}

func (suite *PostingServiceTestSuite) moneyTxn(amount decimal.Decimal) *domain.MoneyBoxTransaction {
	return &domain.MoneyBoxTransaction{
		TransactionID: uuid.NewString(),
		MoneyBoxID:    suite.moneyBoxID,
		Amount:        amount,
		BalanceAfter:  amount,
	}
}

func (suite *PostingServiceTestSuite) TestPostEvent_SaleCreditsCashBox() {
	ctx := context.Background()
	amount := decimal.NewFromInt(150)
	saleID := uuid.NewString()

	suite.mockCashBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.CashTransactionParams) bool {
		return p.UserID == suite.userID &&
			p.Type == domain.TxnSale &&
			p.Direction == domain.Credit &&
			p.Amount.Equal(amount) &&
			p.ReferenceType == domain.RefSale &&
			p.ReferenceID == saleID
	})).Return(suite.cashTxn(amount), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventSaleCreated,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        amount,
		ReferenceID:   saleID,
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertExpectations(suite.T())
	suite.mockMoneyBoxSvc.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_NonCashPaymentPostsNothing() {
	ctx := context.Background()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventSaleCreated,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCard,
		Amount:        decimal.NewFromInt(100),
		ReferenceID:   uuid.NewString(),
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
	suite.mockMoneyBoxSvc.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_ZeroAmountPostsNothing() {
	ctx := context.Background()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventSaleCreated,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        decimal.Zero,
		ReferenceID:   uuid.NewString(),
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_MainSentinelRoutesToCashBox() {
	ctx := context.Background()
	amount := decimal.NewFromInt(40)

	suite.mockCashBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.CashTransactionParams) bool {
		return p.Type == domain.TxnExpense && p.Direction == domain.Debit
	})).Return(suite.cashTxn(amount), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventExpenseCreated,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        amount,
		MoneyBoxID:    domain.MainCashBoxSentinel,
		ReferenceID:   uuid.NewString(),
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertExpectations(suite.T())
	suite.mockMoneyBoxSvc.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_NamedBoxRoutesToMoneyBox() {
	ctx := context.Background()
	amount := decimal.NewFromInt(75)
	purchaseID := uuid.NewString()

	suite.mockMoneyBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.MoneyTransactionParams) bool {
		return p.MoneyBoxID == suite.moneyBoxID &&
			p.Type == domain.TxnPurchase &&
			p.Direction == domain.Debit &&
			p.Amount.Equal(amount) &&
			p.ReferenceType == domain.RefPurchase &&
			p.ReferenceID == purchaseID
	})).Return(suite.moneyTxn(amount), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventPurchaseCreated,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        amount,
		MoneyBoxID:    suite.moneyBoxID,
		ReferenceID:   purchaseID,
	})

	suite.Require().NoError(err)
	suite.mockMoneyBoxSvc.AssertExpectations(suite.T())
	suite.mockCashBoxSvc.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_SaleReturnPostsWithdrawal() {
	ctx := context.Background()
	amount := decimal.NewFromInt(30)
	returnID := uuid.NewString()

	suite.mockCashBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.CashTransactionParams) bool {
		return p.Type == domain.TxnWithdrawal &&
			p.Direction == domain.Debit &&
			p.ReferenceType == domain.RefSaleReturn &&
			p.ReferenceID == returnID
	})).Return(suite.cashTxn(amount), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventSaleReturn,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        amount,
		ReferenceID:   returnID,
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_InsufficientBalancePropagates() {
	ctx := context.Background()
	balErr := apperrors.NewInsufficientBalanceError("main", decimal.NewFromInt(10), decimal.NewFromInt(50))

	suite.mockCashBoxSvc.On("AddTransaction", ctx, mock.AnythingOfType("services.CashTransactionParams")).
		Return(nil, balErr).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventExpenseCreated,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        decimal.NewFromInt(50),
		ReferenceID:   uuid.NewString(),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockCashBoxSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_UnknownEventTypeFails() {
	ctx := context.Background()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventType("bogus"),
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        decimal.NewFromInt(5),
	})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "no posting rule")
}

func (suite *PostingServiceTestSuite) TestExpenseUpdate_SameBoxPositiveDelta() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	// 50 -> 80 on the same box nets a single 30 debit.
	suite.mockMoneyBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.MoneyTransactionParams) bool {
		return p.MoneyBoxID == suite.moneyBoxID &&
			p.Type == domain.TxnExpenseUpdate &&
			p.Direction == domain.Debit &&
			p.Amount.Equal(decimal.NewFromInt(30)) &&
			p.ReferenceType == domain.RefExpense
	})).Return(suite.moneyTxn(decimal.NewFromInt(30)), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:               domain.EventExpenseUpdated,
		UserID:             suite.userID,
		PaymentMethod:      domain.PaymentCash,
		Amount:             decimal.NewFromInt(80),
		MoneyBoxID:         suite.moneyBoxID,
		ReferenceID:        expenseID,
		PreviousAmount:     decimal.NewFromInt(50),
		PreviousMoneyBoxID: suite.moneyBoxID,
	})

	suite.Require().NoError(err)
	suite.mockMoneyBoxSvc.AssertExpectations(suite.T())
	suite.mockMoneyBoxSvc.AssertNumberOfCalls(suite.T(), "AddTransaction", 1)
}

func (suite *PostingServiceTestSuite) TestExpenseUpdate_SameBoxNegativeDelta() {
	ctx := context.Background()

	// 80 -> 50 credits the 30 difference back.
	suite.mockCashBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.CashTransactionParams) bool {
		return p.Type == domain.TxnExpenseUpdate &&
			p.Direction == domain.Credit &&
			p.Amount.Equal(decimal.NewFromInt(30))
	})).Return(suite.cashTxn(decimal.NewFromInt(30)), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:           domain.EventExpenseUpdated,
		UserID:         suite.userID,
		PaymentMethod:  domain.PaymentCash,
		Amount:         decimal.NewFromInt(50),
		ReferenceID:    uuid.NewString(),
		PreviousAmount: decimal.NewFromInt(80),
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestExpenseUpdate_UnchangedAmountPostsNothing() {
	ctx := context.Background()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:           domain.EventExpenseUpdated,
		UserID:         suite.userID,
		PaymentMethod:  domain.PaymentCash,
		Amount:         decimal.NewFromInt(50),
		ReferenceID:    uuid.NewString(),
		PreviousAmount: decimal.NewFromInt(50),
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
	suite.mockMoneyBoxSvc.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestExpenseUpdate_BoxMovedReversesAndReapplies() {
	ctx := context.Background()
	otherBoxID := uuid.NewString()
	expenseID := uuid.NewString()
	amount := decimal.NewFromInt(50)

	// Full reversal credit on the old box, then the full amount debited on the new one.
	suite.mockMoneyBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.MoneyTransactionParams) bool {
		return p.MoneyBoxID == suite.moneyBoxID &&
			p.Type == domain.TxnExpenseReversal &&
			p.Direction == domain.Credit &&
			p.Amount.Equal(amount)
	})).Return(suite.moneyTxn(amount), nil).Once()
	suite.mockMoneyBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.MoneyTransactionParams) bool {
		return p.MoneyBoxID == otherBoxID &&
			p.Type == domain.TxnExpense &&
			p.Direction == domain.Debit &&
			p.Amount.Equal(amount)
	})).Return(suite.moneyTxn(amount), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:               domain.EventExpenseUpdated,
		UserID:             suite.userID,
		PaymentMethod:      domain.PaymentCash,
		Amount:             amount,
		MoneyBoxID:         otherBoxID,
		ReferenceID:        expenseID,
		PreviousAmount:     amount,
		PreviousMoneyBoxID: suite.moneyBoxID,
	})

	suite.Require().NoError(err)
	suite.mockMoneyBoxSvc.AssertExpectations(suite.T())
	suite.mockMoneyBoxSvc.AssertNumberOfCalls(suite.T(), "AddTransaction", 2)
}

func (suite *PostingServiceTestSuite) TestExpenseUpdate_MoveToCashBox() {
	ctx := context.Background()
	amount := decimal.NewFromInt(25)

	suite.mockMoneyBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.MoneyTransactionParams) bool {
		return p.MoneyBoxID == suite.moneyBoxID && p.Type == domain.TxnExpenseReversal
	})).Return(suite.moneyTxn(amount), nil).Once()
	suite.mockCashBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.CashTransactionParams) bool {
		return p.Type == domain.TxnExpense && p.Direction == domain.Debit && p.Amount.Equal(amount)
	})).Return(suite.cashTxn(amount), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:               domain.EventExpenseUpdated,
		UserID:             suite.userID,
		PaymentMethod:      domain.PaymentCash,
		Amount:             amount,
		MoneyBoxID:         domain.MainCashBoxSentinel,
		ReferenceID:        uuid.NewString(),
		PreviousAmount:     amount,
		PreviousMoneyBoxID: suite.moneyBoxID,
	})

	suite.Require().NoError(err)
	suite.mockMoneyBoxSvc.AssertExpectations(suite.T())
	suite.mockCashBoxSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_ExpenseDeletedPostsReversal() {
	ctx := context.Background()
	amount := decimal.NewFromInt(60)
	expenseID := uuid.NewString()

	suite.mockCashBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.CashTransactionParams) bool {
		return p.Type == domain.TxnExpenseReversal &&
			p.Direction == domain.Credit &&
			p.Amount.Equal(amount) &&
			p.ReferenceType == domain.RefExpense &&
			p.ReferenceID == expenseID
	})).Return(suite.cashTxn(amount), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventExpenseDeleted,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        amount,
		ReferenceID:   expenseID,
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_DebtRepaymentIsCustomerReceipt() {
	ctx := context.Background()
	amount := decimal.NewFromInt(20)
	debtID := uuid.NewString()

	suite.mockCashBoxSvc.On("AddTransaction", ctx, mock.MatchedBy(func(p portssvc.CashTransactionParams) bool {
		return p.Type == domain.TxnCustomerReceipt &&
			p.Direction == domain.Credit &&
			p.ReferenceType == domain.RefDebt &&
			p.ReferenceID == debtID
	})).Return(suite.cashTxn(amount), nil).Once()

	err := suite.service.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventDebtRepaid,
		UserID:        suite.userID,
		PaymentMethod: domain.PaymentCash,
		Amount:        amount,
		ReferenceID:   debtID,
	})

	suite.Require().NoError(err)
	suite.mockCashBoxSvc.AssertExpectations(suite.T())
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
