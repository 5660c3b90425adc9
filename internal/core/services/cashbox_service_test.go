package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CashBoxRepository ---
type MockCashBoxRepository struct {
	mock.Mock
}

var _ portsrepo.CashBoxRepositoryFacade = (*MockCashBoxRepository)(nil)

func (m *MockCashBoxRepository) FindCashBoxByID(ctx context.Context, cashBoxID string) (*domain.CashBox, error) {
	args := m.Called(ctx, cashBoxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBox), args.Error(1)
}

func (m *MockCashBoxRepository) FindOpenCashBoxByUser(ctx context.Context, userID string) (*domain.CashBox, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBox), args.Error(1)
}

func (m *MockCashBoxRepository) ListCashBoxTransactions(ctx context.Context, cashBoxID string, limit int, nextToken *string) ([]domain.CashBoxTransaction, *string, error) {
	args := m.Called(ctx, cashBoxID, limit, nextToken)
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

func (m *MockCashBoxRepository) FindCashBoxTransactionsByDateRange(ctx context.Context, cashBoxID string, from, to time.Time) ([]domain.CashBoxTransaction, error) {
	args := m.Called(ctx, cashBoxID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBoxTransaction), args.Error(1)
}

func (m *MockCashBoxRepository) SaveCashBox(ctx context.Context, box domain.CashBox) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockCashBoxRepository) CloseCashBox(ctx context.Context, cashBoxID, userID string, closedAt time.Time) error {
	args := m.Called(ctx, cashBoxID, userID, closedAt)
	return args.Error(0)
}

func (m *MockCashBoxRepository) AppendCashBoxTransaction(ctx context.Context, txn domain.CashBoxTransaction) (*domain.CashBoxTransaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBoxTransaction), args.Error(1)
}

// --- Test Suite Setup ---
type CashBoxServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCashBoxRepository
	service  portssvc.CashBoxSvcFacade
	userID   string
	openBox  *domain.CashBox
}

func (suite *CashBoxServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCashBoxRepository)
	suite.service = services.NewCashBoxService(suite.mockRepo)
	suite.userID = uuid.NewString()
	suite.openBox = &domain.CashBox{
		CashBoxID:      uuid.NewString(),
		UserID:         suite.userID,
		Status:         domain.CashBoxOpen,
		OpeningBalance: decimal.NewFromInt(100),
		Balance:        decimal.NewFromInt(100),
		OpenedAt:       time.Now().UTC(),
	}
}

func (suite *CashBoxServiceTestSuite) TestOpenCashBox_Success() {
	ctx := context.Background()
	opening := decimal.NewFromInt(200)

	suite.mockRepo.On("FindOpenCashBoxByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCashBox", ctx, mock.MatchedBy(func(box domain.CashBox) bool {
		return box.UserID == suite.userID &&
			box.Status == domain.CashBoxOpen &&
			box.OpeningBalance.Equal(opening) &&
			box.Balance.Equal(opening)
	})).Return(nil).Once()

	box, err := suite.service.OpenCashBox(ctx, suite.userID, opening)

	suite.Require().NoError(err)
	suite.Require().NotNil(box)
	suite.NotEmpty(box.CashBoxID)
	// Opening balance seeds the running balance; no ledger entry is written for it.
	suite.True(box.Balance.Equal(opening))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashBoxServiceTestSuite) TestOpenCashBox_SecondOpenBoxConflicts() {
	ctx := context.Background()

	suite.mockRepo.On("FindOpenCashBoxByUser", ctx, suite.userID).Return(suite.openBox, nil).Once()

	_, err := suite.service.OpenCashBox(ctx, suite.userID, decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCashBox", mock.Anything, mock.Anything)
}

func (suite *CashBoxServiceTestSuite) TestOpenCashBox_RejectsNegativeOpeningBalance() {
	ctx := context.Background()

	_, err := suite.service.OpenCashBox(ctx, suite.userID, decimal.NewFromInt(-5))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashBoxServiceTestSuite) TestCloseCashBox_NoOpenBox() {
	ctx := context.Background()

	suite.mockRepo.On("FindOpenCashBoxByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CloseCashBox(ctx, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoOpenCashBox)
}

func (suite *CashBoxServiceTestSuite) TestCloseCashBox_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindOpenCashBoxByUser", ctx, suite.userID).Return(suite.openBox, nil).Once()
	suite.mockRepo.On("CloseCashBox", ctx, suite.openBox.CashBoxID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	box, err := suite.service.CloseCashBox(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CashBoxClosed, box.Status)
	suite.Require().NotNil(box.ClosedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashBoxServiceTestSuite) TestAddTransaction_NoOpenBox() {
	ctx := context.Background()

	suite.mockRepo.On("FindOpenCashBoxByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddTransaction(ctx, portssvc.CashTransactionParams{
		UserID:    suite.userID,
		Type:      domain.TxnSale,
		Direction: domain.Credit,
		Amount:    decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoOpenCashBox)
}

func (suite *CashBoxServiceTestSuite) TestAddTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.AddTransaction(ctx, portssvc.CashTransactionParams{
		UserID:    suite.userID,
		Type:      domain.TxnSale,
		Direction: domain.Credit,
		Amount:    decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindOpenCashBoxByUser", mock.Anything, mock.Anything)
}

func (suite *CashBoxServiceTestSuite) TestAddTransaction_AppendsToOpenBox() {
	ctx := context.Background()
	amount := decimal.NewFromInt(25)
	saleID := uuid.NewString()

	suite.mockRepo.On("FindOpenCashBoxByUser", ctx, suite.userID).Return(suite.openBox, nil).Once()
	suite.mockRepo.On("AppendCashBoxTransaction", ctx, mock.MatchedBy(func(txn domain.CashBoxTransaction) bool {
		return txn.CashBoxID == suite.openBox.CashBoxID &&
			txn.Type == domain.TxnSale &&
			txn.Direction == domain.Credit &&
			txn.Amount.Equal(amount) &&
			txn.ReferenceType == domain.RefSale &&
			txn.ReferenceID == saleID &&
			txn.TransactionID != ""
	})).Return(&domain.CashBoxTransaction{
		TransactionID: uuid.NewString(),
		CashBoxID:     suite.openBox.CashBoxID,
		Type:          domain.TxnSale,
		Direction:     domain.Credit,
		Amount:        amount,
		BalanceAfter:  decimal.NewFromInt(125),
	}, nil).Once()

	txn, err := suite.service.AddTransaction(ctx, portssvc.CashTransactionParams{
		UserID:        suite.userID,
		Type:          domain.TxnSale,
		Direction:     domain.Credit,
		Amount:        amount,
		ReferenceType: domain.RefSale,
		ReferenceID:   saleID,
	})

	suite.Require().NoError(err)
	suite.True(txn.BalanceAfter.Equal(decimal.NewFromInt(125)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashBoxServiceTestSuite) TestAddTransaction_InsufficientBalancePropagates() {
	ctx := context.Background()
	balErr := apperrors.NewInsufficientBalanceError("main", decimal.NewFromInt(100), decimal.NewFromInt(400))

	suite.mockRepo.On("FindOpenCashBoxByUser", ctx, suite.userID).Return(suite.openBox, nil).Once()
	suite.mockRepo.On("AppendCashBoxTransaction", ctx, mock.AnythingOfType("domain.CashBoxTransaction")).Return(nil, balErr).Once()

	_, err := suite.service.AddTransaction(ctx, portssvc.CashTransactionParams{
		UserID:    suite.userID,
		Type:      domain.TxnExpense,
		Direction: domain.Debit,
		Amount:    decimal.NewFromInt(400),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func (suite *CashBoxServiceTestSuite) TestGetTransactionsByDateRange_RejectsInvertedRange() {
	ctx := context.Background()
	from := time.Now().UTC()
	to := from.Add(-time.Hour)

	suite.mockRepo.On("FindOpenCashBoxByUser", ctx, suite.userID).Return(suite.openBox, nil).Once()

	_, err := suite.service.GetTransactionsByDateRange(ctx, suite.userID, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCashBoxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashBoxServiceTestSuite))
}
