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
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MoneyBoxRepository ---
type MockMoneyBoxRepository struct {
	mock.Mock
}

var _ portsrepo.MoneyBoxRepositoryFacade = (*MockMoneyBoxRepository)(nil)

func (m *MockMoneyBoxRepository) FindMoneyBoxByID(ctx context.Context, moneyBoxID string) (*domain.MoneyBox, error) {
	args := m.Called(ctx, moneyBoxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyBox), args.Error(1)
}

func (m *MockMoneyBoxRepository) FindMoneyBoxByName(ctx context.Context, name string) (*domain.MoneyBox, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyBox), args.Error(1)
}

func (m *MockMoneyBoxRepository) ListMoneyBoxes(ctx context.Context) ([]domain.MoneyBox, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoneyBox), args.Error(1)
}

func (m *MockMoneyBoxRepository) ListMoneyBoxTransactions(ctx context.Context, moneyBoxID string, limit int, nextToken *string) ([]domain.MoneyBoxTransaction, *string, error) {
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

func (m *MockMoneyBoxRepository) FindMoneyBoxTransactionsByDateRange(ctx context.Context, moneyBoxID string, from, to time.Time) ([]domain.MoneyBoxTransaction, error) {
	args := m.Called(ctx, moneyBoxID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoneyBoxTransaction), args.Error(1)
}

func (m *MockMoneyBoxRepository) HasTransactions(ctx context.Context, moneyBoxID string) (bool, error) {
	args := m.Called(ctx, moneyBoxID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMoneyBoxRepository) SaveMoneyBox(ctx context.Context, box domain.MoneyBox) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockMoneyBoxRepository) UpdateMoneyBox(ctx context.Context, box domain.MoneyBox) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockMoneyBoxRepository) DeleteMoneyBox(ctx context.Context, moneyBoxID string) error {
	args := m.Called(ctx, moneyBoxID)
	return args.Error(0)
}

func (m *MockMoneyBoxRepository) AppendMoneyBoxTransaction(ctx context.Context, txn domain.MoneyBoxTransaction) (*domain.MoneyBoxTransaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyBoxTransaction), args.Error(1)
}

func (m *MockMoneyBoxRepository) TransferBetweenBoxes(ctx context.Context, fromBoxID, toBoxID string, amount decimal.Decimal, notes, userID string) (*domain.MoneyBoxTransaction, *domain.MoneyBoxTransaction, error) {
	args := m.Called(ctx, fromBoxID, toBoxID, amount, notes, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.MoneyBoxTransaction), args.Get(1).(*domain.MoneyBoxTransaction), args.Error(2)
}

// --- Test Suite Setup ---
type MoneyBoxServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMoneyBoxRepository
	service  portssvc.MoneyBoxSvcFacade
	userID   string
}

func (suite *MoneyBoxServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMoneyBoxRepository)
	suite.service = services.NewMoneyBoxService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *MoneyBoxServiceTestSuite) TestCreateMoneyBox_Success() {
	ctx := context.Background()
	opening := decimal.NewFromInt(500)
	req := dto.CreateMoneyBoxRequest{Name: "safe", Amount: &opening}

	suite.mockRepo.On("SaveMoneyBox", ctx, mock.MatchedBy(func(box domain.MoneyBox) bool {
		return box.Name == "safe" && box.Amount.Equal(opening) && box.MoneyBoxID != ""
	})).Return(nil).Once()

	box, err := suite.service.CreateMoneyBox(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("safe", box.Name)
	suite.True(box.Amount.Equal(opening))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MoneyBoxServiceTestSuite) TestCreateMoneyBox_ReservedNameRejected() {
	ctx := context.Background()
	req := dto.CreateMoneyBoxRequest{Name: domain.MainCashBoxSentinel}

	_, err := suite.service.CreateMoneyBox(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMoneyBox", mock.Anything, mock.Anything)
}

func (suite *MoneyBoxServiceTestSuite) TestCreateMoneyBox_NegativeOpeningRejected() {
	ctx := context.Background()
	opening := decimal.NewFromInt(-1)
	req := dto.CreateMoneyBoxRequest{Name: "safe", Amount: &opening}

	_, err := suite.service.CreateMoneyBox(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MoneyBoxServiceTestSuite) TestCreateMoneyBox_DuplicateNamePropagates() {
	ctx := context.Background()
	req := dto.CreateMoneyBoxRequest{Name: "safe"}

	suite.mockRepo.On("SaveMoneyBox", ctx, mock.AnythingOfType("domain.MoneyBox")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateMoneyBox(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *MoneyBoxServiceTestSuite) TestUpdateMoneyBox_ReservedNameRejected() {
	ctx := context.Background()
	boxID := uuid.NewString()
	reserved := domain.MainCashBoxSentinel
	req := dto.UpdateMoneyBoxRequest{Name: &reserved}

	suite.mockRepo.On("FindMoneyBoxByID", ctx, boxID).Return(&domain.MoneyBox{MoneyBoxID: boxID, Name: "safe"}, nil).Once()

	_, err := suite.service.UpdateMoneyBox(ctx, boxID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateMoneyBox", mock.Anything, mock.Anything)
}

func (suite *MoneyBoxServiceTestSuite) TestTransfer_SameBoxRejected() {
	ctx := context.Background()
	boxID := uuid.NewString()

	_, _, err := suite.service.TransferBetweenBoxes(ctx, boxID, boxID, decimal.NewFromInt(10), "", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "TransferBetweenBoxes", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MoneyBoxServiceTestSuite) TestTransfer_NonPositiveAmountRejected() {
	ctx := context.Background()

	_, _, err := suite.service.TransferBetweenBoxes(ctx, uuid.NewString(), uuid.NewString(), decimal.Zero, "", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MoneyBoxServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	amount := decimal.NewFromInt(75)
	transferID := uuid.NewString()

	outTxn := &domain.MoneyBoxTransaction{
		TransactionID: uuid.NewString(),
		MoneyBoxID:    fromID,
		Type:          domain.TxnTransferOut,
		Direction:     domain.Debit,
		Amount:        amount,
		ReferenceType: domain.RefTransfer,
		ReferenceID:   transferID,
		RelatedBoxID:  toID,
	}
	inTxn := &domain.MoneyBoxTransaction{
		TransactionID: uuid.NewString(),
		MoneyBoxID:    toID,
		Type:          domain.TxnTransferIn,
		Direction:     domain.Credit,
		Amount:        amount,
		ReferenceType: domain.RefTransfer,
		ReferenceID:   transferID,
		RelatedBoxID:  fromID,
	}
	suite.mockRepo.On("TransferBetweenBoxes", ctx, fromID, toID, amount, "restock float", suite.userID).Return(outTxn, inTxn, nil).Once()

	out, in, err := suite.service.TransferBetweenBoxes(ctx, fromID, toID, amount, "restock float", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TxnTransferOut, out.Type)
	suite.Equal(domain.TxnTransferIn, in.Type)
	// The pair shares one reference and each side records its peer.
	suite.Equal(out.ReferenceID, in.ReferenceID)
	suite.Equal(toID, out.RelatedBoxID)
	suite.Equal(fromID, in.RelatedBoxID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MoneyBoxServiceTestSuite) TestTransfer_InsufficientBalancePropagates() {
	ctx := context.Background()
	balErr := apperrors.NewInsufficientBalanceError("safe", decimal.NewFromInt(5), decimal.NewFromInt(75))

	suite.mockRepo.On("TransferBetweenBoxes", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, balErr).Once()

	_, _, err := suite.service.TransferBetweenBoxes(ctx, uuid.NewString(), uuid.NewString(), decimal.NewFromInt(75), "", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func (suite *MoneyBoxServiceTestSuite) TestManualTransaction_DepositCredits() {
	ctx := context.Background()
	boxID := uuid.NewString()
	amount := decimal.NewFromInt(40)
	req := dto.BoxTransactionRequest{Type: "deposit", Amount: amount}

	suite.mockRepo.On("AppendMoneyBoxTransaction", ctx, mock.MatchedBy(func(txn domain.MoneyBoxTransaction) bool {
		return txn.MoneyBoxID == boxID &&
			txn.Type == domain.TxnDeposit &&
			txn.Direction == domain.Credit &&
			txn.Amount.Equal(amount) &&
			txn.ReferenceType == domain.RefManual
	})).Return(&domain.MoneyBoxTransaction{TransactionID: uuid.NewString(), MoneyBoxID: boxID, Amount: amount}, nil).Once()

	_, err := suite.service.ManualTransaction(ctx, boxID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MoneyBoxServiceTestSuite) TestManualTransaction_WithdrawDebits() {
	ctx := context.Background()
	boxID := uuid.NewString()
	amount := decimal.NewFromInt(15)
	req := dto.BoxTransactionRequest{Type: "withdraw", Amount: amount}

	suite.mockRepo.On("AppendMoneyBoxTransaction", ctx, mock.MatchedBy(func(txn domain.MoneyBoxTransaction) bool {
		return txn.Type == domain.TxnWithdrawal && txn.Direction == domain.Debit
	})).Return(&domain.MoneyBoxTransaction{TransactionID: uuid.NewString(), MoneyBoxID: boxID, Amount: amount}, nil).Once()

	_, err := suite.service.ManualTransaction(ctx, boxID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MoneyBoxServiceTestSuite) TestManualTransaction_UnknownTypeRejected() {
	ctx := context.Background()
	req := dto.BoxTransactionRequest{Type: "siphon", Amount: decimal.NewFromInt(15)}

	_, err := suite.service.ManualTransaction(ctx, uuid.NewString(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MoneyBoxServiceTestSuite) TestDeleteMoneyBox_HistoryConflictPropagates() {
	ctx := context.Background()
	boxID := uuid.NewString()

	suite.mockRepo.On("DeleteMoneyBox", ctx, boxID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteMoneyBox(ctx, boxID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestMoneyBoxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MoneyBoxServiceTestSuite))
}
