package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// MoneyBoxService manages named money boxes and their ledgers.
type MoneyBoxService struct {
	moneyBoxRepo portsrepo.MoneyBoxRepositoryFacade
}

// NewMoneyBoxService creates a new money box service.
func NewMoneyBoxService(repo portsrepo.MoneyBoxRepositoryFacade) *MoneyBoxService {
	return &MoneyBoxService{moneyBoxRepo: repo}
}

var _ portssvc.MoneyBoxSvcFacade = (*MoneyBoxService)(nil)

// CreateMoneyBox creates a named box. The name "main" is reserved as the cash
// box routing sentinel. The opening amount seeds the balance; subsequent
// movement happens only through ledger entries.
func (s *MoneyBoxService) CreateMoneyBox(ctx context.Context, req dto.CreateMoneyBoxRequest, creatorUserID string) (*domain.MoneyBox, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == domain.MainCashBoxSentinel {
		return nil, fmt.Errorf("%w: box name %q is reserved", apperrors.ErrValidation, domain.MainCashBoxSentinel)
	}

	opening := decimal.Zero
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: opening amount cannot be negative", apperrors.ErrValidation)
		}
		opening = *req.Amount
	}

	now := time.Now().UTC()
	box := domain.MoneyBox{
		MoneyBoxID: uuid.NewString(),
		Name:       req.Name,
		Amount:     opening,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.moneyBoxRepo.SaveMoneyBox(ctx, box); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save money box", slog.String("error", err.Error()), slog.String("name", req.Name))
		}
		return nil, err
	}

	logger.Info("Money box created", slog.String("money_box_id", box.MoneyBoxID), slog.String("name", box.Name))
	return &box, nil
}

// GetMoneyBoxByID retrieves a money box by ID.
func (s *MoneyBoxService) GetMoneyBoxByID(ctx context.Context, moneyBoxID string) (*domain.MoneyBox, error) {
	return s.moneyBoxRepo.FindMoneyBoxByID(ctx, moneyBoxID)
}

// ListMoneyBoxes retrieves all money boxes.
func (s *MoneyBoxService) ListMoneyBoxes(ctx context.Context) ([]domain.MoneyBox, error) {
	boxes, err := s.moneyBoxRepo.ListMoneyBoxes(ctx)
	if err != nil {
		return nil, err
	}
	if boxes == nil {
		return []domain.MoneyBox{}, nil
	}
	return boxes, nil
}

// UpdateMoneyBox updates name and notes. Balances only ever move via ledger entries.
func (s *MoneyBoxService) UpdateMoneyBox(ctx context.Context, moneyBoxID string, req dto.UpdateMoneyBoxRequest, updaterUserID string) (*domain.MoneyBox, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	box, err := s.moneyBoxRepo.FindMoneyBoxByID(ctx, moneyBoxID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == domain.MainCashBoxSentinel {
			return nil, fmt.Errorf("%w: box name %q is reserved", apperrors.ErrValidation, domain.MainCashBoxSentinel)
		}
		box.Name = *req.Name
	}
	if req.Notes != nil {
		box.Notes = *req.Notes
	}
	box.LastUpdatedAt = time.Now().UTC()
	box.LastUpdatedBy = updaterUserID

	if err := s.moneyBoxRepo.UpdateMoneyBox(ctx, *box); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update money box", slog.String("error", err.Error()), slog.String("money_box_id", moneyBoxID))
		}
		return nil, err
	}

	logger.Info("Money box updated", slog.String("money_box_id", moneyBoxID))
	return box, nil
}

// DeleteMoneyBox removes a box with no ledger history.
func (s *MoneyBoxService) DeleteMoneyBox(ctx context.Context, moneyBoxID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.moneyBoxRepo.DeleteMoneyBox(ctx, moneyBoxID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete money box", slog.String("error", err.Error()), slog.String("money_box_id", moneyBoxID))
		}
		return err
	}

	logger.Info("Money box deleted", slog.String("money_box_id", moneyBoxID))
	return nil
}

// AddTransaction appends a ledger entry to the given money box.
func (s *MoneyBoxService) AddTransaction(ctx context.Context, p portssvc.MoneyTransactionParams) (*domain.MoneyBoxTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn, err := s.moneyBoxRepo.AppendMoneyBoxTransaction(ctx, domain.MoneyBoxTransaction{
		TransactionID: uuid.NewString(),
		MoneyBoxID:    p.MoneyBoxID,
		Type:          p.Type,
		Direction:     p.Direction,
		Amount:        p.Amount,
		ReferenceType: p.ReferenceType,
		ReferenceID:   p.ReferenceID,
		Description:   p.Description,
		Notes:         p.Notes,
		CreatedAt:     now,
		CreatedBy:     p.UserID,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientBalance) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to append money box transaction", slog.String("error", err.Error()), slog.String("money_box_id", p.MoneyBoxID))
		}
		return nil, err
	}

	logger.Debug("Money box transaction appended",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("balance_after", txn.BalanceAfter.String()),
	)
	return txn, nil
}

// ManualTransaction posts a user-initiated deposit or withdrawal.
func (s *MoneyBoxService) ManualTransaction(ctx context.Context, moneyBoxID string, req dto.BoxTransactionRequest, userID string) (*domain.MoneyBoxTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	var txnType domain.TransactionType
	var direction domain.EntryDirection
	switch req.Type {
	case "deposit":
		txnType, direction = domain.TxnDeposit, domain.Credit
	case "withdraw":
		txnType, direction = domain.TxnWithdrawal, domain.Debit
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	return s.AddTransaction(ctx, portssvc.MoneyTransactionParams{
		MoneyBoxID:    moneyBoxID,
		UserID:        userID,
		Type:          txnType,
		Direction:     direction,
		Amount:        req.Amount,
		ReferenceType: domain.RefManual,
		Notes:         req.Notes,
	})
}

// TransferBetweenBoxes atomically moves amount between two boxes.
func (s *MoneyBoxService) TransferBetweenBoxes(ctx context.Context, fromBoxID, toBoxID string, amount decimal.Decimal, notes, userID string) (*domain.MoneyBoxTransaction, *domain.MoneyBoxTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if fromBoxID == toBoxID {
		return nil, nil, fmt.Errorf("%w: source and destination box must differ", apperrors.ErrValidation)
	}

	out, in, err := s.moneyBoxRepo.TransferBetweenBoxes(ctx, fromBoxID, toBoxID, amount, notes, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientBalance) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to transfer between boxes",
				slog.String("error", err.Error()),
				slog.String("from_box_id", fromBoxID),
				slog.String("to_box_id", toBoxID),
			)
		}
		return nil, nil, err
	}

	logger.Info("Transfer completed",
		slog.String("from_box_id", fromBoxID),
		slog.String("to_box_id", toBoxID),
		slog.String("amount", amount.String()),
		slog.String("reference_id", out.ReferenceID),
	)
	return out, in, nil
}

// ListTransactions pages through the box's ledger.
func (s *MoneyBoxService) ListTransactions(ctx context.Context, moneyBoxID string, limit int, nextToken *string) ([]domain.MoneyBoxTransaction, *string, error) {
	if _, err := s.moneyBoxRepo.FindMoneyBoxByID(ctx, moneyBoxID); err != nil {
		return nil, nil, err
	}
	return s.moneyBoxRepo.ListMoneyBoxTransactions(ctx, moneyBoxID, limit, nextToken)
}

// GetTransactionsByDateRange returns the box's ledger entries in [from, to].
func (s *MoneyBoxService) GetTransactionsByDateRange(ctx context.Context, moneyBoxID string, from, to time.Time) ([]domain.MoneyBoxTransaction, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}
	if _, err := s.moneyBoxRepo.FindMoneyBoxByID(ctx, moneyBoxID); err != nil {
		return nil, err
	}
	return s.moneyBoxRepo.FindMoneyBoxTransactionsByDateRange(ctx, moneyBoxID, from, to)
}
