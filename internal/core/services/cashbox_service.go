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
	"github.com/retailware/cashbox_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// CashBoxService manages per-user shift tills and their ledgers.
type CashBoxService struct {
	cashBoxRepo portsrepo.CashBoxRepositoryFacade
}

// NewCashBoxService creates a new cash box service.
func NewCashBoxService(repo portsrepo.CashBoxRepositoryFacade) *CashBoxService {
	return &CashBoxService{cashBoxRepo: repo}
}

var _ portssvc.CashBoxSvcFacade = (*CashBoxService)(nil)

// OpenCashBox opens a new shift till for the user. A user can only have one
// open box at a time. The opening balance seeds the running balance; every
// entry's balance_after is opening balance plus the signed sum so far.
func (s *CashBoxService) OpenCashBox(ctx context.Context, userID string, openingBalance decimal.Decimal) (*domain.CashBox, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if openingBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}

	if _, err := s.cashBoxRepo.FindOpenCashBoxByUser(ctx, userID); err == nil {
		return nil, fmt.Errorf("%w: user already has an open cash box", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	box := domain.CashBox{
		CashBoxID:      uuid.NewString(),
		UserID:         userID,
		Status:         domain.CashBoxOpen,
		OpeningBalance: openingBalance,
		Balance:        openingBalance,
		OpenedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cashBoxRepo.SaveCashBox(ctx, box); err != nil {
		logger.Error("Failed to save cash box", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, err
	}

	logger.Info("Cash box opened", slog.String("cash_box_id", box.CashBoxID), slog.String("user_id", userID))
	return &box, nil
}

// CloseCashBox closes the user's open box and returns it.
func (s *CashBoxService) CloseCashBox(ctx context.Context, userID string) (*domain.CashBox, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	box, err := s.cashBoxRepo.FindOpenCashBoxByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoOpenCashBox
		}
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.cashBoxRepo.CloseCashBox(ctx, box.CashBoxID, userID, now); err != nil {
		logger.Error("Failed to close cash box", slog.String("error", err.Error()), slog.String("cash_box_id", box.CashBoxID))
		return nil, err
	}

	box.Status = domain.CashBoxClosed
	box.ClosedAt = &now
	box.LastUpdatedAt = now
	box.LastUpdatedBy = userID

	logger.Info("Cash box closed", slog.String("cash_box_id", box.CashBoxID), slog.String("balance", box.Balance.String()))
	return box, nil
}

// GetUserCashBox returns the user's open cash box, or apperrors.ErrNotFound
// when the user has no open box.
func (s *CashBoxService) GetUserCashBox(ctx context.Context, userID string) (*domain.CashBox, error) {
	return s.cashBoxRepo.FindOpenCashBoxByUser(ctx, userID)
}

// AddTransaction appends a ledger entry to the user's open cash box. Callers
// without an open box get apperrors.ErrNoOpenCashBox and must refuse the
// financial operation.
func (s *CashBoxService) AddTransaction(ctx context.Context, p portssvc.CashTransactionParams) (*domain.CashBoxTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	box, err := s.cashBoxRepo.FindOpenCashBoxByUser(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoOpenCashBox
		}
		return nil, err
	}

	now := time.Now().UTC()
	txn, err := s.cashBoxRepo.AppendCashBoxTransaction(ctx, domain.CashBoxTransaction{
		TransactionID: uuid.NewString(),
		CashBoxID:     box.CashBoxID,
		UserID:        p.UserID,
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
		if !errors.Is(err, apperrors.ErrInsufficientBalance) {
			logger.Error("Failed to append cash box transaction", slog.String("error", err.Error()), slog.String("cash_box_id", box.CashBoxID))
		}
		return nil, err
	}

	logger.Debug("Cash box transaction appended",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("balance_after", txn.BalanceAfter.String()),
	)
	return txn, nil
}

// ListTransactions pages through the ledger of the user's open cash box.
func (s *CashBoxService) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CashBoxTransaction, *string, error) {
	box, err := s.cashBoxRepo.FindOpenCashBoxByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrNoOpenCashBox
		}
		return nil, nil, err
	}
	return s.cashBoxRepo.ListCashBoxTransactions(ctx, box.CashBoxID, limit, nextToken)
}

// GetTransactionsByDateRange returns entries of the user's open box in [from, to].
func (s *CashBoxService) GetTransactionsByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.CashBoxTransaction, error) {
	box, err := s.cashBoxRepo.FindOpenCashBoxByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoOpenCashBox
		}
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}
	return s.cashBoxRepo.FindCashBoxTransactionsByDateRange(ctx, box.CashBoxID, from, to)
}
