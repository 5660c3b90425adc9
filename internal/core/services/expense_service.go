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
)

// ExpenseService manages expense records. It is the one record service whose
// creation path rolls back: when the ledger refuses the debit (insufficient
// balance, no open cash box) the just-written expense row is deleted again
// and the failure surfaces to the caller.
type ExpenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	postingSvc  portssvc.PostingSvcFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, postingSvc portssvc.PostingSvcFacade) *ExpenseService {
	return &ExpenseService{expenseRepo: repo, postingSvc: postingSvc}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// CreateExpense persists the expense, then posts the debit. If the posting
// fails because the funds are not there, the expense row is deleted again so
// the books never show an expense the box could not cover.
func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		Category:      req.Category,
		Amount:        req.Amount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		MoneyBoxID:    req.MoneyBoxID,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventExpenseCreated,
		UserID:        userID,
		PaymentMethod: expense.PaymentMethod,
		Amount:        expense.Amount,
		MoneyBoxID:    expense.MoneyBoxID,
		ReferenceID:   expense.ExpenseID,
		Description:   expenseDescription(expense),
	}); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) || errors.Is(err, apperrors.ErrNoOpenCashBox) {
			if delErr := s.expenseRepo.DeleteExpense(ctx, expense.ExpenseID); delErr != nil {
				logger.Error("Failed to roll back expense after posting failure",
					slog.String("error", delErr.Error()),
					slog.String("expense_id", expense.ExpenseID),
				)
			}
			return nil, err
		}
		logger.Error("Ledger posting failed for expense",
			slog.String("error", err.Error()),
			slog.String("expense_id", expense.ExpenseID),
		)
	}

	return &expense, nil
}

// GetExpenseByID retrieves an expense by its ID.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// UpdateExpense applies the requested changes and hands the old and new
// financial facts to the posting orchestrator, which decides between a delta
// entry (same box) and a reversal plus reapply (box changed).
func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	previousAmount := existing.Amount
	previousBoxID := existing.MoneyBoxID

	updated := *existing
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		updated.Amount = *req.Amount
	}
	if req.MoneyBoxID != nil {
		updated.MoneyBoxID = *req.MoneyBoxID
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, updated); err != nil {
		logger.Error("Failed to update expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:               domain.EventExpenseUpdated,
		UserID:             userID,
		PaymentMethod:      updated.PaymentMethod,
		Amount:             updated.Amount,
		MoneyBoxID:         updated.MoneyBoxID,
		ReferenceID:        updated.ExpenseID,
		Description:        expenseDescription(updated),
		PreviousAmount:     previousAmount,
		PreviousMoneyBoxID: previousBoxID,
	}); err != nil {
		// The record update stands; rebalancing failures are logged only.
		logger.Error("Ledger rebalancing failed for expense update",
			slog.String("error", err.Error()),
			slog.String("expense_id", expenseID),
		)
	}

	return &updated, nil
}

// DeleteExpense removes the expense record and posts a reversal crediting the
// full amount back to the box that paid it.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventExpenseDeleted,
		UserID:        userID,
		PaymentMethod: existing.PaymentMethod,
		Amount:        existing.Amount,
		MoneyBoxID:    existing.MoneyBoxID,
		ReferenceID:   existing.ExpenseID,
		Description:   fmt.Sprintf("reversal of deleted expense %s", existing.ExpenseID),
	}); err != nil {
		logger.Error("Ledger reversal failed for deleted expense",
			slog.String("error", err.Error()),
			slog.String("expense_id", expenseID),
		)
	}

	return nil
}

func expenseDescription(e domain.Expense) string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("expense: %s", e.Category)
}
