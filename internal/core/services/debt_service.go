package services

import (
	"context"
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

// DebtService tracks customer debts and posts their cash repayments.
type DebtService struct {
	debtRepo   portsrepo.DebtRepositoryFacade
	postingSvc portssvc.PostingSvcFacade
}

// NewDebtService creates a new debt service.
func NewDebtService(repo portsrepo.DebtRepositoryFacade, postingSvc portssvc.PostingSvcFacade) *DebtService {
	return &DebtService{debtRepo: repo, postingSvc: postingSvc}
}

var _ portssvc.DebtSvcFacade = (*DebtService)(nil)

// CreateDebt registers an amount a customer owes. No ledger entry is posted:
// money moves only when the debt is repaid.
func (s *DebtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest, userID string) (*domain.Debt, error) {
	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	debt := domain.Debt{
		DebtID:       uuid.NewString(),
		CustomerName: req.CustomerName,
		TotalAmount:  req.TotalAmount,
		Status:       domain.DebtPending,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		return nil, err
	}
	return &debt, nil
}

// GetDebtByID retrieves a debt by its ID.
func (s *DebtService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	return s.debtRepo.FindDebtByID(ctx, debtID)
}

// ListDebts lists all debts, unpaid first.
func (s *DebtService) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		return nil, err
	}
	if debts == nil {
		debts = []domain.Debt{}
	}
	return debts, nil
}

// RepayDebt records a repayment, advances the debt status and posts the cash
// received as a customer receipt referencing the debt.
func (s *DebtService) RepayDebt(ctx context.Context, debtID string, req dto.RepayDebtRequest, userID string) (*domain.Debt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: repayment amount must be positive", apperrors.ErrValidation)
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt.Status == domain.DebtPaid {
		return nil, fmt.Errorf("%w: debt is already fully repaid", apperrors.ErrConflict)
	}
	if req.Amount.GreaterThan(debt.Remaining()) {
		return nil, fmt.Errorf("%w: repayment exceeds remaining debt of %s", apperrors.ErrValidation, debt.Remaining())
	}

	now := time.Now().UTC()
	newPaid := debt.PaidAmount.Add(req.Amount)
	status := domain.DebtPartial
	if newPaid.Equal(debt.TotalAmount) {
		status = domain.DebtPaid
	}

	if err := s.debtRepo.UpdateDebtPayment(ctx, debtID, newPaid, status, userID, now); err != nil {
		logger.Error("Failed to update debt payment", slog.String("error", err.Error()), slog.String("debt_id", debtID))
		return nil, err
	}

	debt.PaidAmount = newPaid
	debt.Status = status
	debt.LastUpdatedAt = now
	debt.LastUpdatedBy = userID

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventDebtRepaid,
		UserID:        userID,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Amount:        req.Amount,
		MoneyBoxID:    req.MoneyBoxID,
		ReferenceID:   debt.DebtID,
		Description:   fmt.Sprintf("debt repayment from %s", debt.CustomerName),
	}); err != nil {
		logger.Error("Ledger posting failed for debt repayment",
			slog.String("error", err.Error()),
			slog.String("debt_id", debtID),
		)
	}

	return debt, nil
}
