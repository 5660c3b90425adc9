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

// InstallmentService tracks scheduled installment payments for sales sold on
// credit and posts the cash collected against them.
type InstallmentService struct {
	installmentRepo portsrepo.InstallmentRepositoryFacade
	saleRepo        portsrepo.SaleRepositoryFacade
	postingSvc      portssvc.PostingSvcFacade
}

// NewInstallmentService creates a new installment service.
func NewInstallmentService(repo portsrepo.InstallmentRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade, postingSvc portssvc.PostingSvcFacade) *InstallmentService {
	return &InstallmentService{installmentRepo: repo, saleRepo: saleRepo, postingSvc: postingSvc}
}

var _ portssvc.InstallmentSvcFacade = (*InstallmentService)(nil)

// CreateInstallment schedules one installment against an existing sale. No
// ledger entry is posted until the installment is paid.
func (s *InstallmentService) CreateInstallment(ctx context.Context, req dto.CreateInstallmentRequest, userID string) (*domain.Installment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	sale, err := s.saleRepo.FindSaleByID(ctx, req.SaleID)
	if err != nil {
		return nil, err
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = sale.CustomerName
	}

	now := time.Now().UTC()
	inst := domain.Installment{
		InstallmentID: uuid.NewString(),
		SaleID:        sale.SaleID,
		CustomerName:  customerName,
		DueDate:       req.DueDate,
		Amount:        req.Amount,
		Status:        domain.InstallmentDue,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.installmentRepo.SaveInstallment(ctx, inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// GetInstallmentByID retrieves an installment by its ID.
func (s *InstallmentService) GetInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	return s.installmentRepo.FindInstallmentByID(ctx, installmentID)
}

// ListInstallments lists all installments ordered by due date.
func (s *InstallmentService) ListInstallments(ctx context.Context) ([]domain.Installment, error) {
	insts, err := s.installmentRepo.ListInstallments(ctx)
	if err != nil {
		return nil, err
	}
	if insts == nil {
		insts = []domain.Installment{}
	}
	return insts, nil
}

// PayInstallment records a payment, advances the installment status and
// posts the cash received as a customer receipt referencing the installment.
func (s *InstallmentService) PayInstallment(ctx context.Context, installmentID string, req dto.PayInstallmentRequest, userID string) (*domain.Installment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	inst, err := s.installmentRepo.FindInstallmentByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}
	if inst.Status == domain.InstallmentPaid {
		return nil, fmt.Errorf("%w: installment is already fully paid", apperrors.ErrConflict)
	}
	if req.Amount.GreaterThan(inst.Remaining()) {
		return nil, fmt.Errorf("%w: payment exceeds remaining amount of %s", apperrors.ErrValidation, inst.Remaining())
	}

	now := time.Now().UTC()
	newPaid := inst.PaidAmount.Add(req.Amount)
	status := domain.InstallmentPartial
	if newPaid.Equal(inst.Amount) {
		status = domain.InstallmentPaid
	}

	if err := s.installmentRepo.UpdateInstallmentPayment(ctx, installmentID, newPaid, status, userID, now); err != nil {
		logger.Error("Failed to update installment payment", slog.String("error", err.Error()), slog.String("installment_id", installmentID))
		return nil, err
	}

	inst.PaidAmount = newPaid
	inst.Status = status
	inst.LastUpdatedAt = now
	inst.LastUpdatedBy = userID

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventInstallmentPaid,
		UserID:        userID,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Amount:        req.Amount,
		MoneyBoxID:    req.MoneyBoxID,
		ReferenceID:   inst.InstallmentID,
		Description:   fmt.Sprintf("installment payment from %s", inst.CustomerName),
	}); err != nil {
		logger.Error("Ledger posting failed for installment payment",
			slog.String("error", err.Error()),
			slog.String("installment_id", installmentID),
		)
	}

	return inst, nil
}
