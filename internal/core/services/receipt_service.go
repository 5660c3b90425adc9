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

// ReceiptService records standalone customer receipts and supplier payments.
type ReceiptService struct {
	receiptRepo portsrepo.ReceiptRepositoryFacade
	postingSvc  portssvc.PostingSvcFacade
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(repo portsrepo.ReceiptRepositoryFacade, postingSvc portssvc.PostingSvcFacade) *ReceiptService {
	return &ReceiptService{receiptRepo: repo, postingSvc: postingSvc}
}

var _ portssvc.ReceiptSvcFacade = (*ReceiptService)(nil)

// CreateCustomerReceipt records money collected from a customer and posts
// the credit. Posting failures are logged, not rolled back.
func (s *ReceiptService) CreateCustomerReceipt(ctx context.Context, req dto.CreateCustomerReceiptRequest, userID string) (*domain.CustomerReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	receipt := domain.CustomerReceipt{
		ReceiptID:     uuid.NewString(),
		ReceiptNo:     req.ReceiptNo,
		CustomerName:  req.CustomerName,
		Amount:        req.Amount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		MoneyBoxID:    req.MoneyBoxID,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.receiptRepo.SaveCustomerReceipt(ctx, receipt); err != nil {
		logger.Error("Failed to save customer receipt", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventCustomerReceipt,
		UserID:        userID,
		PaymentMethod: receipt.PaymentMethod,
		Amount:        receipt.Amount,
		MoneyBoxID:    receipt.MoneyBoxID,
		ReferenceID:   receipt.ReceiptID,
		Description:   fmt.Sprintf("receipt from %s", receipt.CustomerName),
	}); err != nil {
		logger.Error("Ledger posting failed for customer receipt",
			slog.String("error", err.Error()),
			slog.String("receipt_id", receipt.ReceiptID),
		)
	}

	return &receipt, nil
}

// GetCustomerReceiptByID retrieves a customer receipt by its ID.
func (s *ReceiptService) GetCustomerReceiptByID(ctx context.Context, receiptID string) (*domain.CustomerReceipt, error) {
	return s.receiptRepo.FindCustomerReceiptByID(ctx, receiptID)
}

// CreateSupplierPayment records money paid out to a supplier and posts the
// debit. Posting failures are logged, not rolled back.
func (s *ReceiptService) CreateSupplierPayment(ctx context.Context, req dto.CreateSupplierPaymentRequest, userID string) (*domain.SupplierPaymentReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	receipt := domain.SupplierPaymentReceipt{
		ReceiptID:     uuid.NewString(),
		ReceiptNo:     req.ReceiptNo,
		SupplierName:  req.SupplierName,
		Amount:        req.Amount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		MoneyBoxID:    req.MoneyBoxID,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.receiptRepo.SaveSupplierPayment(ctx, receipt); err != nil {
		logger.Error("Failed to save supplier payment", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventSupplierPayment,
		UserID:        userID,
		PaymentMethod: receipt.PaymentMethod,
		Amount:        receipt.Amount,
		MoneyBoxID:    receipt.MoneyBoxID,
		ReferenceID:   receipt.ReceiptID,
		Description:   fmt.Sprintf("payment to %s", receipt.SupplierName),
	}); err != nil {
		logger.Error("Ledger posting failed for supplier payment",
			slog.String("error", err.Error()),
			slog.String("receipt_id", receipt.ReceiptID),
		)
	}

	return &receipt, nil
}

// GetSupplierPaymentByID retrieves a supplier payment receipt by its ID.
func (s *ReceiptService) GetSupplierPaymentByID(ctx context.Context, receiptID string) (*domain.SupplierPaymentReceipt, error) {
	return s.receiptRepo.FindSupplierPaymentByID(ctx, receiptID)
}
