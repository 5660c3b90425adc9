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

// PurchaseService records supplier purchases and returns. Like expenses,
// purchase creation rolls back when the ledger cannot cover the payment.
type PurchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	postingSvc   portssvc.PostingSvcFacade
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade, postingSvc portssvc.PostingSvcFacade) *PurchaseService {
	return &PurchaseService{purchaseRepo: repo, postingSvc: postingSvc}
}

var _ portssvc.PurchaseSvcFacade = (*PurchaseService)(nil)

// CreatePurchase persists the purchase and posts a debit for the cash paid.
// If the box cannot cover the payment the purchase row is deleted again and
// the shortfall error surfaces to the caller.
func (s *PurchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	}
	if req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount cannot be negative", apperrors.ErrValidation)
	}
	if req.PaidAmount.GreaterThan(req.TotalAmount) {
		return nil, fmt.Errorf("%w: paid amount exceeds total", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	purchase := domain.Purchase{
		PurchaseID:    uuid.NewString(),
		InvoiceNo:     req.InvoiceNo,
		SupplierName:  req.SupplierName,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    req.PaidAmount,
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

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		logger.Error("Failed to save purchase", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventPurchaseCreated,
		UserID:        userID,
		PaymentMethod: purchase.PaymentMethod,
		Amount:        purchase.PaidAmount,
		MoneyBoxID:    purchase.MoneyBoxID,
		ReferenceID:   purchase.PurchaseID,
		Description:   fmt.Sprintf("purchase from %s", purchase.SupplierName),
	}); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) || errors.Is(err, apperrors.ErrNoOpenCashBox) {
			if delErr := s.purchaseRepo.DeletePurchase(ctx, purchase.PurchaseID); delErr != nil {
				logger.Error("Failed to roll back purchase after posting failure",
					slog.String("error", delErr.Error()),
					slog.String("purchase_id", purchase.PurchaseID),
				)
			}
			return nil, err
		}
		logger.Error("Ledger posting failed for purchase",
			slog.String("error", err.Error()),
			slog.String("purchase_id", purchase.PurchaseID),
		)
	}

	return &purchase, nil
}

// GetPurchaseByID retrieves a purchase by its ID.
func (s *PurchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

// ProcessPurchaseReturn records goods sent back to the supplier and posts the
// refund as a deposit, routed back to the box the purchase was paid from.
func (s *PurchaseService) ProcessPurchaseReturn(ctx context.Context, purchaseID string, req dto.CreatePurchaseReturnRequest, userID string) (*domain.PurchaseReturn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: return amount must be positive", apperrors.ErrValidation)
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(purchase.PaidAmount) {
		return nil, fmt.Errorf("%w: return amount exceeds paid amount", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	ret := domain.PurchaseReturn{
		ReturnID:     uuid.NewString(),
		PurchaseID:   purchase.PurchaseID,
		Amount:       req.Amount,
		RefundMethod: domain.PaymentMethod(req.RefundMethod),
		Reason:       req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.purchaseRepo.SavePurchaseReturn(ctx, ret); err != nil {
		logger.Error("Failed to save purchase return", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		return nil, err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventPurchaseReturn,
		UserID:        userID,
		PaymentMethod: ret.RefundMethod,
		Amount:        ret.Amount,
		MoneyBoxID:    purchase.MoneyBoxID,
		ReferenceID:   ret.ReturnID,
		Description:   fmt.Sprintf("refund for purchase %s", purchase.PurchaseID),
	}); err != nil {
		logger.Error("Ledger posting failed for purchase return",
			slog.String("error", err.Error()),
			slog.String("return_id", ret.ReturnID),
		)
	}

	return &ret, nil
}
