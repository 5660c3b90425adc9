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

// SaleService records sales and their refunds, posting the ledger effects
// through the posting orchestrator after each primary write.
type SaleService struct {
	saleRepo   portsrepo.SaleRepositoryFacade
	postingSvc portssvc.PostingSvcFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(repo portsrepo.SaleRepositoryFacade, postingSvc portssvc.PostingSvcFacade) *SaleService {
	return &SaleService{saleRepo: repo, postingSvc: postingSvc}
}

var _ portssvc.SaleSvcFacade = (*SaleService)(nil)

// CreateSale persists the sale and posts a credit for the cash paid. A
// posting failure after the sale row is committed is logged, not rolled
// back: the sale record stands and the ledger gap is an accepted
// inconsistency of this flow.
func (s *SaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
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
	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		InvoiceNo:     req.InvoiceNo,
		CustomerName:  req.CustomerName,
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

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		logger.Error("Failed to save sale", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventSaleCreated,
		UserID:        userID,
		PaymentMethod: sale.PaymentMethod,
		Amount:        sale.PaidAmount,
		MoneyBoxID:    sale.MoneyBoxID,
		ReferenceID:   sale.SaleID,
		Description:   saleDescription(sale),
	}); err != nil {
		// Sale stands; only the ledger entry is missing.
		logger.Error("Ledger posting failed for sale",
			slog.String("error", err.Error()),
			slog.String("sale_id", sale.SaleID),
		)
	}

	return &sale, nil
}

// GetSaleByID retrieves a sale by its ID.
func (s *SaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

// ProcessSaleReturn records a refund against a sale and posts a withdrawal
// for the cash handed back.
func (s *SaleService) ProcessSaleReturn(ctx context.Context, saleID string, req dto.CreateSaleReturnRequest, userID string) (*domain.SaleReturn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: return amount must be positive", apperrors.ErrValidation)
	}

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(sale.PaidAmount) {
		return nil, fmt.Errorf("%w: return amount exceeds paid amount", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	ret := domain.SaleReturn{
		ReturnID:     uuid.NewString(),
		SaleID:       sale.SaleID,
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

	if err := s.saleRepo.SaveSaleReturn(ctx, ret); err != nil {
		logger.Error("Failed to save sale return", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return nil, err
	}

	if err := s.postingSvc.PostEvent(ctx, domain.FinancialEvent{
		Type:          domain.EventSaleReturn,
		UserID:        userID,
		PaymentMethod: ret.RefundMethod,
		Amount:        ret.Amount,
		MoneyBoxID:    sale.MoneyBoxID,
		ReferenceID:   ret.ReturnID,
		Description:   fmt.Sprintf("refund for sale %s", sale.SaleID),
	}); err != nil {
		// Same policy as sale creation: the return record stands, the
		// posting failure is logged.
		logger.Error("Ledger posting failed for sale return",
			slog.String("error", err.Error()),
			slog.String("return_id", ret.ReturnID),
		)
	}

	return &ret, nil
}

func saleDescription(sale domain.Sale) string {
	if sale.InvoiceNo != "" {
		return fmt.Sprintf("sale %s", sale.InvoiceNo)
	}
	return fmt.Sprintf("sale %s", sale.SaleID)
}
