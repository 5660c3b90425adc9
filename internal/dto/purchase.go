package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest is the payload for recording a supplier purchase.
type CreatePurchaseRequest struct {
	InvoiceNo     string          `json:"invoiceNo,omitempty"`
	SupplierName  string          `json:"supplierName" binding:"required"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash card credit"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// CreatePurchaseReturnRequest records goods returned to a supplier.
type CreatePurchaseReturnRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	RefundMethod string          `json:"refundMethod" binding:"required,oneof=cash card credit"`
	Reason       string          `json:"reason,omitempty"`
}

// PurchaseResponse is the API representation of a purchase.
type PurchaseResponse struct {
	PurchaseID    string          `json:"purchaseID"`
	InvoiceNo     string          `json:"invoiceNo,omitempty"`
	SupplierName  string          `json:"supplierName"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// PurchaseReturnResponse is the API representation of a purchase return.
type PurchaseReturnResponse struct {
	ReturnID     string          `json:"returnID"`
	PurchaseID   string          `json:"purchaseID"`
	Amount       decimal.Decimal `json:"amount"`
	RefundMethod string          `json:"refundMethod"`
	Reason       string          `json:"reason,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToPurchaseResponse converts a domain.Purchase to its API representation.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:    p.PurchaseID,
		InvoiceNo:     p.InvoiceNo,
		SupplierName:  p.SupplierName,
		TotalAmount:   p.TotalAmount,
		PaidAmount:    p.PaidAmount,
		PaymentMethod: string(p.PaymentMethod),
		MoneyBoxID:    p.MoneyBoxID,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToPurchaseReturnResponse converts a domain.PurchaseReturn to its API representation.
func ToPurchaseReturnResponse(r *domain.PurchaseReturn) PurchaseReturnResponse {
	return PurchaseReturnResponse{
		ReturnID:     r.ReturnID,
		PurchaseID:   r.PurchaseID,
		Amount:       r.Amount,
		RefundMethod: string(r.RefundMethod),
		Reason:       r.Reason,
		CreatedAt:    r.CreatedAt,
	}
}
