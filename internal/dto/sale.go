package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest is the payload for recording a sale.
type CreateSaleRequest struct {
	InvoiceNo     string          `json:"invoiceNo,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash card credit"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// CreateSaleReturnRequest records a refund against a sale.
type CreateSaleReturnRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	RefundMethod string          `json:"refundMethod" binding:"required,oneof=cash card credit"`
	Reason       string          `json:"reason,omitempty"`
}

// SaleResponse is the API representation of a sale.
type SaleResponse struct {
	SaleID        string          `json:"saleID"`
	InvoiceNo     string          `json:"invoiceNo,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// SaleReturnResponse is the API representation of a sale return.
type SaleReturnResponse struct {
	ReturnID     string          `json:"returnID"`
	SaleID       string          `json:"saleID"`
	Amount       decimal.Decimal `json:"amount"`
	RefundMethod string          `json:"refundMethod"`
	Reason       string          `json:"reason,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to its API representation.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		InvoiceNo:     s.InvoiceNo,
		CustomerName:  s.CustomerName,
		TotalAmount:   s.TotalAmount,
		PaidAmount:    s.PaidAmount,
		PaymentMethod: string(s.PaymentMethod),
		MoneyBoxID:    s.MoneyBoxID,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
	}
}

// ToSaleReturnResponse converts a domain.SaleReturn to its API representation.
func ToSaleReturnResponse(r *domain.SaleReturn) SaleReturnResponse {
	return SaleReturnResponse{
		ReturnID:     r.ReturnID,
		SaleID:       r.SaleID,
		Amount:       r.Amount,
		RefundMethod: string(r.RefundMethod),
		Reason:       r.Reason,
		CreatedAt:    r.CreatedAt,
	}
}
