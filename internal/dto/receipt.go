package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerReceiptRequest records money collected from a customer.
type CreateCustomerReceiptRequest struct {
	ReceiptNo     string          `json:"receiptNo,omitempty"`
	CustomerName  string          `json:"customerName" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash card credit"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// CreateSupplierPaymentRequest records money paid out to a supplier.
type CreateSupplierPaymentRequest struct {
	ReceiptNo     string          `json:"receiptNo,omitempty"`
	SupplierName  string          `json:"supplierName" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash card credit"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// CustomerReceiptResponse is the API representation of a customer receipt.
type CustomerReceiptResponse struct {
	ReceiptID     string          `json:"receiptID"`
	ReceiptNo     string          `json:"receiptNo,omitempty"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// SupplierPaymentResponse is the API representation of a supplier payment receipt.
type SupplierPaymentResponse struct {
	ReceiptID     string          `json:"receiptID"`
	ReceiptNo     string          `json:"receiptNo,omitempty"`
	SupplierName  string          `json:"supplierName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToCustomerReceiptResponse converts a domain.CustomerReceipt to its API representation.
func ToCustomerReceiptResponse(r *domain.CustomerReceipt) CustomerReceiptResponse {
	return CustomerReceiptResponse{
		ReceiptID:     r.ReceiptID,
		ReceiptNo:     r.ReceiptNo,
		CustomerName:  r.CustomerName,
		Amount:        r.Amount,
		PaymentMethod: string(r.PaymentMethod),
		MoneyBoxID:    r.MoneyBoxID,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
	}
}

// ToSupplierPaymentResponse converts a domain.SupplierPaymentReceipt to its API representation.
func ToSupplierPaymentResponse(r *domain.SupplierPaymentReceipt) SupplierPaymentResponse {
	return SupplierPaymentResponse{
		ReceiptID:     r.ReceiptID,
		ReceiptNo:     r.ReceiptNo,
		SupplierName:  r.SupplierName,
		Amount:        r.Amount,
		PaymentMethod: string(r.PaymentMethod),
		MoneyBoxID:    r.MoneyBoxID,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
	}
}
