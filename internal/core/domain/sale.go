package domain

import "github.com/shopspring/decimal"

// Sale is the business record for a point-of-sale transaction. The ledger
// subsystem only reads PaymentMethod, PaidAmount and MoneyBoxID from it.
type Sale struct {
	SaleID        string          `json:"saleID"`
	InvoiceNo     string          `json:"invoiceNo"`
	CustomerName  string          `json:"customerName"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxID,omitempty"`
	Notes         string          `json:"notes"`
	AuditFields
}

// SaleReturn records a refund against a sale.
type SaleReturn struct {
	ReturnID     string          `json:"returnID"`
	SaleID       string          `json:"saleID"`
	Amount       decimal.Decimal `json:"amount"`
	RefundMethod PaymentMethod   `json:"refundMethod"`
	Reason       string          `json:"reason"`
	AuditFields
}
