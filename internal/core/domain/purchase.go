package domain

import "github.com/shopspring/decimal"

// Purchase is the business record for a supplier purchase. MoneyBoxID is kept
// on the record so a later return can route its refund back to the box the
// purchase was paid from.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"`
	InvoiceNo     string          `json:"invoiceNo"`
	SupplierName  string          `json:"supplierName"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxID,omitempty"`
	Notes         string          `json:"notes"`
	AuditFields
}

// PurchaseReturn records goods returned to a supplier and the refund received.
type PurchaseReturn struct {
	ReturnID     string          `json:"returnID"`
	PurchaseID   string          `json:"purchaseID"`
	Amount       decimal.Decimal `json:"amount"`
	RefundMethod PaymentMethod   `json:"refundMethod"`
	Reason       string          `json:"reason"`
	AuditFields
}
