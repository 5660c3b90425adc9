package domain

import "github.com/shopspring/decimal"

// CustomerReceipt records money collected from a customer outside a sale
// (settling an outstanding invoice, a deposit, ...).
type CustomerReceipt struct {
	ReceiptID     string          `json:"receiptID"`
	ReceiptNo     string          `json:"receiptNo"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxID,omitempty"`
	Notes         string          `json:"notes"`
	AuditFields
}

// SupplierPaymentReceipt records money paid out to a supplier outside a
// purchase (settling supplier credit).
type SupplierPaymentReceipt struct {
	ReceiptID     string          `json:"receiptID"`
	ReceiptNo     string          `json:"receiptNo"`
	SupplierName  string          `json:"supplierName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxID,omitempty"`
	Notes         string          `json:"notes"`
	AuditFields
}
