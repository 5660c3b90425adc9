package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a completed sale row.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	InvoiceNo     string          `db:"invoice_no"`
	CustomerName  string          `db:"customer_name"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	PaymentMethod string          `db:"payment_method"`
	MoneyBoxID    string          `db:"money_box_id"` // Empty means cash box
	Notes         string          `db:"notes"`
	AuditFields
}

// SaleReturn represents a refund against a sale.
type SaleReturn struct {
	ReturnID     string          `db:"return_id"`
	SaleID       string          `db:"sale_id"`
	Amount       decimal.Decimal `db:"amount"`
	RefundMethod string          `db:"refund_method"`
	Reason       string          `db:"reason"`
	AuditFields
}

// Purchase represents a supplier purchase row.
type Purchase struct {
	PurchaseID    string          `db:"purchase_id"`
	InvoiceNo     string          `db:"invoice_no"`
	SupplierName  string          `db:"supplier_name"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	PaymentMethod string          `db:"payment_method"`
	MoneyBoxID    string          `db:"money_box_id"`
	Notes         string          `db:"notes"`
	AuditFields
}

// PurchaseReturn represents goods sent back to a supplier.
type PurchaseReturn struct {
	ReturnID     string          `db:"return_id"`
	PurchaseID   string          `db:"purchase_id"`
	Amount       decimal.Decimal `db:"amount"`
	RefundMethod string          `db:"refund_method"`
	Reason       string          `db:"reason"`
	AuditFields
}

// Expense represents an operating expense row.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	MoneyBoxID    string          `db:"money_box_id"`
	Description   string          `db:"description"`
	AuditFields
}

// CustomerReceipt represents money received from a customer outside a sale.
type CustomerReceipt struct {
	ReceiptID     string          `db:"receipt_id"`
	ReceiptNo     string          `db:"receipt_no"`
	CustomerName  string          `db:"customer_name"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	MoneyBoxID    string          `db:"money_box_id"`
	Notes         string          `db:"notes"`
	AuditFields
}

// SupplierPaymentReceipt represents money paid out to a supplier.
type SupplierPaymentReceipt struct {
	ReceiptID     string          `db:"receipt_id"`
	ReceiptNo     string          `db:"receipt_no"`
	SupplierName  string          `db:"supplier_name"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	MoneyBoxID    string          `db:"money_box_id"`
	Notes         string          `db:"notes"`
	AuditFields
}

// Debt represents an outstanding customer debt.
type Debt struct {
	DebtID       string          `db:"debt_id"`
	CustomerName string          `db:"customer_name"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	PaidAmount   decimal.Decimal `db:"paid_amount"`
	Status       string          `db:"status"`
	Notes        string          `db:"notes"`
	AuditFields
}

// Installment represents one scheduled payment on a sale.
type Installment struct {
	InstallmentID string          `db:"installment_id"`
	SaleID        string          `db:"sale_id"`
	CustomerName  string          `db:"customer_name"`
	DueDate       time.Time       `db:"due_date"`
	Amount        decimal.Decimal `db:"amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	Status        string          `db:"status"`
	AuditFields
}
