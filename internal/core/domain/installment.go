package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus tracks payment progress of a single installment.
type InstallmentStatus string

const (
	InstallmentDue     InstallmentStatus = "due"
	InstallmentPartial InstallmentStatus = "partial"
	InstallmentPaid    InstallmentStatus = "paid"
)

// Installment is one scheduled payment of a sale sold on installments.
type Installment struct {
	InstallmentID string            `json:"installmentID"`
	SaleID        string            `json:"saleID"`
	CustomerName  string            `json:"customerName"`
	DueDate       time.Time         `json:"dueDate"`
	Amount        decimal.Decimal   `json:"amount"`
	PaidAmount    decimal.Decimal   `json:"paidAmount"`
	Status        InstallmentStatus `json:"status"`
	AuditFields
}

// Remaining returns the unpaid portion of the installment.
func (i Installment) Remaining() decimal.Decimal {
	return i.Amount.Sub(i.PaidAmount)
}
