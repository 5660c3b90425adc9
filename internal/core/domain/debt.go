package domain

import "github.com/shopspring/decimal"

// DebtStatus tracks how much of a debt has been repaid.
type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPartial DebtStatus = "partial"
	DebtPaid    DebtStatus = "paid"
)

// Debt is an amount a customer owes, repaid in one or more cash repayments.
type Debt struct {
	DebtID       string          `json:"debtID"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	Status       DebtStatus      `json:"status"`
	Notes        string          `json:"notes"`
	AuditFields
}

// Remaining returns the unpaid portion of the debt.
func (d Debt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}
