package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest registers an amount a customer owes.
type CreateDebtRequest struct {
	CustomerName string          `json:"customerName" binding:"required"`
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required"`
	Notes        string          `json:"notes,omitempty"`
}

// RepayDebtRequest records a (partial) cash repayment of a debt.
type RepayDebtRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash card credit"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// DebtResponse is the API representation of a debt.
type DebtResponse struct {
	DebtID          string          `json:"debtID"`
	CustomerName    string          `json:"customerName"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToDebtResponse converts a domain.Debt to its API representation.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:          d.DebtID,
		CustomerName:    d.CustomerName,
		TotalAmount:     d.TotalAmount,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.Remaining(),
		Status:          string(d.Status),
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
	}
}
