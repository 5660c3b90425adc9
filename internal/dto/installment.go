package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInstallmentRequest schedules one installment payment for a sale.
type CreateInstallmentRequest struct {
	SaleID       string          `json:"saleId" binding:"required"`
	CustomerName string          `json:"customerName,omitempty"`
	DueDate      time.Time       `json:"dueDate" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// PayInstallmentRequest records a (partial) cash payment of an installment.
type PayInstallmentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash card credit"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// InstallmentResponse is the API representation of an installment.
type InstallmentResponse struct {
	InstallmentID   string          `json:"installmentID"`
	SaleID          string          `json:"saleID"`
	CustomerName    string          `json:"customerName,omitempty"`
	DueDate         time.Time       `json:"dueDate"`
	Amount          decimal.Decimal `json:"amount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToInstallmentResponse converts a domain.Installment to its API representation.
func ToInstallmentResponse(i *domain.Installment) InstallmentResponse {
	return InstallmentResponse{
		InstallmentID:   i.InstallmentID,
		SaleID:          i.SaleID,
		CustomerName:    i.CustomerName,
		DueDate:         i.DueDate,
		Amount:          i.Amount,
		PaidAmount:      i.PaidAmount,
		RemainingAmount: i.Remaining(),
		Status:          string(i.Status),
		CreatedAt:       i.CreatedAt,
	}
}
