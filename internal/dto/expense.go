package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for recording an expense.
type CreateExpenseRequest struct {
	Category      string          `json:"category" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash card credit"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// UpdateExpenseRequest updates an expense. Nil fields are left unchanged.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	MoneyBoxID  *string          `json:"moneyBoxId,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// ExpenseResponse is the API representation of an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxId,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToExpenseResponse converts a domain.Expense to its API representation.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Category:      e.Category,
		Amount:        e.Amount,
		PaymentMethod: string(e.PaymentMethod),
		MoneyBoxID:    e.MoneyBoxID,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}
