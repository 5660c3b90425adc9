package dto

import (
	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InsufficientBalanceResponse is the wire shape for a posting that failed on
// balance, kept stable because clients key on the Error field.
type InsufficientBalanceResponse struct {
	Success          bool            `json:"success"`
	Error            string          `json:"error"`
	Message          string          `json:"message"`
	RequiredAmount   decimal.Decimal `json:"requiredAmount"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	MoneyBoxName     string          `json:"moneyBoxName"`
}

// ToInsufficientBalanceResponse builds the wire shape from the structured error.
func ToInsufficientBalanceResponse(e *apperrors.InsufficientBalanceError) InsufficientBalanceResponse {
	return InsufficientBalanceResponse{
		Success:          false,
		Error:            "INSUFFICIENT_BALANCE",
		Message:          e.Error(),
		RequiredAmount:   e.Required,
		AvailableBalance: e.Available,
		MoneyBoxName:     e.BoxName,
	}
}
