package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenCashBoxRequest opens a shift till for the authenticated user.
type OpenCashBoxRequest struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// CashBoxResponse is the API representation of a cash box.
type CashBoxResponse struct {
	CashBoxID      string          `json:"cashBoxID"`
	UserID         string          `json:"userID"`
	Status         string          `json:"status"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	OpenedAt       time.Time       `json:"openedAt"`
	ClosedAt       *time.Time      `json:"closedAt,omitempty"`
}

// CashBoxTransactionResponse is the API representation of a cash box ledger entry.
type CashBoxTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	CashBoxID     string          `json:"cashBoxID"`
	Type          string          `json:"type"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	ReferenceType string          `json:"referenceType"`
	ReferenceID   string          `json:"referenceID,omitempty"`
	Description   string          `json:"description,omitempty"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListCashBoxTransactionsResponse is a page of cash box ledger entries.
type ListCashBoxTransactionsResponse struct {
	Transactions []CashBoxTransactionResponse `json:"transactions"`
	NextToken    *string                      `json:"nextToken,omitempty"`
}

// ToCashBoxResponse converts a domain.CashBox to its API representation.
func ToCashBoxResponse(b *domain.CashBox) CashBoxResponse {
	return CashBoxResponse{
		CashBoxID:      b.CashBoxID,
		UserID:         b.UserID,
		Status:         string(b.Status),
		OpeningBalance: b.OpeningBalance,
		Balance:        b.Balance,
		OpenedAt:       b.OpenedAt,
		ClosedAt:       b.ClosedAt,
	}
}

// ToCashBoxTransactionResponse converts a domain ledger entry to its API representation.
func ToCashBoxTransactionResponse(t *domain.CashBoxTransaction) CashBoxTransactionResponse {
	return CashBoxTransactionResponse{
		TransactionID: t.TransactionID,
		CashBoxID:     t.CashBoxID,
		Type:          string(t.Type),
		Direction:     string(t.Direction),
		Amount:        t.Amount,
		ReferenceType: string(t.ReferenceType),
		ReferenceID:   t.ReferenceID,
		Description:   t.Description,
		BalanceAfter:  t.BalanceAfter,
		CreatedAt:     t.CreatedAt,
	}
}

// ToCashBoxTransactionResponses converts a slice of ledger entries.
func ToCashBoxTransactionResponses(txns []domain.CashBoxTransaction) []CashBoxTransactionResponse {
	responses := make([]CashBoxTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToCashBoxTransactionResponse(&txns[i])
	}
	return responses
}
