package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMoneyBoxRequest is the payload for creating a named money box.
// Amount is the opening balance the box starts with.
type CreateMoneyBoxRequest struct {
	Name   string           `json:"name" binding:"required,min=1,max=100"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Notes  string           `json:"notes,omitempty"`
}

// UpdateMoneyBoxRequest updates name/notes of a money box. Balance is only
// ever changed through ledger entries.
type UpdateMoneyBoxRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Notes *string `json:"notes,omitempty"`
}

// BoxTransactionRequest is a manual deposit/withdrawal against a money box.
type BoxTransactionRequest struct {
	Type   string          `json:"type" binding:"required,oneof=deposit withdraw"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes,omitempty"`
}

// TransferRequest moves funds between two money boxes.
type TransferRequest struct {
	FromBoxID string          `json:"fromBoxId" binding:"required"`
	ToBoxID   string          `json:"toBoxId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Notes     string          `json:"notes,omitempty"`
}

// MoneyBoxResponse is the API representation of a money box.
type MoneyBoxResponse struct {
	MoneyBoxID string          `json:"moneyBoxID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// MoneyBoxTransactionResponse is the API representation of a money box ledger entry.
type MoneyBoxTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	MoneyBoxID    string          `json:"moneyBoxID"`
	Type          string          `json:"type"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	ReferenceType string          `json:"referenceType"`
	ReferenceID   string          `json:"referenceID,omitempty"`
	RelatedBoxID  string          `json:"relatedBoxID,omitempty"`
	Description   string          `json:"description,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListMoneyBoxTransactionsResponse is a page of money box ledger entries.
type ListMoneyBoxTransactionsResponse struct {
	Transactions []MoneyBoxTransactionResponse `json:"transactions"`
	NextToken    *string                       `json:"nextToken,omitempty"`
}

// ListMoneyBoxesResponse wraps the money box collection.
type ListMoneyBoxesResponse struct {
	MoneyBoxes []MoneyBoxResponse `json:"moneyBoxes"`
}

// ToMoneyBoxResponse converts a domain.MoneyBox to its API representation.
func ToMoneyBoxResponse(b *domain.MoneyBox) MoneyBoxResponse {
	return MoneyBoxResponse{
		MoneyBoxID: b.MoneyBoxID,
		Name:       b.Name,
		Amount:     b.Amount,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		CreatedBy:  b.CreatedBy,
	}
}

// ToMoneyBoxTransactionResponse converts a domain ledger entry to its API representation.
func ToMoneyBoxTransactionResponse(t *domain.MoneyBoxTransaction) MoneyBoxTransactionResponse {
	return MoneyBoxTransactionResponse{
		TransactionID: t.TransactionID,
		MoneyBoxID:    t.MoneyBoxID,
		Type:          string(t.Type),
		Direction:     string(t.Direction),
		Amount:        t.Amount,
		ReferenceType: string(t.ReferenceType),
		ReferenceID:   t.ReferenceID,
		RelatedBoxID:  t.RelatedBoxID,
		Description:   t.Description,
		Notes:         t.Notes,
		BalanceAfter:  t.BalanceAfter,
		CreatedAt:     t.CreatedAt,
	}
}

// ToMoneyBoxTransactionResponses converts a slice of ledger entries.
func ToMoneyBoxTransactionResponses(txns []domain.MoneyBoxTransaction) []MoneyBoxTransactionResponse {
	responses := make([]MoneyBoxTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToMoneyBoxTransactionResponse(&txns[i])
	}
	return responses
}
