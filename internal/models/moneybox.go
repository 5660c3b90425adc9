package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyBox represents a named persistent cash drawer or account.
type MoneyBox struct {
	MoneyBoxID string          `db:"money_box_id"`
	Name       string          `db:"name"` // Unique
	Amount     decimal.Decimal `db:"amount"`
	Notes      string          `db:"notes"`
	AuditFields
}

// MoneyBoxTransaction is one append-only money box ledger row.
type MoneyBoxTransaction struct {
	TransactionID string          `db:"transaction_id"`
	MoneyBoxID    string          `db:"money_box_id"`
	Type          string          `db:"type"`
	Direction     string          `db:"direction"`
	Amount        decimal.Decimal `db:"amount"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   string          `db:"reference_id"`
	RelatedBoxID  string          `db:"related_box_id"` // Peer box on transfers, else empty
	Description   string          `db:"description"`
	Notes         string          `db:"notes"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
