package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBoxStatus indicates whether a shift till is open or closed.
type CashBoxStatus string

const (
	CashBoxOpen   CashBoxStatus = "open"
	CashBoxClosed CashBoxStatus = "closed"
)

// CashBox represents one operator shift till.
type CashBox struct {
	CashBoxID      string          `db:"cash_box_id"`
	UserID         string          `db:"user_id"`
	Status         CashBoxStatus   `db:"status"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Balance        decimal.Decimal `db:"balance"` // Cached running balance; the ledger is authoritative
	OpenedAt       time.Time       `db:"opened_at"`
	ClosedAt       *time.Time      `db:"closed_at"` // Nullable
	AuditFields
}

// CashBoxTransaction is one append-only cash box ledger row.
type CashBoxTransaction struct {
	TransactionID string          `db:"transaction_id"`
	CashBoxID     string          `db:"cash_box_id"`
	UserID        string          `db:"user_id"`
	Type          string          `db:"type"`
	Direction     string          `db:"direction"`
	Amount        decimal.Decimal `db:"amount"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   string          `db:"reference_id"`
	Description   string          `db:"description"`
	Notes         string          `db:"notes"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
