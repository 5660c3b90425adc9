package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBoxStatus indicates whether a cash box (till) is currently open.
type CashBoxStatus string

const (
	CashBoxOpen   CashBoxStatus = "open"
	CashBoxClosed CashBoxStatus = "closed"
)

// CashBox is a per-user till created when the user opens a shift. Balance is
// derived from the last ledger entry; the value here is a cached copy kept in
// step by the ledger store inside the same write transaction.
type CashBox struct {
	CashBoxID      string          `json:"cashBoxID"`
	UserID         string          `json:"userID"`
	Status         CashBoxStatus   `json:"status"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	OpenedAt       time.Time       `json:"openedAt"`
	ClosedAt       *time.Time      `json:"closedAt,omitempty"`
	AuditFields
}
