package domain

import "github.com/shopspring/decimal"

// MainCashBoxSentinel is the money_box_id value clients send to mean
// "route this posting to my personal cash box instead of a money box".
const MainCashBoxSentinel = "main"

// MoneyBox is a named, shared pool of funds (e.g. "safe", "bank account")
// used as an alternative target to the personal cash box. Amount is the
// current balance, maintained by the ledger store in the same transaction
// that appends each entry.
type MoneyBox struct {
	MoneyBoxID string          `json:"moneyBoxID"`
	Name       string          `json:"name"` // unique
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes"`
	AuditFields
}
