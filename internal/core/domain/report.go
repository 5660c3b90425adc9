package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowLine is one aggregated row of the cash-flow report: the total moved
// for one transaction type across all boxes of one ledger.
type CashFlowLine struct {
	Ledger    string          `json:"ledger"` // "cash_box" or "money_box"
	Type      TransactionType `json:"type"`
	Direction EntryDirection  `json:"direction"`
	Total     decimal.Decimal `json:"total"`
	Count     int64           `json:"count"`
}

// CashFlowSummary aggregates fund movement over both ledgers for a date range.
type CashFlowSummary struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	CashIn  decimal.Decimal `json:"cashIn"`
	CashOut decimal.Decimal `json:"cashOut"`
	Net     decimal.Decimal `json:"net"`
	Lines   []CashFlowLine  `json:"lines"`
}
