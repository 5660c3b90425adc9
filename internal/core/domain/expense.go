package domain

import "github.com/shopspring/decimal"

// Expense is a business outgoing (rent, utilities, wages). It is the one
// record type whose ledger trail is rebalanced on update: changing the amount
// on the same box posts a delta entry, moving the expense to another box
// reverses the full old amount and applies the full new amount.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	MoneyBoxID    string          `json:"moneyBoxID,omitempty"`
	Description   string          `json:"description"`
	AuditFields
}
