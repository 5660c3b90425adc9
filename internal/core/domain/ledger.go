package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection indicates whether a ledger entry increases or decreases the box balance.
type EntryDirection string

const (
	Credit EntryDirection = "CREDIT" // money into the box
	Debit  EntryDirection = "DEBIT"  // money out of the box
)

// TransactionType is the business meaning of a ledger entry.
type TransactionType string

const (
	TxnSale            TransactionType = "sale"
	TxnPurchase        TransactionType = "purchase"
	TxnExpense         TransactionType = "expense"
	TxnExpenseReversal TransactionType = "expense_reversal"
	TxnExpenseUpdate   TransactionType = "expense_update"
	TxnCustomerReceipt TransactionType = "customer_receipt"
	TxnSupplierPayment TransactionType = "supplier_payment"
	TxnDeposit         TransactionType = "deposit"
	TxnWithdrawal      TransactionType = "withdrawal"
	TxnTransferIn      TransactionType = "transfer_in"
	TxnTransferOut     TransactionType = "transfer_out"
)

// Direction returns the fixed direction for types whose sign never varies.
// TxnExpenseUpdate has no fixed direction (it follows the sign of the amount
// delta) and returns an error; callers must supply the direction explicitly.
func (t TransactionType) Direction() (EntryDirection, error) {
	switch t {
	case TxnSale, TxnCustomerReceipt, TxnDeposit, TxnTransferIn, TxnExpenseReversal:
		return Credit, nil
	case TxnPurchase, TxnExpense, TxnSupplierPayment, TxnWithdrawal, TxnTransferOut:
		return Debit, nil
	case TxnExpenseUpdate:
		return "", fmt.Errorf("transaction type %q has no fixed direction", t)
	default:
		return "", fmt.Errorf("unknown transaction type %q", t)
	}
}

// ReferenceType names the kind of business record a ledger entry points back to.
type ReferenceType string

const (
	RefSale            ReferenceType = "sale"
	RefPurchase        ReferenceType = "purchase"
	RefExpense         ReferenceType = "expense"
	RefSaleReturn      ReferenceType = "sale_return"
	RefPurchaseReturn  ReferenceType = "purchase_return"
	RefCustomerReceipt ReferenceType = "customer_receipt"
	RefSupplierPayment ReferenceType = "supplier_payment"
	RefDebt            ReferenceType = "debt"
	RefInstallment     ReferenceType = "installment"
	RefTransfer        ReferenceType = "transfer"
	RefManual          ReferenceType = "manual"
)

// CashBoxTransaction is an immutable, append-only entry in a user's cash box
// ledger. BalanceAfter snapshots the box balance once this entry is applied;
// entries are never mutated or deleted, corrections are compensating entries.
type CashBoxTransaction struct {
	TransactionID string          `json:"transactionID"`
	CashBoxID     string          `json:"cashBoxID"`
	UserID        string          `json:"userID"`
	Type          TransactionType `json:"type"`
	Direction     EntryDirection  `json:"direction"`
	Amount        decimal.Decimal `json:"amount"` // always positive
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"`
	Description   string          `json:"description"`
	Notes         string          `json:"notes"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// MoneyBoxTransaction is the money-box counterpart of CashBoxTransaction.
// Transfers additionally record the peer box so the linked pair can be traced.
type MoneyBoxTransaction struct {
	TransactionID string          `json:"transactionID"`
	MoneyBoxID    string          `json:"moneyBoxID"`
	Type          TransactionType `json:"type"`
	Direction     EntryDirection  `json:"direction"`
	Amount        decimal.Decimal `json:"amount"` // always positive
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"`
	RelatedBoxID  string          `json:"relatedBoxID,omitempty"` // peer box for transfer_in/transfer_out
	Description   string          `json:"description"`
	Notes         string          `json:"notes"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
