package domain

import "github.com/shopspring/decimal"

// EventType names a business event that may move money through a box.
type EventType string

const (
	EventSaleCreated     EventType = "sale_created"
	EventPurchaseCreated EventType = "purchase_created"
	EventExpenseCreated  EventType = "expense_created"
	EventExpenseUpdated  EventType = "expense_updated"
	EventExpenseDeleted  EventType = "expense_deleted"
	EventCustomerReceipt EventType = "customer_receipt_created"
	EventSupplierPayment EventType = "supplier_payment_created"
	EventSaleReturn      EventType = "sale_return_processed"
	EventPurchaseReturn  EventType = "purchase_return_processed"
	EventDebtRepaid      EventType = "debt_repaid"
	EventInstallmentPaid EventType = "installment_paid"
)

// FinancialEvent is the posting instruction a domain service hands to the
// posting orchestrator after its primary business write has committed. It
// replaces the source system's response-body interception: the owning service
// states the financial facts explicitly instead of having them parsed back
// out of the outgoing HTTP payload.
type FinancialEvent struct {
	Type          EventType
	UserID        string          // acting user, owner of the personal cash box
	PaymentMethod PaymentMethod
	Amount        decimal.Decimal // cash amount actually moved; zero means nothing to post
	MoneyBoxID    string          // empty or MainCashBoxSentinel routes to the user's cash box
	ReferenceID   string          // ID of the originating business record
	Description   string

	// Set only for EventExpenseUpdated: the amount and box the expense had
	// before the update, so the orchestrator can rebalance the ledger trail.
	PreviousAmount     decimal.Decimal
	PreviousMoneyBoxID string
}

// UsesCashBox reports whether the event routes to the personal cash box
// rather than a named money box.
func (e FinancialEvent) UsesCashBox() bool {
	return e.MoneyBoxID == "" || e.MoneyBoxID == MainCashBoxSentinel
}
