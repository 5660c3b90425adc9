package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// postingRule fixes the ledger type and reference type for one event kind.
type postingRule struct {
	txnType domain.TransactionType
	refType domain.ReferenceType
}

// postingRules maps each financial event to its ledger vocabulary. Directions
// follow from the transaction type; EventExpenseUpdated takes a dedicated
// rebalancing path instead of a single rule.
var postingRules = map[domain.EventType]postingRule{
	domain.EventSaleCreated:     {txnType: domain.TxnSale, refType: domain.RefSale},
	domain.EventPurchaseCreated: {txnType: domain.TxnPurchase, refType: domain.RefPurchase},
	domain.EventExpenseCreated:  {txnType: domain.TxnExpense, refType: domain.RefExpense},
	domain.EventExpenseDeleted:  {txnType: domain.TxnExpenseReversal, refType: domain.RefExpense},
	domain.EventCustomerReceipt: {txnType: domain.TxnCustomerReceipt, refType: domain.RefCustomerReceipt},
	domain.EventSupplierPayment: {txnType: domain.TxnSupplierPayment, refType: domain.RefSupplierPayment},
	domain.EventSaleReturn:      {txnType: domain.TxnWithdrawal, refType: domain.RefSaleReturn},
	domain.EventPurchaseReturn:  {txnType: domain.TxnDeposit, refType: domain.RefPurchaseReturn},
	domain.EventDebtRepaid:      {txnType: domain.TxnCustomerReceipt, refType: domain.RefDebt},
	domain.EventInstallmentPaid: {txnType: domain.TxnCustomerReceipt, refType: domain.RefInstallment},
}

// PostingService turns committed business events into ledger entries. It is
// the explicit post-commit hook the record services call after their own
// write succeeds; failures propagate back to the caller, which owns the
// decision to compensate or merely log.
type PostingService struct {
	cashBoxSvc  portssvc.CashBoxSvcFacade
	moneyBoxSvc portssvc.MoneyBoxSvcFacade
}

// NewPostingService creates the posting orchestrator.
func NewPostingService(cashBoxSvc portssvc.CashBoxSvcFacade, moneyBoxSvc portssvc.MoneyBoxSvcFacade) *PostingService {
	return &PostingService{cashBoxSvc: cashBoxSvc, moneyBoxSvc: moneyBoxSvc}
}

var _ portssvc.PostingSvcFacade = (*PostingService)(nil)

// PostEvent appends the ledger entry (or entries) for one business event.
// Non-cash payments and zero amounts post nothing and return nil.
func (s *PostingService) PostEvent(ctx context.Context, ev domain.FinancialEvent) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !ev.PaymentMethod.IsCashEquivalent() {
		logger.Debug("Skipping ledger posting for non-cash payment",
			slog.String("event", string(ev.Type)),
			slog.String("payment_method", string(ev.PaymentMethod)),
		)
		return nil
	}

	if ev.Type == domain.EventExpenseUpdated {
		return s.postExpenseUpdate(ctx, ev)
	}

	if ev.Amount.IsZero() {
		logger.Debug("Skipping ledger posting for zero amount", slog.String("event", string(ev.Type)))
		return nil
	}

	rule, ok := postingRules[ev.Type]
	if !ok {
		return fmt.Errorf("no posting rule for event type %q", ev.Type)
	}
	direction, err := rule.txnType.Direction()
	if err != nil {
		return err
	}

	_, err = s.post(ctx, ev, rule.txnType, direction, ev.Amount, rule.refType, ev.MoneyBoxID)
	if err != nil {
		return err
	}

	logger.Info("Ledger entry posted",
		slog.String("event", string(ev.Type)),
		slog.String("type", string(rule.txnType)),
		slog.String("amount", ev.Amount.String()),
		slog.String("reference_id", ev.ReferenceID),
	)
	return nil
}

// postExpenseUpdate rebalances the ledger trail of an edited expense. When
// the box is unchanged only the amount delta is posted; when the expense
// moved to a different box the full old amount is reversed on the old box and
// the full new amount applied on the new box as two independent postings.
func (s *PostingService) postExpenseUpdate(ctx context.Context, ev domain.FinancialEvent) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	oldBox := normalizeBoxID(ev.PreviousMoneyBoxID)
	newBox := normalizeBoxID(ev.MoneyBoxID)

	if oldBox == newBox {
		delta := ev.Amount.Sub(ev.PreviousAmount)
		if delta.IsZero() {
			logger.Debug("Expense update changed nothing the ledger cares about", slog.String("reference_id", ev.ReferenceID))
			return nil
		}

		// Adjust by the delta, not a full reversal-and-reapply. The entry
		// direction follows the sign of the delta.
		direction := domain.Debit
		amount := delta
		if delta.IsNegative() {
			direction = domain.Credit
			amount = delta.Neg()
		}

		if _, err := s.post(ctx, ev, domain.TxnExpenseUpdate, direction, amount, domain.RefExpense, ev.MoneyBoxID); err != nil {
			return err
		}
		logger.Info("Expense delta posted",
			slog.String("reference_id", ev.ReferenceID),
			slog.String("delta", delta.String()),
		)
		return nil
	}

	// Box changed: credit the full old amount back on the old box first, then
	// debit the full new amount on the new box.
	if ev.PreviousAmount.IsPositive() {
		if _, err := s.post(ctx, ev, domain.TxnExpenseReversal, domain.Credit, ev.PreviousAmount, domain.RefExpense, ev.PreviousMoneyBoxID); err != nil {
			return fmt.Errorf("failed to reverse expense on previous box: %w", err)
		}
	}
	if ev.Amount.IsPositive() {
		if _, err := s.post(ctx, ev, domain.TxnExpense, domain.Debit, ev.Amount, domain.RefExpense, ev.MoneyBoxID); err != nil {
			return fmt.Errorf("failed to apply expense on new box: %w", err)
		}
	}

	logger.Info("Expense moved between boxes",
		slog.String("reference_id", ev.ReferenceID),
		slog.String("old_amount", ev.PreviousAmount.String()),
		slog.String("new_amount", ev.Amount.String()),
	)
	return nil
}

// post routes one entry to the user's cash box or the named money box.
func (s *PostingService) post(ctx context.Context, ev domain.FinancialEvent, txnType domain.TransactionType, direction domain.EntryDirection, amount decimal.Decimal, refType domain.ReferenceType, moneyBoxID string) (string, error) {
	if normalizeBoxID(moneyBoxID) == "" {
		txn, err := s.cashBoxSvc.AddTransaction(ctx, portssvc.CashTransactionParams{
			UserID:        ev.UserID,
			Type:          txnType,
			Direction:     direction,
			Amount:        amount,
			ReferenceType: refType,
			ReferenceID:   ev.ReferenceID,
			Description:   ev.Description,
		})
		if err != nil {
			return "", err
		}
		return txn.TransactionID, nil
	}

	txn, err := s.moneyBoxSvc.AddTransaction(ctx, portssvc.MoneyTransactionParams{
		MoneyBoxID:    moneyBoxID,
		UserID:        ev.UserID,
		Type:          txnType,
		Direction:     direction,
		Amount:        amount,
		ReferenceType: refType,
		ReferenceID:   ev.ReferenceID,
		Description:   ev.Description,
	})
	if err != nil {
		return "", err
	}
	return txn.TransactionID, nil
}

// normalizeBoxID collapses the "main" sentinel to the empty cash box routing.
func normalizeBoxID(moneyBoxID string) string {
	if moneyBoxID == domain.MainCashBoxSentinel {
		return ""
	}
	return moneyBoxID
}
