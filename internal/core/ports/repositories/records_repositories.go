package repositories

import (
	"context"
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleRepositoryFacade persists sales and their returns.
type SaleRepositoryFacade interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	SaveSaleReturn(ctx context.Context, ret domain.SaleReturn) error
}

// PurchaseRepositoryFacade persists purchases and their returns.
type PurchaseRepositoryFacade interface {
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	// DeletePurchase is the compensation path when a ledger posting fails
	// after the purchase row was written.
	DeletePurchase(ctx context.Context, purchaseID string) error
	SavePurchaseReturn(ctx context.Context, ret domain.PurchaseReturn) error
}

// ExpenseRepositoryFacade persists expenses. DeleteExpense is also the
// compensation path when a ledger posting fails after the expense row was
// written.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ReceiptRepositoryFacade persists customer receipts and supplier payments.
type ReceiptRepositoryFacade interface {
	SaveCustomerReceipt(ctx context.Context, receipt domain.CustomerReceipt) error
	FindCustomerReceiptByID(ctx context.Context, receiptID string) (*domain.CustomerReceipt, error)
	SaveSupplierPayment(ctx context.Context, receipt domain.SupplierPaymentReceipt) error
	FindSupplierPaymentByID(ctx context.Context, receiptID string) (*domain.SupplierPaymentReceipt, error)
}

// DebtRepositoryFacade persists debts and their repayment progress.
type DebtRepositoryFacade interface {
	SaveDebt(ctx context.Context, debt domain.Debt) error
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context) ([]domain.Debt, error)
	UpdateDebtPayment(ctx context.Context, debtID string, paidAmount decimal.Decimal, status domain.DebtStatus, userID string, now time.Time) error
}

// InstallmentRepositoryFacade persists installments and their payment progress.
type InstallmentRepositoryFacade interface {
	SaveInstallment(ctx context.Context, inst domain.Installment) error
	FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error)
	ListInstallments(ctx context.Context) ([]domain.Installment, error)
	UpdateInstallmentPayment(ctx context.Context, installmentID string, paidAmount decimal.Decimal, status domain.InstallmentStatus, userID string, now time.Time) error
}

// ReportingRepositoryFacade aggregates ledger data for reports.
type ReportingRepositoryFacade interface {
	// SummarizeCashFlow aggregates both ledgers per transaction type over [from, to].
	SummarizeCashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowSummary, error)
}

// UserRepositoryFacade persists users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
