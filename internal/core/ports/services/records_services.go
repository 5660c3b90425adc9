package services

import (
	"context"
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/retailware/cashbox_backend/internal/dto"
)

// SaleSvcFacade creates sales and processes refunds against them.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error)
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	ProcessSaleReturn(ctx context.Context, saleID string, req dto.CreateSaleReturnRequest, userID string) (*domain.SaleReturn, error)
}

// PurchaseSvcFacade creates purchases and processes returns to suppliers.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ProcessPurchaseReturn(ctx context.Context, purchaseID string, req dto.CreatePurchaseReturnRequest, userID string) (*domain.PurchaseReturn, error)
}

// ExpenseSvcFacade manages expense records and their ledger effects.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
}

// ReceiptSvcFacade records standalone customer receipts and supplier payments.
type ReceiptSvcFacade interface {
	CreateCustomerReceipt(ctx context.Context, req dto.CreateCustomerReceiptRequest, userID string) (*domain.CustomerReceipt, error)
	GetCustomerReceiptByID(ctx context.Context, receiptID string) (*domain.CustomerReceipt, error)
	CreateSupplierPayment(ctx context.Context, req dto.CreateSupplierPaymentRequest, userID string) (*domain.SupplierPaymentReceipt, error)
	GetSupplierPaymentByID(ctx context.Context, receiptID string) (*domain.SupplierPaymentReceipt, error)
}

// DebtSvcFacade tracks customer debts and their repayments.
type DebtSvcFacade interface {
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest, userID string) (*domain.Debt, error)
	GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context) ([]domain.Debt, error)
	RepayDebt(ctx context.Context, debtID string, req dto.RepayDebtRequest, userID string) (*domain.Debt, error)
}

// InstallmentSvcFacade tracks installment plans and their payments.
type InstallmentSvcFacade interface {
	CreateInstallment(ctx context.Context, req dto.CreateInstallmentRequest, userID string) (*domain.Installment, error)
	GetInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error)
	ListInstallments(ctx context.Context) ([]domain.Installment, error)
	PayInstallment(ctx context.Context, installmentID string, req dto.PayInstallmentRequest, userID string) (*domain.Installment, error)
}

// ReportingSvcFacade aggregates ledger activity over date ranges.
type ReportingSvcFacade interface {
	GetCashFlowSummary(ctx context.Context, from, to time.Time) (*domain.CashFlowSummary, error)
}
