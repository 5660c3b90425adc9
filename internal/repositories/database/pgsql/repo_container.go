package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	cashBoxRepo := newPgxCashBoxRepository(dbPool)
	moneyBoxRepo := newPgxMoneyBoxRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool)
	purchaseRepo := newPgxPurchaseRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	receiptRepo := newPgxReceiptRepository(dbPool)
	debtRepo := newPgxDebtRepository(dbPool)
	installmentRepo := newPgxInstallmentRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CashBoxRepo:     cashBoxRepo,
		MoneyBoxRepo:    moneyBoxRepo,
		SaleRepo:        saleRepo,
		PurchaseRepo:    purchaseRepo,
		ExpenseRepo:     expenseRepo,
		ReceiptRepo:     receiptRepo,
		DebtRepo:        debtRepo,
		InstallmentRepo: installmentRepo,
		ReportingRepo:   reportingRepo,
		UserRepo:        userRepo,
	}
}
