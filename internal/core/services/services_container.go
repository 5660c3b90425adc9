package services

import (
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Box services first: the posting orchestrator routes through them.
	container.CashBoxSvc = NewCashBoxService(repos.CashBoxRepo)
	container.MoneyBoxSvc = NewMoneyBoxService(repos.MoneyBoxRepo)
	container.PostingSvc = NewPostingService(container.CashBoxSvc, container.MoneyBoxSvc)

	// Record services post their ledger effects through the orchestrator.
	container.SaleSvc = NewSaleService(repos.SaleRepo, container.PostingSvc)
	container.PurchaseSvc = NewPurchaseService(repos.PurchaseRepo, container.PostingSvc)
	container.ExpenseSvc = NewExpenseService(repos.ExpenseRepo, container.PostingSvc)
	container.ReceiptSvc = NewReceiptService(repos.ReceiptRepo, container.PostingSvc)
	container.DebtSvc = NewDebtService(repos.DebtRepo, container.PostingSvc)
	container.InstallmentSvc = NewInstallmentService(repos.InstallmentRepo, repos.SaleRepo, container.PostingSvc)

	container.ReportingSvc = NewReportingService(repos.ReportingRepo)
	container.UserSvc = NewUserService(repos.UserRepo, cfg)

	return container
}
