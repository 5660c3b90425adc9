package repositories

// RepositoryProvider bundles every repository the service container needs.
type RepositoryProvider struct {
	CashBoxRepo     CashBoxRepositoryFacade
	MoneyBoxRepo    MoneyBoxRepositoryFacade
	SaleRepo        SaleRepositoryFacade
	PurchaseRepo    PurchaseRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	ReceiptRepo     ReceiptRepositoryFacade
	DebtRepo        DebtRepositoryFacade
	InstallmentRepo InstallmentRepositoryFacade
	ReportingRepo   ReportingRepositoryFacade
	UserRepo        UserRepositoryFacade
}
