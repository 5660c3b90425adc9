package services

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	CashBoxSvc     CashBoxSvcFacade
	MoneyBoxSvc    MoneyBoxSvcFacade
	PostingSvc     PostingSvcFacade
	SaleSvc        SaleSvcFacade
	PurchaseSvc    PurchaseSvcFacade
	ExpenseSvc     ExpenseSvcFacade
	ReceiptSvc     ReceiptSvcFacade
	DebtSvc        DebtSvcFacade
	InstallmentSvc InstallmentSvcFacade
	ReportingSvc   ReportingSvcFacade
	UserSvc        UserSvcFacade
}
