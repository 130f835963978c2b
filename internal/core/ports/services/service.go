package services

// ServiceContainer aggregates all service facades handed to the HTTP
// layer.
type ServiceContainer struct {
	Customer  CustomerSvcFacade
	Supplier  SupplierSvcFacade
	Product   ProductSvcFacade
	Catalog   CatalogSvcFacade
	Booking   BookingSvcFacade
	Purchase  PurchaseSvcFacade
	QuickSale QuickSaleSvcFacade
	Expense   ExpenseSvcFacade
	Ledger    LedgerSvcFacade
	Statement StatementSvcFacade
}
