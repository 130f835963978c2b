package repositories

// RepositoryContainer aggregates all repository facades for injection
// into the service layer.
type RepositoryContainer struct {
	Customer  CustomerRepositoryFacade
	Supplier  SupplierRepositoryFacade
	Product   ProductRepositoryFacade
	Service   ServiceRepositoryFacade
	Booking   BookingRepositoryFacade
	Purchase  PurchaseRepositoryFacade
	QuickSale QuickSaleRepositoryFacade
	Expense   ExpenseRepositoryFacade
	Ledger    LedgerRepositoryFacade
}
