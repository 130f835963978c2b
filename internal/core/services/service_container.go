package services

import (
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/events"
)

// NewServiceContainer wires all services against the repository
// container and the event publisher.
func NewServiceContainer(repos portsrepo.RepositoryContainer, publisher events.Publisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Customer:  NewCustomerService(repos.Customer),
		Supplier:  NewSupplierService(repos.Supplier),
		Product:   NewProductService(repos.Product),
		Catalog:   NewCatalogService(repos.Service),
		Booking:   NewBookingService(repos.Booking, repos.Customer, repos.Service, repos.Product),
		Purchase:  NewPurchaseService(repos.Purchase, repos.Supplier, repos.Product),
		QuickSale: NewQuickSaleService(repos.QuickSale, repos.Customer, repos.Service, repos.Product),
		Expense:   NewExpenseService(repos.Expense, repos.Supplier),
		Ledger:    NewLedgerService(repos.Ledger, repos.Customer, publisher),
		Statement: NewStatementService(
			repos.Ledger,
			repos.Customer,
			repos.Supplier,
			repos.Booking,
			repos.Purchase,
		),
	}
}
