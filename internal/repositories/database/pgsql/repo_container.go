package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
)

// NewRepositoryContainer wires every pgx-backed repository against the
// shared pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool) portsrepo.RepositoryContainer {
	customerRepo := newPgxCustomerRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	serviceRepo := newPgxServiceRepository(dbPool)
	bookingRepo := newPgxBookingRepository(dbPool, productRepo)
	purchaseRepo := newPgxPurchaseRepository(dbPool, productRepo, supplierRepo)
	quickSaleRepo := newPgxQuickSaleRepository(dbPool, productRepo)
	expenseRepo := newPgxExpenseRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, customerRepo, supplierRepo)

	return portsrepo.RepositoryContainer{
		Customer:  customerRepo,
		Supplier:  supplierRepo,
		Product:   productRepo,
		Service:   serviceRepo,
		Booking:   bookingRepo,
		Purchase:  purchaseRepo,
		QuickSale: quickSaleRepo,
		Expense:   expenseRepo,
		Ledger:    ledgerRepo,
	}
}
