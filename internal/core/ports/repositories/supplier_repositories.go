package repositories

import (
	"context"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ListSuppliersFilter carries the optional supplier list-view filters.
type ListSuppliersFilter struct {
	Search      string
	BalanceType BalanceType
	Sort        string
	Limit       int
	Offset      int
}

// SupplierReader defines read operations for supplier data.
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, filter ListSuppliersFilter) ([]domain.Supplier, int64, error)
}

// SupplierWriter defines write operations for supplier data.
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error

	// IncrementBalanceInTx applies an atomic balance increment inside an
	// existing transaction.
	IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, supplierID string, delta decimal.Decimal) error
}

// SupplierRepositoryFacade combines all supplier repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
