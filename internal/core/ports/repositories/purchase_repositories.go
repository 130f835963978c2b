package repositories

import (
	"context"
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
)

// ListPurchasesFilter carries the optional purchase list-view filters.
type ListPurchasesFilter struct {
	SupplierID string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

// PurchaseReader defines read operations for purchase data.
type PurchaseReader interface {
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, filter ListPurchasesFilter) ([]domain.Purchase, int64, error)

	// FindCreditPurchasesBySupplier returns the supplier's credit
	// purchases ordered by creation time ascending. This is the purchase
	// source adapter for the statement builder; cash purchases are never
	// returned.
	FindCreditPurchasesBySupplier(ctx context.Context, supplierID string) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchase data.
type PurchaseWriter interface {
	// SavePurchase inserts the purchase with its items, restocks the
	// products, records their latest cost price, and (for credit
	// purchases) atomically increments the supplier balance, all in one
	// transaction.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
