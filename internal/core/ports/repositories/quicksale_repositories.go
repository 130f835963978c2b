package repositories

import (
	"context"
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
)

// ListQuickSalesFilter carries the optional quick sale list-view filters.
type ListQuickSalesFilter struct {
	CustomerID string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

// QuickSaleReader defines read operations for quick sale data.
type QuickSaleReader interface {
	FindQuickSaleByID(ctx context.Context, quickSaleID string) (*domain.QuickSale, error)
	ListQuickSales(ctx context.Context, filter ListQuickSalesFilter) ([]domain.QuickSale, int64, error)
}

// QuickSaleWriter defines write operations for quick sale data.
type QuickSaleWriter interface {
	// SaveQuickSale inserts the sale with its items and decrements stock
	// for every product line in one transaction. Insufficient stock
	// fails the whole sale.
	SaveQuickSale(ctx context.Context, sale domain.QuickSale) error
}

// QuickSaleRepositoryFacade combines all quick sale repository interfaces.
type QuickSaleRepositoryFacade interface {
	QuickSaleReader
	QuickSaleWriter
}
