package repositories

import (
	"context"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ListProductsFilter carries the optional product list-view filters.
type ListProductsFilter struct {
	Search     string
	SupplierID string
	Limit      int
	Offset     int
}

// ProductReader defines read operations for product data.
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)
	ListProducts(ctx context.Context, filter ListProductsFilter) ([]domain.Product, int64, error)
}

// ProductWriter defines write operations for product data.
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error

	// AdjustStockInTx moves stock by delta (negative to consume) inside
	// an existing transaction, failing when the adjustment would drive
	// stock below zero.
	AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int) error

	// UpdateCostPriceInTx records the latest purchase price inside an
	// existing transaction.
	UpdateCostPriceInTx(ctx context.Context, tx pgx.Tx, productID string, costPrice decimal.Decimal) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
