package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
)

var productColumns = []string{
	"product_id", "name", "cost_price", "selling_price",
	"stock_quantity", "supplier_id", "created_at", "updated_at",
}

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query, args, err := qb.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product query: %w", err)
	}

	var product domain.Product
	if err := pgxscan.Get(ctx, r.Pool, &product, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return &product, nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query, args, err := qb.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"product_id": productIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build products query: %w", err)
	}

	var products []domain.Product
	if err := pgxscan.Select(ctx, r.Pool, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	result := make(map[string]domain.Product, len(products))
	for _, p := range products {
		result[p.ProductID] = p
	}
	return result, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, filter portsrepo.ListProductsFilter) ([]domain.Product, int64, error) {
	base := qb.Select().From("products")
	if filter.Search != "" {
		base = base.Where(squirrel.ILike{"name": "%" + filter.Search + "%"})
	}
	if filter.SupplierID != "" {
		base = base.Where(squirrel.Eq{"supplier_id": filter.SupplierID})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build product count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	listBuilder := base.Columns(productColumns...).OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build product list query: %w", err)
	}

	var products []domain.Product
	if err := pgxscan.Select(ctx, r.Pool, &products, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, cost_price, selling_price, stock_quantity, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.CostPrice,
		product.SellingPrice,
		product.StockQuantity,
		product.SupplierID,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("product %s", product.ProductID))
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, cost_price = $3, selling_price = $4, stock_quantity = $5, supplier_id = $6, updated_at = $7
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.CostPrice,
		product.SellingPrice,
		product.StockQuantity,
		product.SupplierID,
		product.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("product %s", product.ProductID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, product.ProductID)
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}

// AdjustStockInTx moves stock by delta in one UPDATE. The stock check is
// part of the statement itself so concurrent bookings cannot both take
// the last unit.
func (r *PgxProductRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2, updated_at = NOW()
		WHERE product_id = $1 AND stock_quantity + $2 >= 0;
	`
	tag, err := tx.Exec(ctx, query, productID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: insufficient stock for product %s", apperrors.ErrValidation, productID)
	}
	return nil
}

func (r *PgxProductRepository) UpdateCostPriceInTx(ctx context.Context, tx pgx.Tx, productID string, costPrice decimal.Decimal) error {
	query := `
		UPDATE products
		SET cost_price = $2, updated_at = NOW()
		WHERE product_id = $1;
	`
	tag, err := tx.Exec(ctx, query, productID, costPrice)
	if err != nil {
		return fmt.Errorf("failed to update cost price for product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}
