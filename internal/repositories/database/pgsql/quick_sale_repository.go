package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
)

var quickSaleColumns = []string{
	"quick_sale_id", "customer_id", "payment_type", "total_selling_price", "total_cost", "profit", "created_at", "updated_at",
}

type PgxQuickSaleRepository struct {
	BaseRepository
	productRepo portsrepo.ProductWriter
}

func newPgxQuickSaleRepository(pool *pgxpool.Pool, productRepo portsrepo.ProductWriter) portsrepo.QuickSaleRepositoryFacade {
	return &PgxQuickSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		productRepo:    productRepo,
	}
}

var _ portsrepo.QuickSaleRepositoryFacade = (*PgxQuickSaleRepository)(nil)

func (r *PgxQuickSaleRepository) FindQuickSaleByID(ctx context.Context, quickSaleID string) (*domain.QuickSale, error) {
	query, args, err := qb.Select(quickSaleColumns...).
		From("quick_sales").
		Where(squirrel.Eq{"quick_sale_id": quickSaleID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build quick sale query: %w", err)
	}

	var sale domain.QuickSale
	if err := pgxscan.Get(ctx, r.Pool, &sale, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: quick sale %s", apperrors.ErrNotFound, quickSaleID)
		}
		return nil, fmt.Errorf("failed to find quick sale %s: %w", quickSaleID, err)
	}

	if err := r.loadItems(ctx, []*domain.QuickSale{&sale}); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *PgxQuickSaleRepository) ListQuickSales(ctx context.Context, filter portsrepo.ListQuickSalesFilter) ([]domain.QuickSale, int64, error) {
	base := qb.Select().From("quick_sales")
	if filter.CustomerID != "" {
		base = base.Where(squirrel.Eq{"customer_id": filter.CustomerID})
	}
	if filter.StartDate != nil {
		base = base.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		base = base.Where(squirrel.LtOrEq{"created_at": *filter.EndDate})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build quick sale count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count quick sales: %w", err)
	}

	listBuilder := base.Columns(quickSaleColumns...).OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build quick sale list query: %w", err)
	}

	var sales []domain.QuickSale
	if err := pgxscan.Select(ctx, r.Pool, &sales, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list quick sales: %w", err)
	}

	refs := make([]*domain.QuickSale, len(sales))
	for i := range sales {
		refs[i] = &sales[i]
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// SaveQuickSale commits the sale, its items, and the stock decrement for
// every product line as a single transaction. The stock guard fails the
// whole sale when a product would go negative.
func (r *PgxQuickSaleRepository) SaveQuickSale(ctx context.Context, sale domain.QuickSale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO quick_sales (quick_sale_id, customer_id, payment_type, total_selling_price, total_cost, profit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertQuery,
		sale.QuickSaleID,
		sale.CustomerID,
		sale.PaymentType,
		sale.TotalSellingPrice,
		sale.TotalCost,
		sale.Profit,
		sale.CreatedAt,
		sale.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("quick sale %s", sale.QuickSaleID))
	}

	for _, item := range sale.Items {
		_, err := tx.Exec(ctx,
			`INSERT INTO quick_sale_items (quick_sale_id, item_type, service_id, product_id, quantity) VALUES ($1, $2, $3, $4, $5);`,
			sale.QuickSaleID, item.Type, item.ServiceID, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert quick sale item: %w", err)
		}
		if item.Type == domain.QuickSaleItemProduct && item.ProductID != nil {
			if err := r.productRepo.AdjustStockInTx(ctx, tx, *item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxQuickSaleRepository) loadItems(ctx context.Context, sales []*domain.QuickSale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]string, len(sales))
	byID := make(map[string]*domain.QuickSale, len(sales))
	for i, s := range sales {
		ids[i] = s.QuickSaleID
		byID[s.QuickSaleID] = s
		s.Items = []domain.QuickSaleItem{}
	}

	type itemRow struct {
		QuickSaleID string `db:"quick_sale_id"`
		domain.QuickSaleItem
	}
	query, args, err := qb.Select("quick_sale_id", "item_type", "service_id", "product_id", "quantity").
		From("quick_sale_items").
		Where(squirrel.Eq{"quick_sale_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build quick sale items query: %w", err)
	}
	var rows []itemRow
	if err := pgxscan.Select(ctx, r.Pool, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to load quick sale items: %w", err)
	}
	for _, row := range rows {
		s := byID[row.QuickSaleID]
		s.Items = append(s.Items, row.QuickSaleItem)
	}
	return nil
}
