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

var purchaseColumns = []string{
	"purchase_id", "supplier_id", "payment_type", "total_amount", "created_at", "updated_at",
}

type PgxPurchaseRepository struct {
	BaseRepository
	productRepo  portsrepo.ProductWriter
	supplierRepo portsrepo.SupplierWriter
}

func newPgxPurchaseRepository(pool *pgxpool.Pool, productRepo portsrepo.ProductWriter, supplierRepo portsrepo.SupplierWriter) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
		productRepo:    productRepo,
		supplierRepo:   supplierRepo,
	}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query, args, err := qb.Select(purchaseColumns...).
		From("purchases").
		Where(squirrel.Eq{"purchase_id": purchaseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build purchase query: %w", err)
	}

	var purchase domain.Purchase
	if err := pgxscan.Get(ctx, r.Pool, &purchase, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: purchase %s", apperrors.ErrNotFound, purchaseID)
		}
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}

	if err := r.loadItems(ctx, []*domain.Purchase{&purchase}); err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, filter portsrepo.ListPurchasesFilter) ([]domain.Purchase, int64, error) {
	base := qb.Select().From("purchases")
	if filter.SupplierID != "" {
		base = base.Where(squirrel.Eq{"supplier_id": filter.SupplierID})
	}
	if filter.StartDate != nil {
		base = base.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		base = base.Where(squirrel.LtOrEq{"created_at": *filter.EndDate})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build purchase count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	listBuilder := base.Columns(purchaseColumns...).OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build purchase list query: %w", err)
	}

	var purchases []domain.Purchase
	if err := pgxscan.Select(ctx, r.Pool, &purchases, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}

	refs := make([]*domain.Purchase, len(purchases))
	for i := range purchases {
		refs[i] = &purchases[i]
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}

// FindCreditPurchasesBySupplier returns the supplier's credit purchases
// oldest first. Items are not loaded; the statement builder only reads
// totals and dates.
func (r *PgxPurchaseRepository) FindCreditPurchasesBySupplier(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	query, args, err := qb.Select(purchaseColumns...).
		From("purchases").
		Where(squirrel.Eq{"supplier_id": supplierID, "payment_type": domain.PaymentCredit}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build credit purchases query: %w", err)
	}

	var purchases []domain.Purchase
	if err := pgxscan.Select(ctx, r.Pool, &purchases, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find credit purchases for supplier %s: %w", supplierID, err)
	}
	return purchases, nil
}

// SavePurchase commits the purchase, its items, the stock intake, the
// latest cost prices, and for credit purchases the supplier balance
// increment as a single transaction.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO purchases (purchase_id, supplier_id, payment_type, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertQuery,
		purchase.PurchaseID,
		purchase.SupplierID,
		purchase.PaymentType,
		purchase.TotalAmount,
		purchase.CreatedAt,
		purchase.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("purchase %s", purchase.PurchaseID))
	}

	for _, item := range purchase.Items {
		_, err := tx.Exec(ctx,
			`INSERT INTO purchase_items (purchase_id, product_id, quantity, purchase_price) VALUES ($1, $2, $3, $4);`,
			purchase.PurchaseID, item.ProductID, item.Quantity, item.PurchasePrice)
		if err != nil {
			return fmt.Errorf("failed to insert purchase item: %w", err)
		}
		if err := r.productRepo.AdjustStockInTx(ctx, tx, item.ProductID, item.Quantity); err != nil {
			return err
		}
		if err := r.productRepo.UpdateCostPriceInTx(ctx, tx, item.ProductID, item.PurchasePrice); err != nil {
			return err
		}
	}

	if purchase.PaymentType == domain.PaymentCredit {
		if err := r.supplierRepo.IncrementBalanceInTx(ctx, tx, purchase.SupplierID, purchase.TotalAmount); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseRepository) loadItems(ctx context.Context, purchases []*domain.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}
	ids := make([]string, len(purchases))
	byID := make(map[string]*domain.Purchase, len(purchases))
	for i, p := range purchases {
		ids[i] = p.PurchaseID
		byID[p.PurchaseID] = p
		p.Items = []domain.PurchaseItem{}
	}

	type itemRow struct {
		PurchaseID string `db:"purchase_id"`
		domain.PurchaseItem
	}
	query, args, err := qb.Select("purchase_id", "product_id", "quantity", "purchase_price").
		From("purchase_items").
		Where(squirrel.Eq{"purchase_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build purchase items query: %w", err)
	}
	var rows []itemRow
	if err := pgxscan.Select(ctx, r.Pool, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to load purchase items: %w", err)
	}
	for _, row := range rows {
		p := byID[row.PurchaseID]
		p.Items = append(p.Items, row.PurchaseItem)
	}
	return nil
}
