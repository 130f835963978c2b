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

var supplierColumns = []string{
	"supplier_id", "name", "phone_number", "balance", "created_at", "updated_at",
}

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query, args, err := qb.Select(supplierColumns...).
		From("suppliers").
		Where(squirrel.Eq{"supplier_id": supplierID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build supplier query: %w", err)
	}

	var supplier domain.Supplier
	if err := pgxscan.Get(ctx, r.Pool, &supplier, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	return &supplier, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, filter portsrepo.ListSuppliersFilter) ([]domain.Supplier, int64, error) {
	base := qb.Select().From("suppliers")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"phone_number": pattern},
		})
	}
	switch filter.BalanceType {
	case portsrepo.BalanceDebtor:
		base = base.Where(squirrel.Gt{"balance": 0})
	case portsrepo.BalanceCreditor:
		base = base.Where(squirrel.Lt{"balance": 0})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build supplier count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	listBuilder := base.Columns(supplierColumns...)
	switch filter.Sort {
	case "highest_balance":
		listBuilder = listBuilder.OrderBy("balance DESC")
	case "lowest_balance":
		listBuilder = listBuilder.OrderBy("balance ASC")
	default:
		listBuilder = listBuilder.OrderBy("created_at DESC")
	}
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build supplier list query: %w", err)
	}

	var suppliers []domain.Supplier
	if err := pgxscan.Select(ctx, r.Pool, &suppliers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, total, nil
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, name, phone_number, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.PhoneNumber,
		supplier.Balance,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("supplier %s", supplier.SupplierID))
	}
	return nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	// Balance moves only through IncrementBalanceInTx.
	query := `
		UPDATE suppliers
		SET name = $2, phone_number = $3, updated_at = $4
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.PhoneNumber,
		supplier.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("supplier %s", supplier.SupplierID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplier.SupplierID)
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
	}
	return nil
}

func (r *PgxSupplierRepository) IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, supplierID string, delta decimal.Decimal) error {
	query := `
		UPDATE suppliers
		SET balance = balance + $2, updated_at = NOW()
		WHERE supplier_id = $1;
	`
	tag, err := tx.Exec(ctx, query, supplierID, delta)
	if err != nil {
		return fmt.Errorf("failed to increment balance for supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
	}
	return nil
}
