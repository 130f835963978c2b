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

var customerColumns = []string{
	"customer_id", "full_name", "phone_number", "notes",
	"balance", "status", "city", "created_at", "updated_at",
}

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query, args, err := qb.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"customer_id": customerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customer query: %w", err)
	}

	var customer domain.Customer
	if err := pgxscan.Get(ctx, r.Pool, &customer, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, filter portsrepo.ListCustomersFilter) ([]domain.Customer, int64, error) {
	base := qb.Select().From("customers")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"phone_number": pattern},
		})
	}
	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"status": filter.Status})
	}
	switch filter.BalanceType {
	case portsrepo.BalanceDebtor:
		base = base.Where(squirrel.Gt{"balance": 0})
	case portsrepo.BalanceCreditor:
		base = base.Where(squirrel.Lt{"balance": 0})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build customer count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	listBuilder := base.Columns(customerColumns...)
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
		return nil, 0, fmt.Errorf("failed to build customer list query: %w", err)
	}

	var customers []domain.Customer
	if err := pgxscan.Select(ctx, r.Pool, &customers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, total, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, full_name, phone_number, notes, balance, status, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.FullName,
		customer.PhoneNumber,
		customer.Notes,
		customer.Balance,
		customer.Status,
		customer.City,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("customer %s", customer.CustomerID))
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	// Balance is deliberately not in the SET list; it only ever moves
	// through IncrementBalanceInTx.
	query := `
		UPDATE customers
		SET full_name = $2, phone_number = $3, notes = $4, status = $5, city = $6, updated_at = $7
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.FullName,
		customer.PhoneNumber,
		customer.Notes,
		customer.Status,
		customer.City,
		customer.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("customer %s", customer.CustomerID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customer.CustomerID)
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return nil
}

// IncrementBalanceInTx moves the cached balance by delta in a single
// UPDATE so concurrent vouchers never clobber each other.
func (r *PgxCustomerRepository) IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal) error {
	query := `
		UPDATE customers
		SET balance = balance + $2, updated_at = NOW()
		WHERE customer_id = $1;
	`
	tag, err := tx.Exec(ctx, query, customerID, delta)
	if err != nil {
		return fmt.Errorf("failed to increment balance for customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return nil
}
