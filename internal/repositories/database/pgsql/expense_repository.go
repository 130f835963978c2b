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

// expenseColumns are aliased because reads join suppliers to carry the
// supplier name alongside the reference.
var expenseColumns = []string{
	"e.expense_id", "e.type", "e.amount", "e.date", "e.supplier_id",
	"s.name AS supplier_name", "e.notes", "e.created_at", "e.updated_at",
}

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query, args, err := qb.Select(expenseColumns...).
		From("expenses e").
		LeftJoin("suppliers s ON s.supplier_id = e.supplier_id").
		Where(squirrel.Eq{"e.expense_id": expenseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build expense query: %w", err)
	}

	var expense domain.Expense
	if err := pgxscan.Get(ctx, r.Pool, &expense, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ListExpensesFilter) ([]domain.Expense, int64, error) {
	base := qb.Select().
		From("expenses e").
		LeftJoin("suppliers s ON s.supplier_id = e.supplier_id")
	if filter.Type != "" {
		base = base.Where(squirrel.ILike{"e.type": "%" + filter.Type + "%"})
	}
	if filter.SupplierID != "" {
		base = base.Where(squirrel.Eq{"e.supplier_id": filter.SupplierID})
	}
	if filter.StartDate != nil {
		base = base.Where(squirrel.GtOrEq{"e.date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		base = base.Where(squirrel.LtOrEq{"e.date": *filter.EndDate})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build expense count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	listBuilder := base.Columns(expenseColumns...).OrderBy("e.date DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build expense list query: %w", err)
	}

	var expenses []domain.Expense
	if err := pgxscan.Select(ctx, r.Pool, &expenses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, total, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, type, amount, date, supplier_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.Type,
		expense.Amount,
		expense.Date,
		expense.SupplierID,
		expense.Notes,
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("expense %s", expense.ExpenseID))
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET type = $2, amount = $3, date = $4, supplier_id = $5, notes = $6, updated_at = $7
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.Type,
		expense.Amount,
		expense.Date,
		expense.SupplierID,
		expense.Notes,
		expense.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("expense %s", expense.ExpenseID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expense.ExpenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	return nil
}
