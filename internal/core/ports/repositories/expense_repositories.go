package repositories

import (
	"context"
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
)

// ListExpensesFilter carries the optional expense list-view filters.
type ListExpensesFilter struct {
	Type       string
	SupplierID string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

// ExpenseReader defines read operations for expense data.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter ListExpensesFilter) ([]domain.Expense, int64, error)
}

// ExpenseWriter defines write operations for expense data.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
