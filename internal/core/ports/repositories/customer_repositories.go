package repositories

import (
	"context"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BalanceType filters entities by which side of zero their balance is on.
type BalanceType string

const (
	BalanceAny      BalanceType = ""
	BalanceDebtor   BalanceType = "debtor"
	BalanceCreditor BalanceType = "creditor"
)

// ListCustomersFilter carries the optional list-view filters.
type ListCustomersFilter struct {
	Search      string
	Status      domain.CustomerStatus
	BalanceType BalanceType
	Sort        string // "highest_balance", "lowest_balance", default newest first
	Limit       int
	Offset      int
}

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, filter ListCustomersFilter) ([]domain.Customer, int64, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error

	// IncrementBalanceInTx applies an atomic balance increment inside an
	// existing transaction. Callers must never read-modify-write the
	// balance column.
	IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
