package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating cost entry (rent, utilities, equipment
// repair). Type is a free-text category. Expenses are bookkeeping only:
// they never touch stock, supplier balances, or the ledger, even when
// linked to a supplier for reference.
type Expense struct {
	ExpenseID    string          `json:"expenseID" db:"expense_id"`
	Type         string          `json:"type" db:"type"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Date         time.Time       `json:"date" db:"date"`
	SupplierID   *string         `json:"supplierID,omitempty" db:"supplier_id"`
	SupplierName *string         `json:"supplierName,omitempty" db:"supplier_name"`
	Notes        string          `json:"notes" db:"notes"`
	Timestamps
}
