package domain

import "github.com/shopspring/decimal"

// CustomerStatus describes how the studio currently treats a customer.
type CustomerStatus string

const (
	CustomerActive  CustomerStatus = "active"
	CustomerBlocked CustomerStatus = "blocked"
	CustomerVIP     CustomerStatus = "vip"
)

// Customer is a studio customer. Balance is a denormalized cache of the
// net ledger position: positive means the customer owes the studio.
// It must only ever be moved by atomic increments alongside the write
// that justifies the change; the statement builder recomputes the
// authoritative figure from the underlying rows.
type Customer struct {
	CustomerID  string          `json:"customerID" db:"customer_id"`
	FullName    string          `json:"fullName" db:"full_name"`
	PhoneNumber string          `json:"phoneNumber" db:"phone_number"`
	Notes       string          `json:"notes" db:"notes"`
	Balance     decimal.Decimal `json:"balance" db:"balance"`
	Status      CustomerStatus  `json:"status" db:"status"`
	City        string          `json:"city" db:"city"`
	Timestamps
}
