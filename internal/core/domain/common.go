package domain

import "time"

// Timestamps holds the standard record lifecycle fields shared by all
// persisted entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// EntityKind identifies which side of the business a ledger entity sits on.
type EntityKind string

const (
	EntityCustomer EntityKind = "customer"
	EntitySupplier EntityKind = "supplier"
)

// IsValid reports whether k is one of the known entity kinds.
func (k EntityKind) IsValid() bool {
	return k == EntityCustomer || k == EntitySupplier
}
