package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle of a booking. Cancelled bookings are
// invisible to the customer statement.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// BookingSource records which side created the booking.
type BookingSource string

const (
	BookingSourceUser  BookingSource = "USER"
	BookingSourceAdmin BookingSource = "ADMIN"
)

// BookingServiceLine is one catalog service on a booking.
type BookingServiceLine struct {
	ServiceID string `json:"serviceID" db:"service_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

// BookingProductLine is one stocked product sold with a booking.
type BookingProductLine struct {
	ProductID string `json:"productID" db:"product_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

// Booking is a photography session. Every non-cancelled booking acts as
// a virtual invoice posting of TotalSellingPrice against the customer,
// dated at ShootingDate; it is never written to the ledger store.
// ShootingDate is nullable for legacy rows, in which case the creation
// time stands in as the business date.
type Booking struct {
	BookingID         string               `json:"bookingID" db:"booking_id"`
	CustomerID        string               `json:"customerID" db:"customer_id"`
	ShootingDate      *time.Time           `json:"shootingDate" db:"shooting_date"`
	ShootingTime      string               `json:"shootingTime" db:"shooting_time"`
	Services          []BookingServiceLine `json:"services" db:"-"`
	Products          []BookingProductLine `json:"products" db:"-"`
	Discount          decimal.Decimal      `json:"discount" db:"discount"`
	Notes             string               `json:"notes" db:"notes"`
	Status            BookingStatus        `json:"status" db:"status"`
	Source            BookingSource        `json:"source" db:"source"`
	TotalSellingPrice decimal.Decimal      `json:"totalSellingPrice" db:"total_selling_price"`
	TotalCost         decimal.Decimal      `json:"totalCost" db:"total_cost"`
	Profit            decimal.Decimal      `json:"profit" db:"profit"`
	Timestamps
}

// EffectiveDate is the business date a booking contributes to a
// statement: the shooting date when present, otherwise creation time.
func (b Booking) EffectiveDate() time.Time {
	if b.ShootingDate != nil {
		return *b.ShootingDate
	}
	return b.CreatedAt
}
