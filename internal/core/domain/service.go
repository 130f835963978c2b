package domain

import "github.com/shopspring/decimal"

// Service is a catalog entry for studio work (shoots, editing, prints).
// Booking line totals are priced from the catalog at booking time.
type Service struct {
	ServiceID       string          `json:"serviceID" db:"service_id"`
	Name            string          `json:"name" db:"name"`
	Type            string          `json:"type" db:"type"`
	SellingPrice    decimal.Decimal `json:"sellingPrice" db:"selling_price"`
	CostPrice       decimal.Decimal `json:"costPrice" db:"cost_price"`
	DurationMinutes int             `json:"durationMinutes" db:"duration_minutes"`
	Timestamps
}
