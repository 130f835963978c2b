package domain

import "github.com/shopspring/decimal"

// Product is a stocked item sold alongside bookings and restocked via
// purchases. CostPrice tracks the latest purchase price.
type Product struct {
	ProductID     string          `json:"productID" db:"product_id"`
	Name          string          `json:"name" db:"name"`
	CostPrice     decimal.Decimal `json:"costPrice" db:"cost_price"`
	SellingPrice  decimal.Decimal `json:"sellingPrice" db:"selling_price"`
	StockQuantity int             `json:"stockQuantity" db:"stock_quantity"`
	SupplierID    *string         `json:"supplierID,omitempty" db:"supplier_id"`
	Timestamps
}
