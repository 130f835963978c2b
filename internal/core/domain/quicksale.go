package domain

import "github.com/shopspring/decimal"

// QuickSaleItemType tells whether a quick sale line points at a catalog
// service or a stocked product.
type QuickSaleItemType string

const (
	QuickSaleItemService QuickSaleItemType = "service"
	QuickSaleItemProduct QuickSaleItemType = "product"
)

// QuickSaleItem is one line of a walk-in sale. Exactly one of ServiceID
// and ProductID is set, matching Type.
type QuickSaleItem struct {
	Type      QuickSaleItemType `json:"type" db:"item_type"`
	ServiceID *string           `json:"serviceID,omitempty" db:"service_id"`
	ProductID *string           `json:"productID,omitempty" db:"product_id"`
	Quantity  int               `json:"quantity" db:"quantity"`
}

// QuickSale is a walk-in counter sale: priced and settled on the spot,
// never turned into a booking. Product lines consume stock when the sale
// is recorded. CustomerID is nil for anonymous cash customers; quick
// sales never feed the ledger or the statement builder either way.
type QuickSale struct {
	QuickSaleID       string          `json:"quickSaleID" db:"quick_sale_id"`
	CustomerID        *string         `json:"customerID,omitempty" db:"customer_id"`
	Items             []QuickSaleItem `json:"items" db:"-"`
	PaymentType       PaymentType     `json:"paymentType" db:"payment_type"`
	TotalSellingPrice decimal.Decimal `json:"totalSellingPrice" db:"total_selling_price"`
	TotalCost         decimal.Decimal `json:"totalCost" db:"total_cost"`
	Profit            decimal.Decimal `json:"profit" db:"profit"`
	Timestamps
}
