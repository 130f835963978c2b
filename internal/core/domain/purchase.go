package domain

import "github.com/shopspring/decimal"

// PaymentType distinguishes settled purchases from ones bought on credit.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
)

// PurchaseItem is one product line on a purchase.
type PurchaseItem struct {
	ProductID     string          `json:"productID" db:"product_id"`
	Quantity      int             `json:"quantity" db:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" db:"purchase_price"`
}

// Purchase is a stock intake from a supplier. Credit purchases act as
// virtual 'purchase' postings of TotalAmount against the supplier, dated
// at creation time; cash purchases never touch the supplier balance and
// are invisible to the statement.
type Purchase struct {
	PurchaseID  string          `json:"purchaseID" db:"purchase_id"`
	SupplierID  string          `json:"supplierID" db:"supplier_id"`
	Items       []PurchaseItem  `json:"items" db:"-"`
	PaymentType PaymentType     `json:"paymentType" db:"payment_type"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Timestamps
}
