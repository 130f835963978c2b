package domain

import "github.com/shopspring/decimal"

// Supplier is a vendor the studio buys stock from. Balance is positive
// when the studio owes the supplier. Suppliers have no direct voucher
// path; their balance moves through credit purchases only, so a stored
// balance that the purchase history cannot explain is surfaced by the
// statement builder as a reconciliation (opening balance) row.
type Supplier struct {
	SupplierID  string          `json:"supplierID" db:"supplier_id"`
	Name        string          `json:"name" db:"name"`
	PhoneNumber string          `json:"phoneNumber" db:"phone_number"`
	Balance     decimal.Decimal `json:"balance" db:"balance"`
	Timestamps
}
