package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingType classifies a ledger posting. Only journal and receipt are
// written through the voucher path; invoice and purchase rows are
// synthesized from bookings and purchases at statement time, and
// opening_balance is synthesized from the supplier reconciliation gap.
type PostingType string

const (
	PostingOpeningBalance PostingType = "opening_balance"
	PostingJournal        PostingType = "journal"
	PostingReceipt        PostingType = "receipt"
	PostingInvoice        PostingType = "invoice"
	PostingReturn         PostingType = "return"
	PostingPurchase       PostingType = "purchase"
	PostingPayment        PostingType = "payment"
)

// IsValid reports whether t is a known posting type.
func (t PostingType) IsValid() bool {
	switch t {
	case PostingOpeningBalance, PostingJournal, PostingReceipt,
		PostingInvoice, PostingReturn, PostingPurchase, PostingPayment:
		return true
	}
	return false
}

// Description returns the display label for a posting type.
func (t PostingType) Description() string {
	switch t {
	case PostingOpeningBalance:
		return "Opening balance"
	case PostingJournal:
		return "Journal voucher"
	case PostingReceipt:
		return "Receipt voucher"
	case PostingInvoice:
		return "Invoice (booking)"
	case PostingReturn:
		return "Return"
	case PostingPurchase:
		return "Credit purchase"
	case PostingPayment:
		return "Payment"
	default:
		return string(t)
	}
}

// Posting is one signed monetary record against an entity. Amount is
// positive when it increases the entity's debt and negative when it
// decreases it. Date is the user-facing business date; CreatedAt is the
// insertion time and is used only to break same-date ties. Postings are
// immutable once written.
type Posting struct {
	PostingID       string          `json:"postingID" db:"posting_id"`
	EntityKind      EntityKind      `json:"entityKind" db:"entity_kind"`
	EntityID        string          `json:"entityID" db:"entity_id"`
	Type            PostingType     `json:"type" db:"type"`
	Date            time.Time       `json:"date" db:"date"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Notes           string          `json:"notes" db:"notes"`
	ReferenceNumber string          `json:"referenceNumber" db:"reference_number"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	RelatedID       *string         `json:"relatedID,omitempty" db:"related_id"`
	RelatedModel    string          `json:"relatedModel,omitempty" db:"related_model"`
	Timestamps
}
