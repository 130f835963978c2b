package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow is one line of a reconstructed account statement. Rows
// are derived, never persisted: stored postings, virtual invoice and
// purchase rows, and the supplier reconciliation row all collapse into
// this one shape before sorting. SortKey is the insertion-time tie-break
// in unix milliseconds; ordering is always (Date, SortKey) ascending.
type StatementRow struct {
	Date            time.Time       `json:"date"`
	SortKey         int64           `json:"sortKey"`
	Type            PostingType     `json:"type"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Amount          decimal.Decimal `json:"amount"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	PostingID       string          `json:"postingID,omitempty"`
	RelatedID       string          `json:"relatedID,omitempty"`
}

// Statement is the full chronological account statement for one entity.
// FinalBalance is recomputed from the rows and is authoritative; it only
// matches the entity's cached balance field when no filters were applied
// and no write raced the read.
type Statement struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Entries        []StatementRow  `json:"entries"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
}

// NewStatementRow builds an unsorted row from a signed amount, deriving
// the debit/credit split from the sign.
func NewStatementRow(date time.Time, sortKey int64, typ PostingType, amount decimal.Decimal) StatementRow {
	row := StatementRow{
		Date:        date,
		SortKey:     sortKey,
		Type:        typ,
		Description: typ.Description(),
		Amount:      amount,
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
	}
	if amount.IsPositive() {
		row.Debit = amount
	} else if amount.IsNegative() {
		row.Credit = amount.Neg()
	}
	return row
}
