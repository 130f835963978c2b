package repositories

import (
	"context"
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListPostingsFilter carries the optional posting list filters. All
// fields may be zero to list everything.
type ListPostingsFilter struct {
	EntityKind domain.EntityKind
	EntityID   string
	Type       domain.PostingType
	Limit      int
	Offset     int
}

// LedgerReader defines read operations over stored postings.
type LedgerReader interface {
	// FindPostingsByEntity returns every posting for the entity ordered
	// by (date, created_at) ascending; the type and date range filters
	// are optional.
	FindPostingsByEntity(ctx context.Context, kind domain.EntityKind, entityID string, typeFilter domain.PostingType, from, to *time.Time) ([]domain.Posting, error)

	// ListPostings returns a page of postings (newest first) with the
	// total count for the filter.
	ListPostings(ctx context.Context, filter ListPostingsFilter) ([]domain.Posting, int64, error)
}

// LedgerWriter is the only write path into the ledger store. Postings
// are append-only: no update or delete is exposed.
type LedgerWriter interface {
	// SaveVoucher inserts the posting and applies balanceDelta to the
	// owning entity's balance as an atomic increment, both inside a
	// single database transaction. Either both writes land or neither
	// does.
	SaveVoucher(ctx context.Context, posting domain.Posting, balanceDelta decimal.Decimal) error
}

// LedgerRepositoryFacade combines the ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
