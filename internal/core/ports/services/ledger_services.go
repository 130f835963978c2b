package services

import (
	"context"
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

// LedgerSvcFacade is the voucher write path plus posting listing. Both
// voucher operations accept customers only: supplier balances move
// exclusively through purchases in this system.
type LedgerSvcFacade interface {
	// PostJournal records debt against a customer (amount > 0) and
	// increments the cached balance in the same unit of work.
	PostJournal(ctx context.Context, req dto.CreateJournalVoucherRequest) (*dto.PostingResponse, error)

	// PostReceipt records a payment from a customer (amount > 0, stored
	// negated) and decrements the cached balance in the same unit of
	// work.
	PostReceipt(ctx context.Context, req dto.CreateReceiptVoucherRequest) (*dto.PostingResponse, error)

	// ListPostings returns a page of stored postings, newest first.
	ListPostings(ctx context.Context, params dto.ListPostingsParams) (*dto.ListPostingsResponse, error)
}

// StatementSvcFacade reconstructs account statements. A pure read.
type StatementSvcFacade interface {
	GetStatement(ctx context.Context, kind domain.EntityKind, entityID string, from, to *time.Time, typeFilter domain.PostingType) (*dto.StatementResponse, error)
}
