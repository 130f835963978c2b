package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
	"github.com/ahmadsal1998/omari-studio/internal/events"
)

// ledgerService implements the voucher write path. Journal and receipt
// vouchers are the only postings ever written directly; each write
// pairs the posting insert with an atomic balance increment in one
// repository transaction.
type ledgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	customerRepo portsrepo.CustomerReader
	publisher    events.Publisher
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, customerRepo portsrepo.CustomerReader, publisher events.Publisher) portssvc.LedgerSvcFacade {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostJournal records a journal voucher: amount is stored positive and
// the customer's cached balance is incremented by the same figure.
func (s *ledgerService) PostJournal(ctx context.Context, req dto.CreateJournalVoucherRequest) (*dto.PostingResponse, error) {
	return s.postVoucher(ctx, voucherInput{
		customerID:      req.CustomerID,
		postingType:     domain.PostingJournal,
		date:            req.Date,
		amount:          req.Amount,
		notes:           req.Notes,
		referenceNumber: req.ReferenceNumber,
	})
}

// PostReceipt records a receipt voucher: amount is stored negated and
// the customer's cached balance is decremented.
func (s *ledgerService) PostReceipt(ctx context.Context, req dto.CreateReceiptVoucherRequest) (*dto.PostingResponse, error) {
	return s.postVoucher(ctx, voucherInput{
		customerID:      req.CustomerID,
		postingType:     domain.PostingReceipt,
		date:            req.Date,
		amount:          req.Amount,
		notes:           req.Notes,
		referenceNumber: req.ReferenceNumber,
		paymentMethod:   req.PaymentMethod,
	})
}

type voucherInput struct {
	customerID      string
	postingType     domain.PostingType
	date            *time.Time
	amount          decimal.Decimal
	notes           string
	referenceNumber string
	paymentMethod   string
}

func (s *ledgerService) postVoucher(ctx context.Context, in voucherInput) (*dto.PostingResponse, error) {
	if in.amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: voucher amount must be positive, got %s", apperrors.ErrValidation, in.amount.String())
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, in.customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", in.customerID, err)
	}

	// The voucher path is customer-only: supplier balances move through
	// purchases exclusively.
	signedAmount := in.amount
	if in.postingType == domain.PostingReceipt {
		signedAmount = in.amount.Neg()
	}

	now := time.Now().UTC()
	date := now
	if in.date != nil {
		date = in.date.UTC()
	}

	posting := domain.Posting{
		PostingID:       uuid.NewString(),
		EntityKind:      domain.EntityCustomer,
		EntityID:        customer.CustomerID,
		Type:            in.postingType,
		Date:            date,
		Amount:          signedAmount,
		Notes:           in.notes,
		ReferenceNumber: in.referenceNumber,
		PaymentMethod:   in.paymentMethod,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.ledgerRepo.SaveVoucher(ctx, posting, signedAmount); err != nil {
		s.LogError(ctx, err, "Failed to save voucher",
			slog.String("customer_id", customer.CustomerID),
			slog.String("type", string(in.postingType)))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	s.LogInfo(ctx, "Voucher posted",
		slog.String("posting_id", posting.PostingID),
		slog.String("customer_id", customer.CustomerID),
		slog.String("type", string(in.postingType)),
		slog.String("amount", signedAmount.String()))

	// Best-effort: the posting is committed, a publish failure must not
	// undo it.
	event := events.PostingCreated{
		PostingID:  posting.PostingID,
		EntityKind: posting.EntityKind,
		EntityID:   posting.EntityID,
		Type:       posting.Type,
		Amount:     posting.Amount,
		OccurredAt: now,
	}
	if err := s.publisher.Publish(ctx, events.TopicPostingCreated, event); err != nil {
		s.LogWarn(ctx, "Failed to publish posting event",
			slog.String("posting_id", posting.PostingID),
			slog.String("error", err.Error()))
	}

	resp := dto.ToPostingResponse(&posting)
	resp.Entity = &dto.EntityRef{
		EntityID:    customer.CustomerID,
		EntityKind:  domain.EntityCustomer,
		Name:        customer.FullName,
		PhoneNumber: customer.PhoneNumber,
		Balance:     customer.Balance.Add(signedAmount),
	}
	return &resp, nil
}

// ListPostings returns a page of stored postings, newest first.
func (s *ledgerService) ListPostings(ctx context.Context, params dto.ListPostingsParams) (*dto.ListPostingsResponse, error) {
	typeFilter := params.Type
	if typeFilter == "all" {
		typeFilter = ""
	}

	filter := portsrepo.ListPostingsFilter{
		EntityKind: params.EntityKind,
		EntityID:   params.EntityID,
		Type:       typeFilter,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}

	postings, total, err := s.ledgerRepo.ListPostings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	return &dto.ListPostingsResponse{
		Entries:    dto.ToPostingResponses(postings),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}
