package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

// statementService reconstructs a single chronological statement from
// three independently mutated sources: stored ledger postings, bookings
// (virtual invoices) and credit purchases (virtual supplier debt). It
// is a pure read; the cached balance field is never consulted for the
// final figure, only for the supplier reconciliation gap.
type statementService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerReader
	customerRepo portsrepo.CustomerReader
	supplierRepo portsrepo.SupplierReader
	bookingRepo  portsrepo.BookingReader
	purchaseRepo portsrepo.PurchaseReader
}

// NewStatementService creates a new statement service.
func NewStatementService(
	ledgerRepo portsrepo.LedgerReader,
	customerRepo portsrepo.CustomerReader,
	supplierRepo portsrepo.SupplierReader,
	bookingRepo portsrepo.BookingReader,
	purchaseRepo portsrepo.PurchaseReader,
) portssvc.StatementSvcFacade {
	return &statementService{
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		bookingRepo:  bookingRepo,
		purchaseRepo: purchaseRepo,
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// GetStatement merges ledger postings with source-adapter rows for the
// entity, applies the optional date window and type filter, and walks a
// running balance over the surviving rows.
//
// The date window never loses money: rows dated strictly before `from`
// are folded into the opening balance instead of being emitted, and the
// opening balance is zero when no `from` is given because every row is
// already present. `to` is inclusive.
func (s *statementService) GetStatement(ctx context.Context, kind domain.EntityKind, entityID string, from, to *time.Time, typeFilter domain.PostingType) (*dto.StatementResponse, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, kind)
	}
	if entityID == "" {
		return nil, fmt.Errorf("%w: entityID is required", apperrors.ErrValidation)
	}
	if typeFilter == "all" {
		typeFilter = ""
	}

	// Which row families survive the type filter. The reconciliation
	// row counts as opening_balance and follows the same rule.
	includePostingType := func(t domain.PostingType) bool {
		return typeFilter == "" || typeFilter == t
	}
	includeInvoices := kind == domain.EntityCustomer && includePostingType(domain.PostingInvoice)
	includePurchases := kind == domain.EntitySupplier && includePostingType(domain.PostingPurchase)
	includeOpening := includePostingType(domain.PostingOpeningBalance)

	// Postings are fetched unfiltered: the supplier reconciliation gap
	// is computed over the whole history regardless of the view filter.
	postings, err := s.ledgerRepo.FindPostingsByEntity(ctx, kind, entityID, "", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load postings for %s %s: %w", kind, entityID, err)
	}

	rows := make([]domain.StatementRow, 0, len(postings))
	for _, p := range postings {
		if !includePostingType(p.Type) {
			continue
		}
		row := domain.NewStatementRow(p.Date, p.CreatedAt.UnixMilli(), p.Type, p.Amount)
		row.ReferenceNumber = p.ReferenceNumber
		row.PostingID = p.PostingID
		if p.RelatedID != nil {
			row.RelatedID = *p.RelatedID
		}
		rows = append(rows, row)
	}

	entity, err := s.resolveEntity(ctx, kind, entityID)
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.EntityCustomer:
		if includeInvoices {
			bookings, err := s.bookingRepo.FindBookingsByCustomer(ctx, entityID)
			if err != nil {
				return nil, fmt.Errorf("failed to load bookings for customer %s: %w", entityID, err)
			}
			for _, b := range bookings {
				row := domain.NewStatementRow(b.EffectiveDate(), b.CreatedAt.UnixMilli(), domain.PostingInvoice, b.TotalSellingPrice)
				row.RelatedID = b.BookingID
				rows = append(rows, row)
			}
		}

	case domain.EntitySupplier:
		var purchases []domain.Purchase
		if includePurchases || includeOpening {
			purchases, err = s.purchaseRepo.FindCreditPurchasesBySupplier(ctx, entityID)
			if err != nil {
				return nil, fmt.Errorf("failed to load purchases for supplier %s: %w", entityID, err)
			}
		}
		if includePurchases {
			for _, p := range purchases {
				row := domain.NewStatementRow(p.CreatedAt, p.CreatedAt.UnixMilli(), domain.PostingPurchase, p.TotalAmount)
				row.RelatedID = p.PurchaseID
				rows = append(rows, row)
			}
		}

		// A stored balance the posting and purchase history cannot
		// explain is a legacy opening balance. Surface it exactly once:
		// as an epoch-dated row when the whole history is shown, folded
		// into the opening sum when a window starts later.
		if includeOpening && entity != nil {
			adjustment := entity.Balance
			for _, p := range postings {
				adjustment = adjustment.Sub(p.Amount)
			}
			for _, p := range purchases {
				adjustment = adjustment.Sub(p.TotalAmount)
			}
			if !adjustment.IsZero() {
				row := domain.NewStatementRow(time.Unix(0, 0).UTC(), 0, domain.PostingOpeningBalance, adjustment)
				rows = append(rows, row)
				s.LogDebug(ctx, "Supplier reconciliation adjustment injected",
					slog.String("supplier_id", entityID),
					slog.String("adjustment", adjustment.String()))
			}
		}
	}

	// Business date first, insertion order second: same-day rows keep
	// their entry order.
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].SortKey < rows[j].SortKey
	})

	openingBalance := decimal.Zero
	entries := make([]domain.StatementRow, 0, len(rows))
	for _, row := range rows {
		if from != nil && row.Date.Before(*from) {
			openingBalance = openingBalance.Add(row.Amount)
			continue
		}
		if to != nil && row.Date.After(*to) {
			continue
		}
		entries = append(entries, row)
	}

	running := openingBalance
	for i := range entries {
		running = running.Add(entries[i].Amount)
		entries[i].RunningBalance = running
	}

	return &dto.StatementResponse{
		Entity: entity,
		Statement: domain.Statement{
			OpeningBalance: openingBalance,
			Entries:        entries,
			FinalBalance:   running,
		},
	}, nil
}

// resolveEntity fetches the entity display fields. A missing entity is
// not an error: postings for a deleted entity still matter for audit,
// so the statement is returned with a null entity instead.
func (s *statementService) resolveEntity(ctx context.Context, kind domain.EntityKind, entityID string) (*dto.EntityRef, error) {
	switch kind {
	case domain.EntityCustomer:
		customer, err := s.customerRepo.FindCustomerByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to resolve customer %s: %w", entityID, err)
		}
		return &dto.EntityRef{
			EntityID:    customer.CustomerID,
			EntityKind:  kind,
			Name:        customer.FullName,
			PhoneNumber: customer.PhoneNumber,
			Balance:     customer.Balance,
		}, nil
	default:
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to resolve supplier %s: %w", entityID, err)
		}
		return &dto.EntityRef{
			EntityID:    supplier.SupplierID,
			EntityKind:  kind,
			Name:        supplier.Name,
			PhoneNumber: supplier.PhoneNumber,
			Balance:     supplier.Balance,
		}, nil
	}
}
