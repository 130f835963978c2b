package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/core/services"
)

type StatementServiceTestSuite struct {
	suite.Suite
	ledgerRepo   *MockLedgerRepository
	customerRepo *MockCustomerRepository
	supplierRepo *MockSupplierRepository
	bookingRepo  *MockBookingRepository
	purchaseRepo *MockPurchaseRepository
	service      portssvc.StatementSvcFacade
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.ledgerRepo = new(MockLedgerRepository)
	s.customerRepo = new(MockCustomerRepository)
	s.supplierRepo = new(MockSupplierRepository)
	s.bookingRepo = new(MockBookingRepository)
	s.purchaseRepo = new(MockPurchaseRepository)
	s.service = services.NewStatementService(s.ledgerRepo, s.customerRepo, s.supplierRepo, s.bookingRepo, s.purchaseRepo)
}

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 0, 0, 0, 0, time.UTC)
}

func posting(id string, date time.Time, createdAt time.Time, typ domain.PostingType, amount string) domain.Posting {
	return domain.Posting{
		PostingID:  id,
		EntityKind: domain.EntityCustomer,
		EntityID:   "cust-1",
		Type:       typ,
		Date:       date,
		Amount:     decimal.RequireFromString(amount),
		Timestamps: domain.Timestamps{CreatedAt: createdAt, UpdatedAt: createdAt},
	}
}

func booking(id string, shootingDate time.Time, createdAt time.Time, total string) domain.Booking {
	sd := shootingDate
	return domain.Booking{
		BookingID:         id,
		CustomerID:        "cust-1",
		ShootingDate:      &sd,
		Status:            domain.BookingCompleted,
		TotalSellingPrice: decimal.RequireFromString(total),
		Timestamps:        domain.Timestamps{CreatedAt: createdAt, UpdatedAt: createdAt},
	}
}

func (s *StatementServiceTestSuite) expectCustomer(balance string) {
	s.customerRepo.On("FindCustomerByID", ctx, "cust-1").Return(&domain.Customer{
		CustomerID:  "cust-1",
		FullName:    "Layla Hassan",
		PhoneNumber: "0791234567",
		Balance:     decimal.RequireFromString(balance),
	}, nil)
}

var ctx = context.Background()

// --- Customer statements ---

func (s *StatementServiceTestSuite) TestCustomerStatement_MergesPostingsAndInvoices() {
	postings := []domain.Posting{
		posting("p1", day(1), day(1).Add(9*time.Hour), domain.PostingJournal, "200"),
		posting("p2", day(3), day(3).Add(9*time.Hour), domain.PostingReceipt, "-150"),
	}
	bookings := []domain.Booking{
		booking("b1", day(2), day(1).Add(10*time.Hour), "500"),
	}

	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return(bookings, nil)
	s.expectCustomer("550")

	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, "")

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	s.Require().Len(resp.Entries, 3)
	s.True(resp.OpeningBalance.IsZero())

	s.Equal(domain.PostingJournal, resp.Entries[0].Type)
	s.Equal(domain.PostingInvoice, resp.Entries[1].Type)
	s.Equal(domain.PostingReceipt, resp.Entries[2].Type)

	s.Equal("200", resp.Entries[0].RunningBalance.String())
	s.Equal("700", resp.Entries[1].RunningBalance.String())
	s.Equal("550", resp.Entries[2].RunningBalance.String())
	s.Equal("550", resp.FinalBalance.String())

	s.Require().NotNil(resp.Entity)
	s.Equal("Layla Hassan", resp.Entity.Name)
}

func (s *StatementServiceTestSuite) TestCustomerStatement_DebitCreditColumns() {
	postings := []domain.Posting{
		posting("p1", day(1), day(1), domain.PostingJournal, "200"),
		posting("p2", day(2), day(2), domain.PostingReceipt, "-150"),
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return([]domain.Booking{}, nil)
	s.expectCustomer("50")

	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, "")

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 2)
	s.Equal("200", resp.Entries[0].Debit.String())
	s.True(resp.Entries[0].Credit.IsZero())
	s.Equal("150", resp.Entries[1].Credit.String())
	s.True(resp.Entries[1].Debit.IsZero())
	s.Equal("50", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestCustomerStatement_SameDayKeepsInsertionOrder() {
	morning := day(5).Add(8 * time.Hour)
	noon := day(5).Add(12 * time.Hour)
	postings := []domain.Posting{
		posting("late", day(5), noon, domain.PostingJournal, "30"),
		posting("early", day(5), morning, domain.PostingJournal, "10"),
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return([]domain.Booking{}, nil)
	s.expectCustomer("40")

	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, "")

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 2)
	s.Equal("early", resp.Entries[0].PostingID)
	s.Equal("late", resp.Entries[1].PostingID)
}

func (s *StatementServiceTestSuite) TestCustomerStatement_WindowFoldsEarlierRowsIntoOpening() {
	postings := []domain.Posting{
		posting("p1", day(1), day(1), domain.PostingJournal, "200"),
		posting("p2", day(3), day(3), domain.PostingReceipt, "-150"),
	}
	bookings := []domain.Booking{
		booking("b1", day(2), day(2), "500"),
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return(bookings, nil)
	s.expectCustomer("550")

	from := day(2)
	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", &from, nil, "")

	s.Require().NoError(err)
	s.Equal("200", resp.OpeningBalance.String())
	s.Require().Len(resp.Entries, 2)
	s.Equal(domain.PostingInvoice, resp.Entries[0].Type)
	s.Equal("700", resp.Entries[0].RunningBalance.String())
	s.Equal("550", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestCustomerStatement_ToDateIsInclusive() {
	postings := []domain.Posting{
		posting("p1", day(1), day(1), domain.PostingJournal, "200"),
		posting("p2", day(3), day(3), domain.PostingReceipt, "-150"),
	}
	bookings := []domain.Booking{
		booking("b1", day(2), day(2), "500"),
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return(bookings, nil)
	s.expectCustomer("550")

	to := day(2)
	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, &to, "")

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 2)
	s.Equal(domain.PostingInvoice, resp.Entries[1].Type)
	s.Equal("700", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestCustomerStatement_InvoiceFilterDropsStoredPostings() {
	postings := []domain.Posting{
		posting("p1", day(1), day(1), domain.PostingJournal, "200"),
	}
	bookings := []domain.Booking{
		booking("b1", day(2), day(2), "500"),
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return(bookings, nil)
	s.expectCustomer("700")

	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, domain.PostingInvoice)

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Equal(domain.PostingInvoice, resp.Entries[0].Type)
	s.Equal("b1", resp.Entries[0].RelatedID)
	s.Equal("500", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestCustomerStatement_LegacyBookingFallsBackToCreationDate() {
	created := day(4).Add(15 * time.Hour)
	legacy := domain.Booking{
		BookingID:         "b-legacy",
		CustomerID:        "cust-1",
		Status:            domain.BookingCompleted,
		TotalSellingPrice: decimal.RequireFromString("120"),
		Timestamps:        domain.Timestamps{CreatedAt: created, UpdatedAt: created},
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Posting{}, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return([]domain.Booking{legacy}, nil)
	s.expectCustomer("120")

	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, "")

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.True(resp.Entries[0].Date.Equal(created))
}

func (s *StatementServiceTestSuite) TestCustomerStatement_LargeHistorySumsExactly() {
	bookings := make([]domain.Booking, 0, 500)
	expected := decimal.Zero
	for i := 0; i < 500; i++ {
		amount := decimal.NewFromInt(int64(i%97 + 1))
		b := booking(fmt.Sprintf("b%d", i), day(1+i%28), day(1+i%28).Add(time.Duration(i)*time.Minute), amount.String())
		bookings = append(bookings, b)
		expected = expected.Add(amount)
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Posting{}, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return(bookings, nil)
	s.expectCustomer(expected.String())

	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, "")

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 500)
	s.Equal(expected.String(), resp.FinalBalance.String())
	for i := 1; i < len(resp.Entries); i++ {
		prev, cur := resp.Entries[i-1], resp.Entries[i]
		s.False(cur.Date.Before(prev.Date), "entries must be date-ordered")
		if cur.Date.Equal(prev.Date) {
			s.GreaterOrEqual(cur.SortKey, prev.SortKey)
		}
	}
}

func (s *StatementServiceTestSuite) TestStatement_MissingEntityStillReturnsRows() {
	postings := []domain.Posting{
		posting("p1", day(1), day(1), domain.PostingJournal, "200"),
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return([]domain.Booking{}, nil)
	s.customerRepo.On("FindCustomerByID", ctx, "cust-1").Return(nil, apperrors.ErrNotFound)

	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, "")

	s.Require().NoError(err)
	s.Nil(resp.Entity)
	s.Require().Len(resp.Entries, 1)
	s.Equal("200", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestStatement_InvalidKindRejected() {
	resp, err := s.service.GetStatement(ctx, domain.EntityKind("vendor"), "x", nil, nil, "")
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(resp)
}

func (s *StatementServiceTestSuite) TestStatement_MissingEntityIDRejected() {
	resp, err := s.service.GetStatement(ctx, domain.EntityCustomer, "", nil, nil, "")
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(resp)
}

// --- Supplier statements ---

func (s *StatementServiceTestSuite) supplierPosting(id string, date time.Time, typ domain.PostingType, amount string) domain.Posting {
	p := posting(id, date, date, typ, amount)
	p.EntityKind = domain.EntitySupplier
	p.EntityID = "sup-1"
	return p
}

func (s *StatementServiceTestSuite) expectSupplier(balance string) {
	s.supplierRepo.On("FindSupplierByID", ctx, "sup-1").Return(&domain.Supplier{
		SupplierID:  "sup-1",
		Name:        "Studio Supplies Co",
		PhoneNumber: "0788888888",
		Balance:     decimal.RequireFromString(balance),
	}, nil)
}

func (s *StatementServiceTestSuite) TestSupplierStatement_ReconciliationRowExplainsStoredBalance() {
	purchases := []domain.Purchase{
		{
			PurchaseID:  "pur-1",
			SupplierID:  "sup-1",
			PaymentType: domain.PaymentCredit,
			TotalAmount: decimal.RequireFromString("300"),
			Timestamps:  domain.Timestamps{CreatedAt: day(10), UpdatedAt: day(10)},
		},
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntitySupplier, "sup-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Posting{}, nil)
	s.purchaseRepo.On("FindCreditPurchasesBySupplier", ctx, "sup-1").Return(purchases, nil)
	s.expectSupplier("1000")

	resp, err := s.service.GetStatement(ctx, domain.EntitySupplier, "sup-1", nil, nil, "")

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 2)

	// The unexplained 700 surfaces first, dated at the epoch.
	s.Equal(domain.PostingOpeningBalance, resp.Entries[0].Type)
	s.Equal("700", resp.Entries[0].Amount.String())
	s.True(resp.Entries[0].Date.Equal(time.Unix(0, 0).UTC()))

	s.Equal(domain.PostingPurchase, resp.Entries[1].Type)
	s.Equal("1000", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestSupplierStatement_ReconciliationFoldsIntoOpeningWithWindow() {
	purchases := []domain.Purchase{
		{
			PurchaseID:  "pur-1",
			SupplierID:  "sup-1",
			PaymentType: domain.PaymentCredit,
			TotalAmount: decimal.RequireFromString("300"),
			Timestamps:  domain.Timestamps{CreatedAt: day(10), UpdatedAt: day(10)},
		},
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntitySupplier, "sup-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Posting{}, nil)
	s.purchaseRepo.On("FindCreditPurchasesBySupplier", ctx, "sup-1").Return(purchases, nil)
	s.expectSupplier("1000")

	from := day(5)
	resp, err := s.service.GetStatement(ctx, domain.EntitySupplier, "sup-1", &from, nil, "")

	s.Require().NoError(err)
	s.Equal("700", resp.OpeningBalance.String())
	s.Require().Len(resp.Entries, 1)
	s.Equal(domain.PostingPurchase, resp.Entries[0].Type)
	s.Equal("1000", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestSupplierStatement_NoGapNoReconciliationRow() {
	purchases := []domain.Purchase{
		{
			PurchaseID:  "pur-1",
			SupplierID:  "sup-1",
			PaymentType: domain.PaymentCredit,
			TotalAmount: decimal.RequireFromString("300"),
			Timestamps:  domain.Timestamps{CreatedAt: day(10), UpdatedAt: day(10)},
		},
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntitySupplier, "sup-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Posting{}, nil)
	s.purchaseRepo.On("FindCreditPurchasesBySupplier", ctx, "sup-1").Return(purchases, nil)
	s.expectSupplier("300")

	resp, err := s.service.GetStatement(ctx, domain.EntitySupplier, "sup-1", nil, nil, "")

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Equal(domain.PostingPurchase, resp.Entries[0].Type)
	s.Equal("300", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestSupplierStatement_ReconciliationCountsSupplierPostings() {
	postings := []domain.Posting{
		s.supplierPosting("p1", day(8), domain.PostingPayment, "-100"),
	}
	purchases := []domain.Purchase{
		{
			PurchaseID:  "pur-1",
			SupplierID:  "sup-1",
			PaymentType: domain.PaymentCredit,
			TotalAmount: decimal.RequireFromString("300"),
			Timestamps:  domain.Timestamps{CreatedAt: day(10), UpdatedAt: day(10)},
		},
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntitySupplier, "sup-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.purchaseRepo.On("FindCreditPurchasesBySupplier", ctx, "sup-1").Return(purchases, nil)
	s.expectSupplier("200")

	resp, err := s.service.GetStatement(ctx, domain.EntitySupplier, "sup-1", nil, nil, "")

	// 200 stored - (-100 postings) - 300 purchases = 0: history explains
	// the balance, so no reconciliation row appears.
	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 2)
	s.Equal("200", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestSupplierStatement_PurchaseFilterHidesReconciliation() {
	purchases := []domain.Purchase{
		{
			PurchaseID:  "pur-1",
			SupplierID:  "sup-1",
			PaymentType: domain.PaymentCredit,
			TotalAmount: decimal.RequireFromString("300"),
			Timestamps:  domain.Timestamps{CreatedAt: day(10), UpdatedAt: day(10)},
		},
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntitySupplier, "sup-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Posting{}, nil)
	s.purchaseRepo.On("FindCreditPurchasesBySupplier", ctx, "sup-1").Return(purchases, nil)
	s.expectSupplier("1000")

	resp, err := s.service.GetStatement(ctx, domain.EntitySupplier, "sup-1", nil, nil, domain.PostingPurchase)

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Equal(domain.PostingPurchase, resp.Entries[0].Type)
	s.Equal("300", resp.FinalBalance.String())
}

func (s *StatementServiceTestSuite) TestStatement_IsIdempotent() {
	postings := []domain.Posting{
		posting("p1", day(1), day(1), domain.PostingJournal, "200"),
	}
	s.ledgerRepo.On("FindPostingsByEntity", ctx, domain.EntityCustomer, "cust-1", domain.PostingType(""), (*time.Time)(nil), (*time.Time)(nil)).Return(postings, nil)
	s.bookingRepo.On("FindBookingsByCustomer", ctx, "cust-1").Return([]domain.Booking{}, nil)
	s.expectCustomer("200")

	first, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, "")
	s.Require().NoError(err)
	second, err := s.service.GetStatement(ctx, domain.EntityCustomer, "cust-1", nil, nil, "")
	s.Require().NoError(err)

	s.Equal(first.FinalBalance.String(), second.FinalBalance.String())
	s.Equal(len(first.Entries), len(second.Entries))
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
