package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/core/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
)

type BookingServiceTestSuite struct {
	suite.Suite
	bookingRepo  *MockBookingRepository
	customerRepo *MockCustomerRepository
	serviceRepo  *MockServiceRepository
	productRepo  *MockProductRepository
	service      portssvc.BookingSvcFacade
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.bookingRepo = new(MockBookingRepository)
	s.customerRepo = new(MockCustomerRepository)
	s.serviceRepo = new(MockServiceRepository)
	s.productRepo = new(MockProductRepository)
	s.service = services.NewBookingService(s.bookingRepo, s.customerRepo, s.serviceRepo, s.productRepo)
}

func futureDate() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 7)
}

func (s *BookingServiceTestSuite) expectCustomerExists() {
	s.customerRepo.On("FindCustomerByID", ctx, "cust-1").Return(&domain.Customer{
		CustomerID: "cust-1",
		FullName:   "Layla Hassan",
	}, nil).Once()
}

func (s *BookingServiceTestSuite) expectCatalog() {
	s.serviceRepo.On("FindServicesByIDs", ctx, []string{"svc-1"}).Return(map[string]domain.Service{
		"svc-1": {
			ServiceID:    "svc-1",
			Name:         "Wedding session",
			SellingPrice: decimal.RequireFromString("400"),
			CostPrice:    decimal.RequireFromString("150"),
		},
	}, nil).Once()
	s.productRepo.On("FindProductsByIDs", ctx, []string{"prod-1"}).Return(map[string]domain.Product{
		"prod-1": {
			ProductID:    "prod-1",
			Name:         "Photo album",
			SellingPrice: decimal.RequireFromString("50"),
			CostPrice:    decimal.RequireFromString("20"),
		},
	}, nil).Once()
}

func (s *BookingServiceTestSuite) createRequest(discount string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CustomerID:   "cust-1",
		ShootingDate: futureDate(),
		ShootingTime: "14:00",
		Services:     []dto.BookingServiceLineRequest{{ServiceID: "svc-1", Quantity: 1}},
		Products:     []dto.BookingProductLineRequest{{ProductID: "prod-1", Quantity: 2}},
		Discount:     decimal.RequireFromString(discount),
	}
}

func (s *BookingServiceTestSuite) TestCreateBooking_PricesFromCatalog() {
	s.expectCustomerExists()
	s.expectCatalog()
	s.bookingRepo.On("SlotTaken", ctx, mock.Anything, "14:00", "").Return(false, nil).Once()
	s.bookingRepo.On("SaveBooking", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		// 400 + 2*50 - 30 discount = 470 selling; 150 + 2*20 = 190 cost.
		return b.TotalSellingPrice.Equal(decimal.RequireFromString("470")) &&
			b.TotalCost.Equal(decimal.RequireFromString("190")) &&
			b.Profit.Equal(decimal.RequireFromString("280")) &&
			b.Status == domain.BookingPending &&
			b.Source == domain.BookingSourceAdmin
	})).Return(nil).Once()

	resp, err := s.service.CreateBooking(ctx, s.createRequest("30"))

	s.Require().NoError(err)
	s.Equal("470", resp.TotalSellingPrice.String())
	s.Equal("280", resp.Profit.String())
	s.bookingRepo.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestCreateBooking_DiscountClampsAtZero() {
	s.expectCustomerExists()
	s.expectCatalog()
	s.bookingRepo.On("SlotTaken", ctx, mock.Anything, "14:00", "").Return(false, nil).Once()
	s.bookingRepo.On("SaveBooking", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.TotalSellingPrice.IsZero() &&
			b.Profit.Equal(decimal.RequireFromString("-190"))
	})).Return(nil).Once()

	resp, err := s.service.CreateBooking(ctx, s.createRequest("9999"))

	s.Require().NoError(err)
	s.True(resp.TotalSellingPrice.IsZero())
}

func (s *BookingServiceTestSuite) TestCreateBooking_RejectsPastDate() {
	s.expectCustomerExists()

	req := s.createRequest("0")
	req.ShootingDate = time.Now().UTC().AddDate(0, 0, -2)
	_, err := s.service.CreateBooking(ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.bookingRepo.AssertNotCalled(s.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCreateBooking_RejectsTakenSlot() {
	s.expectCustomerExists()
	s.bookingRepo.On("SlotTaken", ctx, mock.Anything, "14:00", "").Return(true, nil).Once()

	_, err := s.service.CreateBooking(ctx, s.createRequest("0"))

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.bookingRepo.AssertNotCalled(s.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCreateBooking_SlotCheckedAtDayGranularity() {
	s.expectCustomerExists()
	s.expectCatalog()
	wantDay := futureDate()
	s.bookingRepo.On("SlotTaken", ctx, mock.MatchedBy(func(day time.Time) bool {
		// The slot check always receives the midnight-truncated day,
		// even when the request date carries a time of day.
		return day.Equal(wantDay)
	}), "14:00", "").Return(false, nil).Once()
	s.bookingRepo.On("SaveBooking", ctx, mock.Anything).Return(nil).Once()

	req := s.createRequest("0")
	req.ShootingDate = wantDay.Add(15*time.Hour + 30*time.Minute)
	_, err := s.service.CreateBooking(ctx, req)

	s.Require().NoError(err)
	s.bookingRepo.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestCreateBooking_TimeOfDayDoesNotDodgeSlotCheck() {
	s.expectCustomerExists()
	s.bookingRepo.On("SlotTaken", ctx, mock.MatchedBy(func(day time.Time) bool {
		return day.Equal(futureDate())
	}), "14:00", "").Return(true, nil).Once()

	req := s.createRequest("0")
	req.ShootingDate = futureDate().Add(9*time.Hour + 45*time.Minute)
	_, err := s.service.CreateBooking(ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.bookingRepo.AssertNotCalled(s.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCreateBooking_UnknownServiceLine() {
	s.expectCustomerExists()
	s.bookingRepo.On("SlotTaken", ctx, mock.Anything, "14:00", "").Return(false, nil).Once()
	s.serviceRepo.On("FindServicesByIDs", ctx, []string{"svc-1"}).Return(map[string]domain.Service{}, nil).Once()

	_, err := s.service.CreateBooking(ctx, s.createRequest("0"))

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BookingServiceTestSuite) TestUpdateBooking_RepricesWhenLinesChange() {
	existingDate := futureDate()
	existing := &domain.Booking{
		BookingID:    "b1",
		CustomerID:   "cust-1",
		ShootingDate: &existingDate,
		ShootingTime: "14:00",
		Services:     []domain.BookingServiceLine{{ServiceID: "svc-1", Quantity: 1}},
		Status:       domain.BookingPending,
		Discount:     decimal.Zero,
	}
	s.bookingRepo.On("FindBookingByID", ctx, "b1").Return(existing, nil).Once()
	s.bookingRepo.On("SlotTaken", ctx, mock.Anything, "14:00", "b1").Return(false, nil).Once()
	s.serviceRepo.On("FindServicesByIDs", ctx, []string{"svc-1"}).Return(map[string]domain.Service{
		"svc-1": {
			ServiceID:    "svc-1",
			SellingPrice: decimal.RequireFromString("400"),
			CostPrice:    decimal.RequireFromString("150"),
		},
	}, nil).Once()
	s.bookingRepo.On("UpdateBooking", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		// 2 * 400 = 800 selling, 2 * 150 = 300 cost.
		return b.TotalSellingPrice.Equal(decimal.RequireFromString("800")) &&
			b.TotalCost.Equal(decimal.RequireFromString("300"))
	})).Return(nil).Once()

	resp, err := s.service.UpdateBooking(ctx, "b1", dto.UpdateBookingRequest{
		Services: []dto.BookingServiceLineRequest{{ServiceID: "svc-1", Quantity: 2}},
	})

	s.Require().NoError(err)
	s.Equal("800", resp.TotalSellingPrice.String())
	s.bookingRepo.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestUpdateBooking_StatusOnlySkipsRepricing() {
	existingDate := futureDate()
	existing := &domain.Booking{
		BookingID:         "b1",
		CustomerID:        "cust-1",
		ShootingDate:      &existingDate,
		ShootingTime:      "14:00",
		Status:            domain.BookingPending,
		TotalSellingPrice: decimal.RequireFromString("470"),
	}
	cancelled := domain.BookingCancelled
	s.bookingRepo.On("FindBookingByID", ctx, "b1").Return(existing, nil).Once()
	s.bookingRepo.On("SlotTaken", ctx, mock.Anything, "14:00", "b1").Return(false, nil).Once()
	s.bookingRepo.On("UpdateBooking", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.Status == domain.BookingCancelled &&
			b.TotalSellingPrice.Equal(decimal.RequireFromString("470"))
	})).Return(nil).Once()

	resp, err := s.service.UpdateBooking(ctx, "b1", dto.UpdateBookingRequest{Status: &cancelled})

	s.Require().NoError(err)
	s.Equal(domain.BookingCancelled, resp.Status)
	s.serviceRepo.AssertNotCalled(s.T(), "FindServicesByIDs", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestDeleteBooking_UnknownID() {
	s.bookingRepo.On("FindBookingByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeleteBooking(ctx, "ghost")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.bookingRepo.AssertNotCalled(s.T(), "DeleteBooking", mock.Anything, mock.Anything)
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
