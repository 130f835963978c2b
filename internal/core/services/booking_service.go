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
)

// bookingService provides booking operations. Totals are always priced
// server-side from the catalog and product records; the resulting
// TotalSellingPrice is what the statement builder later reads back as
// the customer's virtual invoice, so clients never supply it.
type bookingService struct {
	BaseService
	bookingRepo  portsrepo.BookingRepositoryFacade
	customerRepo portsrepo.CustomerReader
	serviceRepo  portsrepo.ServiceReader
	productRepo  portsrepo.ProductReader
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingRepo portsrepo.BookingRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	serviceRepo portsrepo.ServiceReader,
	productRepo portsrepo.ProductReader,
) portssvc.BookingSvcFacade {
	return &bookingService{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		productRepo:  productRepo,
	}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// bookingTotals is the priced outcome of a booking's lines.
type bookingTotals struct {
	selling decimal.Decimal
	cost    decimal.Decimal
	profit  decimal.Decimal
}

// priceBooking prices service and product lines from their catalog
// records and applies the discount, clamping the selling total at zero.
func (s *bookingService) priceBooking(ctx context.Context, serviceLines []domain.BookingServiceLine, productLines []domain.BookingProductLine, discount decimal.Decimal) (bookingTotals, error) {
	totals := bookingTotals{selling: decimal.Zero, cost: decimal.Zero}

	serviceIDs := make([]string, 0, len(serviceLines))
	for _, line := range serviceLines {
		serviceIDs = append(serviceIDs, line.ServiceID)
	}
	services, err := s.serviceRepo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return totals, fmt.Errorf("failed to load services: %w", err)
	}
	for _, line := range serviceLines {
		svc, ok := services[line.ServiceID]
		if !ok {
			return totals, fmt.Errorf("%w: service %s", apperrors.ErrNotFound, line.ServiceID)
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		totals.selling = totals.selling.Add(svc.SellingPrice.Mul(qty))
		totals.cost = totals.cost.Add(svc.CostPrice.Mul(qty))
	}

	if len(productLines) > 0 {
		productIDs := make([]string, 0, len(productLines))
		for _, line := range productLines {
			productIDs = append(productIDs, line.ProductID)
		}
		products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
		if err != nil {
			return totals, fmt.Errorf("failed to load products: %w", err)
		}
		for _, line := range productLines {
			product, ok := products[line.ProductID]
			if !ok {
				return totals, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, line.ProductID)
			}
			qty := decimal.NewFromInt(int64(line.Quantity))
			totals.selling = totals.selling.Add(product.SellingPrice.Mul(qty))
			totals.cost = totals.cost.Add(product.CostPrice.Mul(qty))
		}
	}

	totals.selling = totals.selling.Sub(discount)
	if totals.selling.IsNegative() {
		totals.selling = decimal.Zero
	}
	totals.profit = totals.selling.Sub(totals.cost)
	return totals, nil
}

// validateSlot enforces the calendar rules: no past shooting dates and
// one booking per day+time slot.
func (s *bookingService) validateSlot(ctx context.Context, shootingDate time.Time, shootingTime string, excludeBookingID string) error {
	day := shootingDate.UTC().Truncate(24 * time.Hour)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return fmt.Errorf("%w: shooting date cannot be in the past", apperrors.ErrValidation)
	}

	taken, err := s.bookingRepo.SlotTaken(ctx, day, shootingTime, excludeBookingID)
	if err != nil {
		return fmt.Errorf("failed to check slot availability: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: another booking already occupies %s %s", apperrors.ErrDuplicate, day.Format("2006-01-02"), shootingTime)
	}
	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", req.CustomerID, err)
	}

	if err := s.validateSlot(ctx, req.ShootingDate, req.ShootingTime, ""); err != nil {
		return nil, err
	}

	serviceLines := make([]domain.BookingServiceLine, len(req.Services))
	for i, line := range req.Services {
		serviceLines[i] = domain.BookingServiceLine{ServiceID: line.ServiceID, Quantity: line.Quantity}
	}
	productLines := make([]domain.BookingProductLine, len(req.Products))
	for i, line := range req.Products {
		productLines[i] = domain.BookingProductLine{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	totals, err := s.priceBooking(ctx, serviceLines, productLines, req.Discount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	shootingDate := req.ShootingDate.UTC()
	booking := domain.Booking{
		BookingID:         uuid.NewString(),
		CustomerID:        req.CustomerID,
		ShootingDate:      &shootingDate,
		ShootingTime:      req.ShootingTime,
		Services:          serviceLines,
		Products:          productLines,
		Discount:          req.Discount,
		Notes:             req.Notes,
		Status:            domain.BookingPending,
		Source:            domain.BookingSourceAdmin,
		TotalSellingPrice: totals.selling,
		TotalCost:         totals.cost,
		Profit:            totals.profit,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// Stock for product lines is consumed inside the same transaction
	// as the booking insert.
	if err := s.bookingRepo.SaveBooking(ctx, booking); err != nil {
		s.LogError(ctx, err, "Failed to save booking", slog.String("customer_id", req.CustomerID))
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.LogInfo(ctx, "Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("customer_id", booking.CustomerID),
		slog.String("total", totals.selling.String()))

	resp := dto.ToBookingResponse(&booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*dto.BookingResponse, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error) {
	filter := portsrepo.ListBookingsFilter{
		CustomerID: params.CustomerID,
		Status:     params.Status,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}

	bookings, total, err := s.bookingRepo.ListBookings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &dto.ListBookingsResponse{
		Bookings:   dto.ToBookingResponses(bookings),
		Pagination: dto.NewPaginationResponse(params.Page, params.Limit, total),
	}, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if req.ShootingDate != nil {
		d := req.ShootingDate.UTC()
		booking.ShootingDate = &d
	}
	if req.ShootingTime != nil {
		booking.ShootingTime = *req.ShootingTime
	}
	if booking.ShootingDate != nil {
		if err := s.validateSlot(ctx, *booking.ShootingDate, booking.ShootingTime, bookingID); err != nil {
			return nil, err
		}
	}

	reprice := false
	if req.Services != nil {
		booking.Services = make([]domain.BookingServiceLine, len(req.Services))
		for i, line := range req.Services {
			booking.Services[i] = domain.BookingServiceLine{ServiceID: line.ServiceID, Quantity: line.Quantity}
		}
		reprice = true
	}
	if req.Products != nil {
		booking.Products = make([]domain.BookingProductLine, len(req.Products))
		for i, line := range req.Products {
			booking.Products[i] = domain.BookingProductLine{ProductID: line.ProductID, Quantity: line.Quantity}
		}
		reprice = true
	}
	if req.Discount != nil {
		booking.Discount = *req.Discount
		reprice = true
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}

	if reprice {
		totals, err := s.priceBooking(ctx, booking.Services, booking.Products, booking.Discount)
		if err != nil {
			return nil, err
		}
		booking.TotalSellingPrice = totals.selling
		booking.TotalCost = totals.cost
		booking.Profit = totals.profit
	}
	booking.UpdatedAt = time.Now().UTC()

	if err := s.bookingRepo.UpdateBooking(ctx, *booking); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}

	resp := dto.ToBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	if _, err := s.bookingRepo.FindBookingByID(ctx, bookingID); err != nil {
		return err
	}
	// Stock restoration happens inside the delete transaction. No
	// ledger write is reversed: the invoice was never stored, so
	// removing the booking removes it from future statements
	// structurally.
	if err := s.bookingRepo.DeleteBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}
	s.LogInfo(ctx, "Booking deleted", slog.String("booking_id", bookingID))
	return nil
}
