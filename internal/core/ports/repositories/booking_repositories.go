package repositories

import (
	"context"
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
)

// ListBookingsFilter carries the optional booking list-view filters.
type ListBookingsFilter struct {
	CustomerID string
	Status     domain.BookingStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

// BookingReader defines read operations for booking data.
type BookingReader interface {
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListBookings(ctx context.Context, filter ListBookingsFilter) ([]domain.Booking, int64, error)

	// FindBookingsByCustomer returns the customer's non-cancelled
	// bookings ordered by (shooting date, creation time) ascending.
	// This is the invoice source adapter for the statement builder.
	FindBookingsByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)

	// SlotTaken reports whether another booking already occupies the
	// given day and time slot.
	SlotTaken(ctx context.Context, day time.Time, shootingTime string, excludeBookingID string) (bool, error)
}

// BookingWriter defines write operations for booking data.
type BookingWriter interface {
	// SaveBooking inserts the booking with its service and product lines
	// and consumes product stock, all in one transaction.
	SaveBooking(ctx context.Context, booking domain.Booking) error

	// UpdateBooking replaces the booking's mutable fields and lines.
	UpdateBooking(ctx context.Context, booking domain.Booking) error

	// DeleteBooking removes the booking and restores any product stock it
	// consumed, in one transaction. The ledger is untouched: invoices are
	// synthesized on read, so removal is structural.
	DeleteBooking(ctx context.Context, bookingID string) error
}

// BookingRepositoryFacade combines all booking repository interfaces.
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
