package dto

import (
	"time"

	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BookingServiceLineRequest is one catalog service on a booking payload.
type BookingServiceLineRequest struct {
	ServiceID string `json:"serviceID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// BookingProductLineRequest is one product on a booking payload.
type BookingProductLineRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateBookingRequest defines the payload for creating a booking.
// Totals are never accepted from the client; they are priced from the
// catalog and product records at creation time.
type CreateBookingRequest struct {
	CustomerID   string                      `json:"customerID" binding:"required"`
	ShootingDate time.Time                   `json:"shootingDate" binding:"required"`
	ShootingTime string                      `json:"shootingTime" binding:"required"`
	Services     []BookingServiceLineRequest `json:"services" binding:"required,min=1,dive"`
	Products     []BookingProductLineRequest `json:"products" binding:"omitempty,dive"`
	Discount     decimal.Decimal             `json:"discount"`
	Notes        string                      `json:"notes"`
}

// UpdateBookingRequest defines the payload for updating a booking.
// Line changes trigger a full repricing.
type UpdateBookingRequest struct {
	ShootingDate *time.Time                  `json:"shootingDate"`
	ShootingTime *string                     `json:"shootingTime"`
	Services     []BookingServiceLineRequest `json:"services" binding:"omitempty,min=1,dive"`
	Products     []BookingProductLineRequest `json:"products" binding:"omitempty,dive"`
	Discount     *decimal.Decimal            `json:"discount"`
	Notes        *string                     `json:"notes"`
	Status       *domain.BookingStatus       `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
}

// ListBookingsParams are the booking list query parameters.
type ListBookingsParams struct {
	PaginationParams
	CustomerID string               `form:"customer"`
	Status     domain.BookingStatus `form:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	StartDate  *time.Time           `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time           `form:"endDate" time_format:"2006-01-02"`
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	BookingID         string                      `json:"bookingID"`
	CustomerID        string                      `json:"customerID"`
	ShootingDate      *time.Time                  `json:"shootingDate"`
	ShootingTime      string                      `json:"shootingTime"`
	Services          []domain.BookingServiceLine `json:"services"`
	Products          []domain.BookingProductLine `json:"products"`
	Discount          decimal.Decimal             `json:"discount"`
	Notes             string                      `json:"notes,omitempty"`
	Status            domain.BookingStatus        `json:"status"`
	Source            domain.BookingSource        `json:"source"`
	TotalSellingPrice decimal.Decimal             `json:"totalSellingPrice"`
	TotalCost         decimal.Decimal             `json:"totalCost"`
	Profit            decimal.Decimal             `json:"profit"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

// ListBookingsResponse is a page of bookings.
type ListBookingsResponse struct {
	Bookings   []BookingResponse  `json:"bookings"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToBookingResponse converts a domain.Booking to its response DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:         b.BookingID,
		CustomerID:        b.CustomerID,
		ShootingDate:      b.ShootingDate,
		ShootingTime:      b.ShootingTime,
		Services:          b.Services,
		Products:          b.Products,
		Discount:          b.Discount,
		Notes:             b.Notes,
		Status:            b.Status,
		Source:            b.Source,
		TotalSellingPrice: b.TotalSellingPrice,
		TotalCost:         b.TotalCost,
		Profit:            b.Profit,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// ToBookingResponses converts a slice of bookings.
func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = ToBookingResponse(&bookings[i])
	}
	return responses
}
