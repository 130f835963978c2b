package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadsal1998/omari-studio/internal/core/ports/services"
	"github.com/ahmadsal1998/omari-studio/internal/dto"
	"github.com/ahmadsal1998/omari-studio/internal/middleware"
)

// bookingHandler handles HTTP requests related to bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// registerBookingRoutes registers routes related to bookings.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/:id", h.getBooking)
		bookings.PUT("/:id", h.updateBooking)
		bookings.DELETE("/:id", h.deleteBooking)
	}
}

// createBooking godoc
// @Summary Create a new booking
// @Description Creates a booking; totals are priced from the catalog server-side.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Slot already taken"
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create booking")
		return
	}

	logger.Info("Booking created", slog.String("booking_id", booking.BookingID))
	c.JSON(http.StatusCreated, booking)
}

// listBookings godoc
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} dto.ListBookingsResponse
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.bookingService.ListBookings(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBooking godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// updateBooking godoc
// @Summary Update a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param booking body dto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [put]
func (h *bookingHandler) updateBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// deleteBooking godoc
// @Summary Delete a booking
// @Description Removes the booking and restores consumed product stock.
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *bookingHandler) deleteBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.bookingService.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete booking")
		return
	}
	logger.Info("Booking deleted", slog.String("booking_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
