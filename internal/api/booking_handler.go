package api

import (
	"arena45/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves /api/bookings.
type BookingHandler struct {
	bookingService service.BookingService
	errs           *ErrorWriter
}

func NewBookingHandler(bookingService service.BookingService, errs *ErrorWriter) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, errs: errs}
}

// CreateBooking godoc
// @Summary Book a session
// @Description Stores a pending booking and emails the customer and the studio.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking body service.CreateBookingInput true "Booking details"
// @Success 201 {object} Response "Booking created successfully"
// @Failure 400 {object} Response "Validation error, invalid or past date"
// @Failure 429 {object} Response "Too many booking attempts"
// @Failure 500 {object} Response "Failed to create booking"
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), req)
	if err != nil {
		h.errs.Write(c, err, "Failed to create booking")
		return
	}
	respondCreated(c, "Booking created successfully", booking)
}

// ListBookings godoc
// @Summary List bookings
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "pending, confirmed, cancelled or completed"
// @Param service query string false "ems, crossfit, pilates or consultation"
// @Param date query string false "Calendar day, YYYY-MM-DD"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var q service.BookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	bookings, page, err := h.bookingService.List(c.Request.Context(), q)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch bookings")
		return
	}
	respondPage(c, bookings, page)
}

// GetBooking godoc
// @Summary Get a booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "Booking not found"
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := pathID(c, service.ErrBookingNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch booking")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch booking")
		return
	}
	respondOK(c, "", booking)
}

// UpdateBookingStatus godoc
// @Summary Change a booking's status
// @Description Any status may follow any other; repeating the same status is a no-op.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param status body statusRequest true "New status"
// @Success 200 {object} Response "Booking updated successfully"
// @Failure 400 {object} Response "Invalid status"
// @Failure 404 {object} Response "Booking not found"
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := pathID(c, service.ErrBookingNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to update booking")
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.errs.Write(c, err, "Failed to update booking")
		return
	}
	respondOK(c, "Booking updated successfully", booking)
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} Response "Booking deleted successfully"
// @Failure 404 {object} Response "Booking not found"
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := pathID(c, service.ErrBookingNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to delete booking")
		return
	}
	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.errs.Write(c, err, "Failed to delete booking")
		return
	}
	respondOK(c, "Booking deleted successfully", nil)
}
