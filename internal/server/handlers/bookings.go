package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/application/availabilityservice"
	"github.com/tuncanbit/bss/internal/application/bookingservice"
	"github.com/tuncanbit/bss/internal/application/paymentservice"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/server/middleware"
)

type BookingHandler struct {
	bookings     bookingservice.IBookingService
	availability availabilityservice.IAvailabilityService
	payments     paymentservice.IPaymentService
	logger       zerolog.Logger
}

func NewBookingHandler(bookings bookingservice.IBookingService, availability availabilityservice.IAvailabilityService, payments paymentservice.IPaymentService, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		bookings:     bookings,
		availability: availability,
		payments:     payments,
		logger:       logger,
	}
}

type cancelRequest struct {
	CancelledBy domain.CancelRole `json:"cancelled_by" binding:"required"`
}

func isParty(res *domain.Reservation, userID string) bool {
	if userID == "" {
		return false
	}
	return res.RequesterID == userID || res.OwnerID == userID || (res.HasAgent() && *res.AgentID == userID)
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	start, err := parseDate("start_date", c.Query("start_date"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	end, err := parseDate("end_date", c.Query("end_date"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := h.availability.CheckAvailability(c.Request.Context(), c.Param("resource_id"), start, end, c.Query("exclude_booking_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) Quote(c *gin.Context) {
	start, err := parseDate("start_date", c.Query("start_date"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	end, err := parseDate("end_date", c.Query("end_date"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	quote, err := h.bookings.Quote(c.Request.Context(), c.Param("resource_id"), start, end)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.RequesterID = middleware.UserID(c)

	reservation, err := h.bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	reservation, err := h.bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !isParty(reservation, middleware.UserID(c)) {
		forbidden(c)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.bookings.CancelBooking(c.Request.Context(), c.Param("id"), req.CancelledBy, middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) ListTransactions(c *gin.Context) {
	reservation, err := h.bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !isParty(reservation, middleware.UserID(c)) {
		forbidden(c)
		return
	}

	transactions, err := h.payments.ListForReference(c.Request.Context(), reservation.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"total":        len(transactions),
	})
}

func (h *BookingHandler) BlockDates(c *gin.Context) {
	var req domain.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.CreatedBy = middleware.UserID(c)

	blocked, err := h.bookings.BlockDates(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, blocked)
}

func (h *BookingHandler) UnblockDates(c *gin.Context) {
	if err := h.bookings.UnblockDates(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
