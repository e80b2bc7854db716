package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/application/bookingservice"
	"github.com/tuncanbit/bss/internal/application/paymentservice"
	"github.com/tuncanbit/bss/internal/application/reconciliationservice"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/server/middleware"
)

type PaymentHandler struct {
	payments       paymentservice.IPaymentService
	reconciliation reconciliationservice.IReconciliationService
	bookings       bookingservice.IBookingService
	logger         zerolog.Logger
}

func NewPaymentHandler(payments paymentservice.IPaymentService, reconciliation reconciliationservice.IReconciliationService, bookings bookingservice.IBookingService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments:       payments,
		reconciliation: reconciliation,
		bookings:       bookings,
		logger:         logger,
	}
}

// InitiateDeposit is only open to the booking's requester.
func (h *PaymentHandler) InitiateDeposit(c *gin.Context) {
	var input domain.DepositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	if input.ReservationID == "" {
		badRequest(c, "reservation_id is required")
		return
	}

	reservation, err := h.bookings.GetBooking(c.Request.Context(), input.ReservationID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if reservation.RequesterID != middleware.UserID(c) {
		forbidden(c)
		return
	}

	tx, err := h.payments.InitiateDeposit(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusAccepted, tx)
}

// InitiatePayout pays out of the caller's own wallet.
func (h *PaymentHandler) InitiatePayout(c *gin.Context) {
	var input domain.PayoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	input.WalletID = ""
	input.OwnerID = middleware.UserID(c)

	tx, err := h.payments.InitiatePayout(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusAccepted, tx)
}

func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	tx, ok := h.authorizedTransaction(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *PaymentHandler) Reconcile(c *gin.Context) {
	tx, ok := h.authorizedTransaction(c)
	if !ok {
		return
	}

	result, err := h.reconciliation.Reconcile(c.Request.Context(), tx.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// authorizedTransaction loads the transaction and checks the caller is a
// party to it: the payout's owner, or a party to the reservation a deposit or
// refund belongs to.
func (h *PaymentHandler) authorizedTransaction(c *gin.Context) (*domain.PaymentTransaction, bool) {
	tx, err := h.payments.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return nil, false
	}

	userID := middleware.UserID(c)
	if tx.Type == domain.TransactionPayout {
		if tx.MetadataValue("ownerId") != userID {
			forbidden(c)
			return nil, false
		}
		return tx, true
	}

	reservation, err := h.bookings.GetBooking(c.Request.Context(), tx.InternalReference)
	if err != nil {
		respondError(c, h.logger, err)
		return nil, false
	}
	if !isParty(reservation, userID) {
		forbidden(c)
		return nil, false
	}
	return tx, true
}
