package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/application/distributionservice"
	"github.com/tuncanbit/bss/internal/application/paymentservice"
	"github.com/tuncanbit/bss/internal/application/reconciliationservice"
	"github.com/tuncanbit/bss/internal/application/walletservice"
	"github.com/tuncanbit/bss/internal/domain"
)

// AdminHandler serves the API-key protected operations endpoints.
type AdminHandler struct {
	distribution   distributionservice.IDistributionService
	reconciliation reconciliationservice.IReconciliationService
	payments       paymentservice.IPaymentService
	wallets        walletservice.IWalletService
	logger         zerolog.Logger
}

func NewAdminHandler(
	distribution distributionservice.IDistributionService,
	reconciliation reconciliationservice.IReconciliationService,
	payments paymentservice.IPaymentService,
	wallets walletservice.IWalletService,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		distribution:   distribution,
		reconciliation: reconciliation,
		payments:       payments,
		wallets:        wallets,
		logger:         logger,
	}
}

func (h *AdminHandler) Distribute(c *gin.Context) {
	result, err := h.distribution.Distribute(c.Request.Context(), c.Param("reservation_id"))
	if err != nil {
		if result != nil {
			h.logger.Error().Err(err).Str("reservation_id", result.ReservationID).Msg("Distribution failed")
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "Distribution Failed",
				"message": err.Error(),
				"result":  result,
			})
			return
		}
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) ListUndistributed(c *gin.Context) {
	reservations, err := h.distribution.FindUndistributed(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reservations": reservations,
		"total":        len(reservations),
	})
}

func (h *AdminHandler) DistributeAll(c *gin.Context) {
	summary, err := h.distribution.DistributeAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AdminHandler) ReconcilePending(c *gin.Context) {
	summary, err := h.reconciliation.ReconcilePending(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AdminHandler) InitiateRefund(c *gin.Context) {
	var input domain.RefundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	tx, err := h.payments.InitiateRefund(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusAccepted, tx)
}

func (h *AdminHandler) InitiateBulkPayout(c *gin.Context) {
	var inputs []domain.PayoutInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		badRequest(c, err.Error())
		return
	}
	if len(inputs) == 0 {
		badRequest(c, "at least one payout is required")
		return
	}

	txs, err := h.payments.InitiateBulkPayout(c.Request.Context(), inputs)
	if err != nil {
		if len(txs) > 0 {
			h.logger.Error().Err(err).Int("recorded", len(txs)).Msg("Bulk payout partially recorded")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":        "Bulk Payout Partially Recorded",
				"message":      err.Error(),
				"transactions": txs,
				"total":        len(txs),
			})
			return
		}
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"transactions": txs,
		"total":        len(txs),
	})
}

func (h *AdminHandler) VerifyBalance(c *gin.Context) {
	audit, err := h.wallets.VerifyBalance(c.Request.Context(), c.Param("wallet_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, audit)
}
