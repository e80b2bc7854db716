package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/application/walletservice"
	"github.com/tuncanbit/bss/internal/server/middleware"
)

type WalletHandler struct {
	wallets walletservice.IWalletService
	logger  zerolog.Logger
}

func NewWalletHandler(wallets walletservice.IWalletService, logger zerolog.Logger) *WalletHandler {
	return &WalletHandler{wallets: wallets, logger: logger}
}

func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.wallets.GetWallet(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

func (h *WalletHandler) ListTransactions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		badRequest(c, "limit must be a positive integer")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(c, "offset must be a non-negative integer")
		return
	}

	wallet, err := h.wallets.GetWallet(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	entries, err := h.wallets.ListTransactions(c.Request.Context(), wallet.ID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallet_id":    wallet.ID,
		"transactions": entries,
		"limit":        limit,
		"offset":       offset,
	})
}
