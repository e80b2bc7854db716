package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/application/availabilityservice"
	"github.com/tuncanbit/bss/internal/application/bookingservice"
	"github.com/tuncanbit/bss/internal/application/distributionservice"
	"github.com/tuncanbit/bss/internal/application/paymentservice"
	"github.com/tuncanbit/bss/internal/application/reconciliationservice"
	"github.com/tuncanbit/bss/internal/application/walletservice"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/server/middleware"
	"github.com/tuncanbit/bss/pkg/config"
)

// Services groups everything the HTTP layer calls into.
type Services struct {
	Availability   availabilityservice.IAvailabilityService
	Bookings       bookingservice.IBookingService
	Payments       paymentservice.IPaymentService
	Reconciliation reconciliationservice.IReconciliationService
	Distribution   distributionservice.IDistributionService
	Wallets        walletservice.IWalletService
}

type Handlers struct {
	Services   Services
	WsManager  interfaces.WebSocketManager
	DB         Pinger
	Middleware *middleware.Middleware
	Config     *config.Config
	Logger     zerolog.Logger
}

func New(services Services, wsManager interfaces.WebSocketManager, db Pinger, mw *middleware.Middleware, cfg *config.Config, logger zerolog.Logger) *Handlers {
	return &Handlers{
		Services:   services,
		WsManager:  wsManager,
		DB:         db,
		Middleware: mw,
		Config:     cfg,
		Logger:     logger,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	bookingHandler := NewBookingHandler(h.Services.Bookings, h.Services.Availability, h.Services.Payments, h.Logger)
	paymentHandler := NewPaymentHandler(h.Services.Payments, h.Services.Reconciliation, h.Services.Bookings, h.Logger)
	walletHandler := NewWalletHandler(h.Services.Wallets, h.Logger)
	adminHandler := NewAdminHandler(h.Services.Distribution, h.Services.Reconciliation, h.Services.Payments, h.Services.Wallets, h.Logger)
	wsHandler := NewWebSocketHandler(h.WsManager, h.Config.WebSocket, h.Logger)
	healthHandler := NewHealthHandler(h.DB)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	auth := h.Middleware.AuthMiddleware()

	// Browsers cannot set headers on websocket upgrades; the token comes
	// in the query string.
	router.GET("/status", auth, wsHandler.HandleConnection)

	v1 := router.Group("/v1", auth)
	{
		resources := v1.Group("/resources/:resource_id")
		{
			resources.GET("/availability", bookingHandler.CheckAvailability)
			resources.GET("/quote", bookingHandler.Quote)
		}

		bookings := v1.Group("/bookings")
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
			bookings.GET("/:id/transactions", bookingHandler.ListTransactions)
		}

		blocked := v1.Group("/blocked-ranges")
		{
			blocked.POST("", bookingHandler.BlockDates)
			blocked.DELETE("/:id", bookingHandler.UnblockDates)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("/deposits", paymentHandler.InitiateDeposit)
			payments.POST("/payouts", paymentHandler.InitiatePayout)
			payments.GET("/:id", paymentHandler.GetTransaction)
			payments.POST("/:id/reconcile", paymentHandler.Reconcile)
		}

		wallets := v1.Group("/wallets/me")
		{
			wallets.GET("", walletHandler.GetWallet)
			wallets.GET("/transactions", walletHandler.ListTransactions)
		}
	}

	ops := router.Group("/v1/ops", h.Middleware.APIKeyMiddleware())
	{
		ops.POST("/distributions/:reservation_id", adminHandler.Distribute)
		ops.GET("/distributions/pending", adminHandler.ListUndistributed)
		ops.POST("/distributions/run", adminHandler.DistributeAll)
		ops.POST("/reconciliations/run", adminHandler.ReconcilePending)
		ops.POST("/refunds", adminHandler.InitiateRefund)
		ops.POST("/payouts/bulk", adminHandler.InitiateBulkPayout)
		ops.GET("/wallets/:wallet_id/verify", adminHandler.VerifyBalance)
	}
}
