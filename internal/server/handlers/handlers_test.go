package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mock_authservice "github.com/tuncanbit/bss/internal/application/auth/mocks"
	mock_availabilityservice "github.com/tuncanbit/bss/internal/application/availabilityservice/mocks"
	mock_bookingservice "github.com/tuncanbit/bss/internal/application/bookingservice/mocks"
	mock_distributionservice "github.com/tuncanbit/bss/internal/application/distributionservice/mocks"
	mock_paymentservice "github.com/tuncanbit/bss/internal/application/paymentservice/mocks"
	mock_reconciliationservice "github.com/tuncanbit/bss/internal/application/reconciliationservice/mocks"
	mock_walletservice "github.com/tuncanbit/bss/internal/application/walletservice/mocks"
	"github.com/tuncanbit/bss/internal/domain"
	mock_interfaces "github.com/tuncanbit/bss/internal/domain/interfaces/mocks"
	"github.com/tuncanbit/bss/internal/server/middleware"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/logger"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type harness struct {
	router         *gin.Engine
	availability   *mock_availabilityservice.MockIAvailabilityService
	bookings       *mock_bookingservice.MockIBookingService
	payments       *mock_paymentservice.MockIPaymentService
	reconciliation *mock_reconciliationservice.MockIReconciliationService
	distribution   *mock_distributionservice.MockIDistributionService
	wallets        *mock_walletservice.MockIWalletService
}

// newHarness authenticates the bearer token "<user>" as that user and
// accepts the ops key "ops-key".
func newHarness(t *testing.T, db Pinger) *harness {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	auth := mock_authservice.NewMockIAuthService(ctrl)
	auth.EXPECT().VerifyToken(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, token string) (*domain.Claim, error) {
		return &domain.Claim{UserID: token}, nil
	}).AnyTimes()
	auth.EXPECT().VerifyAPIKey(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
		if key != "ops-key" {
			return errors.New("invalid API key")
		}
		return nil
	}).AnyTimes()

	h := &harness{
		availability:   mock_availabilityservice.NewMockIAvailabilityService(ctrl),
		bookings:       mock_bookingservice.NewMockIBookingService(ctrl),
		payments:       mock_paymentservice.NewMockIPaymentService(ctrl),
		reconciliation: mock_reconciliationservice.NewMockIReconciliationService(ctrl),
		distribution:   mock_distributionservice.NewMockIDistributionService(ctrl),
		wallets:        mock_walletservice.NewMockIWalletService(ctrl),
	}

	cfg := &config.Config{}
	mw := middleware.NewMiddleware(auth, cfg.Server, logger.Nop())
	handlers := New(Services{
		Availability:   h.availability,
		Bookings:       h.bookings,
		Payments:       h.payments,
		Reconciliation: h.reconciliation,
		Distribution:   h.distribution,
		Wallets:        h.wallets,
	}, mock_interfaces.NewMockWebSocketManager(ctrl), db, mw, cfg, logger.Nop())

	h.router = gin.New()
	handlers.SetupHandlers(h.router)
	return h
}

func (h *harness) do(method, path, user string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) ops(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-API-Key", "ops-key")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func booking() *domain.Reservation {
	return &domain.Reservation{ID: "res-1", RequesterID: "guest-1", OwnerID: "owner-1", Status: domain.ReservationPending}
}

func TestHealth(t *testing.T) {
	h := newHarness(t, pinger{})
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/ready", "", nil).Code)

	down := newHarness(t, pinger{err: errors.New("connection refused")})
	assert.Equal(t, http.StatusServiceUnavailable, down.do(http.MethodGet, "/ready", "", nil).Code)
}

func TestCreateBooking(t *testing.T) {
	h := newHarness(t, nil)
	body := map[string]any{
		"resource_id": "prop-1",
		"start_date":  "2024-03-10T00:00:00Z",
		"end_date":    "2024-03-13T00:00:00Z",
		"guests":      2,
	}

	t.Run("created for the caller", func(t *testing.T) {
		h.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.BookingRequest) (*domain.Reservation, error) {
				assert.Equal(t, "guest-1", req.RequesterID)
				assert.Equal(t, 2, req.Guests)
				return booking(), nil
			})
		rec := h.do(http.MethodPost, "/v1/bookings", "guest-1", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "res-1", decode(t, rec)["id"])
	})

	t.Run("conflict lists colliding bookings", func(t *testing.T) {
		h.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, &domain.ConflictError{
			Message:      "requested dates are not available",
			Reservations: []domain.Reservation{{ID: "res-other"}},
		})
		rec := h.do(http.MethodPost, "/v1/bookings", "guest-2", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, []any{"res-other"}, decode(t, rec)["conflicting_bookings"])
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/v1/bookings", "guest-1", map[string]any{"guests": 1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/v1/bookings", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestQuoteAndAvailability(t *testing.T) {
	h := newHarness(t, nil)

	h.bookings.EXPECT().Quote(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).Return(&domain.Quote{
		ResourceID: "prop-1", Available: true, Price: domain.PriceBreakdown{Total: decimal.NewFromInt(372)},
	}, nil)
	rec := h.do(http.MethodGet, "/v1/resources/prop-1/quote?start_date=2024-03-10&end_date=2024-03-13", "guest-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(http.MethodGet, "/v1/resources/prop-1/availability?start_date=2024-03-10", "guest-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "end_date", decode(t, rec)["field"])

	h.availability.EXPECT().CheckAvailability(gomock.Any(), "prop-1", gomock.Any(), gomock.Any(), "res-1").
		Return(nil, domain.NewDependencyError("reservation_store", errors.New("timeout")))
	rec = h.do(http.MethodGet, "/v1/resources/prop-1/availability?start_date=2024-03-10&end_date=2024-03-13&exclude_booking_id=res-1", "guest-1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetBooking_OnlyParties(t *testing.T) {
	h := newHarness(t, nil)
	h.bookings.EXPECT().GetBooking(gomock.Any(), "res-1").Return(booking(), nil).Times(3)

	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/bookings/res-1", "guest-1", nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/bookings/res-1", "owner-1", nil).Code)
	assert.Equal(t, http.StatusForbidden, h.do(http.MethodGet, "/v1/bookings/res-1", "stranger", nil).Code)

	h.bookings.EXPECT().GetBooking(gomock.Any(), "missing").Return(nil, domain.NewNotFoundError("reservation", "missing"))
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/v1/bookings/missing", "guest-1", nil).Code)
}

func TestCancelBooking(t *testing.T) {
	h := newHarness(t, nil)
	h.bookings.EXPECT().CancelBooking(gomock.Any(), "res-1", domain.CancelledByRequester, "guest-1").
		Return(&domain.CancellationResult{Reservation: booking(), RefundAmount: decimal.NewFromInt(186)}, nil)
	rec := h.do(http.MethodPost, "/v1/bookings/res-1/cancel", "guest-1", map[string]string{"cancelled_by": "requester"})
	assert.Equal(t, http.StatusOK, rec.Code)

	h.bookings.EXPECT().CancelBooking(gomock.Any(), "res-1", domain.CancelledByOwner, "guest-1").
		Return(nil, &domain.ForbiddenError{Message: "only the owner can cancel as owner"})
	rec = h.do(http.MethodPost, "/v1/bookings/res-1/cancel", "guest-1", map[string]string{"cancelled_by": "owner"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestInitiateDeposit(t *testing.T) {
	h := newHarness(t, nil)
	input := domain.DepositInput{
		ReservationID: "res-1",
		Payer:         domain.Party{Phone: "0788123456"},
		Correspondent: "MTN_MOMO_RWA",
	}
	h.bookings.EXPECT().GetBooking(gomock.Any(), "res-1").Return(booking(), nil).Times(3)

	assert.Equal(t, http.StatusForbidden, h.do(http.MethodPost, "/v1/payments/deposits", "owner-1", input).Code)

	h.payments.EXPECT().InitiateDeposit(gomock.Any(), gomock.Any()).Return(&domain.PaymentTransaction{ID: "tx-1", Status: domain.TransactionAccepted}, nil)
	rec := h.do(http.MethodPost, "/v1/payments/deposits", "guest-1", input)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "tx-1", decode(t, rec)["id"])

	h.payments.EXPECT().InitiateDeposit(gomock.Any(), gomock.Any()).Return(nil, domain.NewValidationError("gateway", "rejected: invalid msisdn"))
	rec = h.do(http.MethodPost, "/v1/payments/deposits", "guest-1", input)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInitiatePayout_UsesCallerWallet(t *testing.T) {
	h := newHarness(t, nil)
	h.payments.EXPECT().InitiatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in domain.PayoutInput) (*domain.PaymentTransaction, error) {
			assert.Equal(t, "owner-1", in.OwnerID)
			assert.Empty(t, in.WalletID)
			return &domain.PaymentTransaction{ID: "tx-payout"}, nil
		})

	rec := h.do(http.MethodPost, "/v1/payments/payouts", "owner-1", map[string]any{
		"wallet_id":     "someone-elses-wallet",
		"amount":        "100",
		"payee":         map[string]string{"phone": "0788123456"},
		"correspondent": "MTN_MOMO_RWA",
	})
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestReconcile(t *testing.T) {
	h := newHarness(t, nil)
	deposit := &domain.PaymentTransaction{ID: "tx-1", Type: domain.TransactionDeposit, InternalReference: "res-1"}
	h.payments.EXPECT().GetTransaction(gomock.Any(), "tx-1").Return(deposit, nil).Times(2)
	h.bookings.EXPECT().GetBooking(gomock.Any(), "res-1").Return(booking(), nil).Times(2)

	h.reconciliation.EXPECT().Reconcile(gomock.Any(), "tx-1").Return(&domain.ReconcileResult{
		TransactionID: "tx-1", PreviousStatus: domain.TransactionAccepted, NewStatus: domain.TransactionCompleted, Changed: true,
	}, nil)
	rec := h.do(http.MethodPost, "/v1/payments/tx-1/reconcile", "guest-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["changed"])

	assert.Equal(t, http.StatusForbidden, h.do(http.MethodPost, "/v1/payments/tx-1/reconcile", "stranger", nil).Code)
}

func TestWallet(t *testing.T) {
	h := newHarness(t, nil)
	wallet := &domain.Wallet{ID: "w-1", OwnerID: "owner-1", Balance: decimal.NewFromInt(500)}
	h.wallets.EXPECT().GetWallet(gomock.Any(), "owner-1").Return(wallet, nil).Times(2)
	h.wallets.EXPECT().ListTransactions(gomock.Any(), "w-1", 10, 20).Return([]domain.WalletTransaction{}, nil)

	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/wallets/me", "owner-1", nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/v1/wallets/me/transactions?limit=10&offset=20", "owner-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, "/v1/wallets/me/transactions?limit=-1", "owner-1", nil).Code)
}

func TestOpsEndpoints(t *testing.T) {
	h := newHarness(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/ops/distributions/run", nil)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h.distribution.EXPECT().DistributeAll(gomock.Any()).Return(&domain.DistributionSummary{Total: 2, Succeeded: 1, Failed: 1}, nil)
	assert.Equal(t, http.StatusOK, h.ops(http.MethodPost, "/v1/ops/distributions/run", nil).Code)

	h.distribution.EXPECT().Distribute(gomock.Any(), "res-1").Return(
		&domain.DistributionResult{ReservationID: "res-1", Reason: "wallet store unavailable"}, errors.New("wallet store unavailable"))
	assert.Equal(t, http.StatusBadGateway, h.ops(http.MethodPost, "/v1/ops/distributions/res-1", nil).Code)

	h.distribution.EXPECT().FindUndistributed(gomock.Any()).Return([]domain.Reservation{*booking()}, nil)
	rec = h.ops(http.MethodGet, "/v1/ops/distributions/pending", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["total"])

	h.reconciliation.EXPECT().ReconcilePending(gomock.Any()).Return(&domain.ReconcileSummary{Scanned: 3, Changed: 1}, nil)
	assert.Equal(t, http.StatusOK, h.ops(http.MethodPost, "/v1/ops/reconciliations/run", nil).Code)

	h.payments.EXPECT().InitiateRefund(gomock.Any(), gomock.Any()).Return(nil, domain.NewValidationError("amount", "refunds would exceed the reservation total of 372.00"))
	assert.Equal(t, http.StatusBadRequest, h.ops(http.MethodPost, "/v1/ops/refunds", map[string]any{"reservation_id": "res-1", "amount": "500"}).Code)

	assert.Equal(t, http.StatusBadRequest, h.ops(http.MethodPost, "/v1/ops/payouts/bulk", []any{}).Code)

	h.payments.EXPECT().InitiateBulkPayout(gomock.Any(), gomock.Len(2)).
		Return([]*domain.PaymentTransaction{{ID: "tx-1"}}, errors.New("failed to record 1 of 2 payouts"))
	w := h.ops(http.MethodPost, "/v1/ops/payouts/bulk", []map[string]any{
		{"owner_id": "owner-1", "amount": "100", "correspondent": "MTN_MOMO_RWA", "payee": map[string]string{"phone": "0788123456"}},
		{"owner_id": "owner-2", "amount": "50", "correspondent": "MTN_MOMO_RWA", "payee": map[string]string{"phone": "0788654321"}},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	h.wallets.EXPECT().VerifyBalance(gomock.Any(), "w-1").Return(&domain.BalanceAudit{WalletID: "w-1", Consistent: true}, nil)
	assert.Equal(t, http.StatusOK, h.ops(http.MethodGet, "/v1/ops/wallets/w-1/verify", nil).Code)
}
