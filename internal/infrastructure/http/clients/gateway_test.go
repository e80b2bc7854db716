package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/models"
	"github.com/tuncanbit/bss/pkg/config"
)

func newTestGateway(url string, timeout time.Duration) *gatewayClient {
	return NewGatewayClient(config.GatewayConfig{
		BaseURL:    url,
		APIKey:     "gw-token",
		Timeout:    timeout,
		MaxRetries: 1,
		RetryDelay: 10 * time.Millisecond,
	}, zerolog.Nop()).(*gatewayClient)
}

func TestGatewayClient_InitiateDeposit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/deposits", r.URL.Path)
		assert.Equal(t, "Bearer gw-token", r.Header.Get("Authorization"))

		var req models.DepositRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "130650", req.Amount)
		require.Len(t, req.Metadata, 2)
		assert.True(t, req.Metadata[1].IsPII)

		_ = json.NewEncoder(w).Encode(map[string]string{"depositId": req.DepositID, "status": "ACCEPTED"})
	}))
	defer srv.Close()

	gw := newTestGateway(srv.URL, time.Second)
	ack, err := gw.InitiateDeposit(context.Background(), &models.DepositRequest{
		DepositID: "2d8f6a3e-8f0b-4c5e-9d57-1f1ff2b0b111",
		Amount:    "130650",
		Currency:  "RWF",
		Metadata: []domain.MetadataField{
			{FieldName: "reservationId", FieldValue: "r-1"},
			{FieldName: "customerPhone", FieldValue: "250788000000", IsPII: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", ack.Status)
	assert.Equal(t, "2d8f6a3e-8f0b-4c5e-9d57-1f1ff2b0b111", ack.ID)
}

func TestGatewayClient_InitiateErrors(t *testing.T) {
	t.Run("validation rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errorMessage":"invalid msisdn"}`))
		}))
		defer srv.Close()

		_, err := newTestGateway(srv.URL, time.Second).InitiateDeposit(context.Background(), &models.DepositRequest{DepositID: "d-1"})
		assert.True(t, domain.IsGatewayError(err, domain.GatewayRejected))
	})

	t.Run("rejected acknowledgement", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"depositId":"d-2","status":"REJECTED","rejectionReason":{"failureCode":"AMOUNT_TOO_LARGE","failureMessage":"limit"}}`))
		}))
		defer srv.Close()

		_, err := newTestGateway(srv.URL, time.Second).InitiateDeposit(context.Background(), &models.DepositRequest{DepositID: "d-2"})
		require.True(t, domain.IsGatewayError(err, domain.GatewayRejected))
		assert.Contains(t, err.Error(), "AMOUNT_TOO_LARGE")
	})

	t.Run("timeout after sending", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer srv.Close()

		_, err := newTestGateway(srv.URL, 50*time.Millisecond).InitiateDeposit(context.Background(), &models.DepositRequest{DepositID: "d-3"})
		assert.True(t, domain.IsGatewayError(err, domain.GatewayTimeout))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := newTestGateway(url, time.Second).InitiatePayout(context.Background(), &models.PayoutRequest{PayoutID: "p-1"})
		assert.True(t, domain.IsGatewayError(err, domain.GatewayUnreachable))
	})
}

func TestGatewayClient_GetDepositStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/deposits/known":
			_, _ = w.Write([]byte(`[{"depositId":"known","status":"COMPLETED","providerTransactionId":"MP-778"}]`))
		case "/deposits/empty":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	gw := newTestGateway(srv.URL, time.Second)

	tx, err := gw.GetDepositStatus(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", tx.Status)
	assert.Equal(t, "known", tx.ID)
	assert.Equal(t, "MP-778", tx.ProviderTransactionID)

	_, err = gw.GetDepositStatus(context.Background(), "empty")
	assert.True(t, domain.IsNotFound(err))

	_, err = gw.GetDepositStatus(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestGatewayClient_InitiateBulkPayout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payouts/bulk", r.URL.Path)
		_, _ = w.Write([]byte(`[{"payoutId":"p-1","status":"ACCEPTED"},{"status":"ENQUEUED"}]`))
	}))
	defer srv.Close()

	acks, err := newTestGateway(srv.URL, time.Second).InitiateBulkPayout(context.Background(), []*models.PayoutRequest{
		{PayoutID: "p-1"}, {PayoutID: "p-2"},
	})
	require.NoError(t, err)
	require.Len(t, acks, 2)
	assert.Equal(t, "p-2", acks[1].ID)
	assert.Equal(t, "ENQUEUED", acks[1].Status)
}
