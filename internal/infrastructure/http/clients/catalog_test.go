package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/pkg/config"
)

func TestCatalogClient_GetResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "catalog-key", r.Header.Get("X-API-Key"))
		switch r.URL.Path {
		case "/v1/resources/villa-1":
			_, _ = w.Write([]byte(`{"id":"villa-1","type":"property","owner_id":"host-1","agent_id":"agent-1","nightly_rate":"100","max_capacity":4,"is_active":true,"currency":"USD"}`))
		case "/v1/resources/broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	catalog := NewCatalogClient(config.ServiceClientConfig{
		BaseURL: srv.URL, APIKey: "catalog-key", Timeout: time.Second, RetryDelay: time.Millisecond,
	}, zerolog.Nop())

	res, err := catalog.GetResource(context.Background(), "villa-1")
	require.NoError(t, err)
	assert.Equal(t, "host-1", res.OwnerID)
	require.NotNil(t, res.AgentID)
	assert.Equal(t, "agent-1", *res.AgentID)
	assert.Equal(t, "100", res.NightlyRate.String())
	assert.True(t, res.IsActive)

	_, err = catalog.GetResource(context.Background(), "nope")
	assert.True(t, domain.IsNotFound(err))

	_, err = catalog.GetResource(context.Background(), "broken")
	assert.True(t, domain.IsDependency(err))
}

func TestNotificationClient_Send(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewNotificationClient(config.ServiceClientConfig{BaseURL: srv.URL, Timeout: time.Second}, zerolog.Nop())
	err := client.Send(context.Background(), domain.Notification{RecipientID: "guest-1", Template: "payment_succeeded"})
	require.NoError(t, err)
	assert.Equal(t, "/v1/notifications", got)
}
