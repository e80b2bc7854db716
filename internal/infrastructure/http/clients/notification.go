package clients

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/pkg/config"
)

type notificationClient struct {
	rest *restClient
}

func NewNotificationClient(cfg config.ServiceClientConfig, logger zerolog.Logger) interfaces.NotificationClient {
	return &notificationClient{rest: newRestClient("notification", cfg, false, logger)}
}

func (c *notificationClient) Send(ctx context.Context, notification domain.Notification) error {
	if err := c.rest.makeRequest(ctx, http.MethodPost, "/v1/notifications", notification, nil, true); err != nil {
		return domain.NewDependencyError("notification service", err)
	}
	return nil
}
