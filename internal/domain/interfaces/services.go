package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/models"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mock_interfaces

// PaymentGateway is the external mobile-money provider. Amounts are
// minor-unit strings in the request currency.
type PaymentGateway interface {
	InitiateDeposit(ctx context.Context, req *models.DepositRequest) (*models.GatewayTransaction, error)
	GetDepositStatus(ctx context.Context, depositID string) (*models.GatewayTransaction, error)
	InitiatePayout(ctx context.Context, req *models.PayoutRequest) (*models.GatewayTransaction, error)
	GetPayoutStatus(ctx context.Context, payoutID string) (*models.GatewayTransaction, error)
	InitiateRefund(ctx context.Context, req *models.RefundRequest) (*models.GatewayTransaction, error)
	GetRefundStatus(ctx context.Context, refundID string) (*models.GatewayTransaction, error)
	InitiateBulkPayout(ctx context.Context, reqs []*models.PayoutRequest) ([]*models.GatewayTransaction, error)
}

// ResourceCatalog is the read-only property/tour service.
type ResourceCatalog interface {
	GetResource(ctx context.Context, resourceID string) (*domain.Resource, error)
}

// NotificationClient delivers lifecycle emails. Callers treat failures as
// non-fatal.
type NotificationClient interface {
	Send(ctx context.Context, notification domain.Notification) error
}

// ExchangeRateProvider returns the settlement-to-local base rate.
type ExchangeRateProvider interface {
	GetBaseRate(ctx context.Context, base, quote string) (decimal.Decimal, error)
}

// EventPublisher carries post-commit lifecycle events to the notifier.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// WebSocketManager defines the interface for WebSocket management
type WebSocketManager interface {
	AddClient(client WebSocketClient) error
	RemoveClient(clientID string) error
	Broadcast(message *models.StatusUpdate) error
	SendToUser(userID string, message *models.StatusUpdate) error
	GetClientCount() int
}

type WebSocketClient interface {
	GetID() string
	GetUserID() string
	Send(message *models.StatusUpdate) error
	Close() error
	IsActive() bool
	HandleConnection()
}
