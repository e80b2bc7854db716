package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/domain/models"
	"github.com/tuncanbit/bss/pkg/config"
)

const statusRejected = "REJECTED"

type gatewayClient struct {
	rest *restClient
}

func NewGatewayClient(cfg config.GatewayConfig, logger zerolog.Logger) interfaces.PaymentGateway {
	return &gatewayClient{
		rest: newRestClient("payment_gateway", config.ServiceClientConfig{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		}, true, logger),
	}
}

func (c *gatewayClient) InitiateDeposit(ctx context.Context, req *models.DepositRequest) (*models.GatewayTransaction, error) {
	var ack models.GatewayTransaction
	if err := c.rest.makeRequest(ctx, http.MethodPost, "/deposits", req, &ack, false); err != nil {
		return nil, classifyGatewayError(err)
	}
	return acknowledged(&ack, req.DepositID)
}

func (c *gatewayClient) GetDepositStatus(ctx context.Context, depositID string) (*models.GatewayTransaction, error) {
	return c.getStatus(ctx, "/deposits/", depositID)
}

func (c *gatewayClient) InitiatePayout(ctx context.Context, req *models.PayoutRequest) (*models.GatewayTransaction, error) {
	var ack models.GatewayTransaction
	if err := c.rest.makeRequest(ctx, http.MethodPost, "/payouts", req, &ack, false); err != nil {
		return nil, classifyGatewayError(err)
	}
	return acknowledged(&ack, req.PayoutID)
}

func (c *gatewayClient) GetPayoutStatus(ctx context.Context, payoutID string) (*models.GatewayTransaction, error) {
	return c.getStatus(ctx, "/payouts/", payoutID)
}

func (c *gatewayClient) InitiateRefund(ctx context.Context, req *models.RefundRequest) (*models.GatewayTransaction, error) {
	var ack models.GatewayTransaction
	if err := c.rest.makeRequest(ctx, http.MethodPost, "/refunds", req, &ack, false); err != nil {
		return nil, classifyGatewayError(err)
	}
	return acknowledged(&ack, req.RefundID)
}

func (c *gatewayClient) GetRefundStatus(ctx context.Context, refundID string) (*models.GatewayTransaction, error) {
	return c.getStatus(ctx, "/refunds/", refundID)
}

func (c *gatewayClient) InitiateBulkPayout(ctx context.Context, reqs []*models.PayoutRequest) ([]*models.GatewayTransaction, error) {
	var acks []*models.GatewayTransaction
	if err := c.rest.makeRequest(ctx, http.MethodPost, "/payouts/bulk", reqs, &acks, false); err != nil {
		return nil, classifyGatewayError(err)
	}
	if len(acks) != len(reqs) {
		return nil, &domain.GatewayError{
			Kind:    domain.GatewayTimeout,
			Message: fmt.Sprintf("bulk payout acknowledged %d of %d payouts", len(acks), len(reqs)),
		}
	}
	for i, ack := range acks {
		if ack.ID == "" {
			ack.ID = reqs[i].PayoutID
		}
	}
	return acks, nil
}

func (c *gatewayClient) getStatus(ctx context.Context, prefix, id string) (*models.GatewayTransaction, error) {
	var raw json.RawMessage
	if err := c.rest.makeRequest(ctx, http.MethodGet, prefix+url.PathEscape(id), nil, &raw, true); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, domain.NewNotFoundError("gateway transaction", id)
		}
		return nil, classifyGatewayError(err)
	}

	// The provider answers status queries with a list.
	var list []*models.GatewayTransaction
	if err := json.Unmarshal(raw, &list); err != nil {
		var single models.GatewayTransaction
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("failed to decode status for %s: %w", id, err)
		}
		list = []*models.GatewayTransaction{&single}
	}
	if len(list) == 0 || list[0] == nil {
		return nil, domain.NewNotFoundError("gateway transaction", id)
	}
	if list[0].ID == "" {
		list[0].ID = id
	}
	return list[0], nil
}

func acknowledged(ack *models.GatewayTransaction, id string) (*models.GatewayTransaction, error) {
	if ack.ID == "" {
		ack.ID = id
	}
	if ack.Status == statusRejected {
		msg := "request rejected by provider"
		if f := ack.Failure(); f != nil {
			msg = fmt.Sprintf("%s: %s", f.Code, f.Message)
		}
		return nil, &domain.GatewayError{Kind: domain.GatewayRejected, StatusCode: http.StatusOK, Message: msg}
	}
	return ack, nil
}

func classifyGatewayError(err error) error {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 && httpErr.StatusCode != http.StatusTooManyRequests {
			return &domain.GatewayError{Kind: domain.GatewayRejected, StatusCode: httpErr.StatusCode, Message: httpErr.Body, Err: err}
		}
		return &domain.GatewayError{Kind: domain.GatewayUnreachable, StatusCode: httpErr.StatusCode, Message: httpErr.Body, Err: err}
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) && transportErr.Timeout {
		return &domain.GatewayError{Kind: domain.GatewayTimeout, Message: transportErr.Err.Error(), Err: err}
	}
	return &domain.GatewayError{Kind: domain.GatewayUnreachable, Message: err.Error(), Err: err}
}
