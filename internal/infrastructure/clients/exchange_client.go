package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/pkg/config"
)

type ExchangeAPIClient struct {
	baseURL    string
	httpClient *http.Client
	config     *config.ExchangeAPIConfig
	logger     zerolog.Logger
}

type ratesResponse struct {
	Base      string            `json:"base"`
	Rates     map[string]string `json:"rates"`
	Timestamp int64             `json:"timestamp"`
}

func NewExchangeAPIClient(cfg *config.ExchangeAPIConfig, logger zerolog.Logger) *ExchangeAPIClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ExchangeAPIClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		config: cfg,
		logger: logger.With().Str("component", "exchange_api_client").Logger(),
	}
}

// GetBaseRate returns how many units of quote one unit of base buys.
func (c *ExchangeAPIClient) GetBaseRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	rate, err := c.getExchangeRateWithRetry(ctx, base, quote, 0)
	if err != nil {
		return decimal.Zero, domain.NewDependencyError("exchange rate provider", err)
	}
	return rate.Rate, nil
}

func (c *ExchangeAPIClient) getExchangeRateWithRetry(ctx context.Context, base, quote string, attempt int) (*domain.ExchangeRate, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	u.Path = "/v1/latest"
	q := u.Query()
	q.Set("base", base)
	q.Set("symbols", quote)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}

	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if shouldRetry(err) && attempt < c.config.MaxRetries {
			backoff := calculateBackoff(attempt, c.config.RetryBackoffBase)
			c.logger.Info().
				Err(err).
				Int("attempt", attempt+1).
				Dur("backoff", backoff).
				Msg("Request failed, retrying after backoff")

			if err := sleepContext(ctx, backoff); err != nil {
				return nil, err
			}
			return c.getExchangeRateWithRetry(ctx, base, quote, attempt+1)
		}
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if shouldRetryStatusCode(resp.StatusCode) && attempt < c.config.MaxRetries {
			backoff := calculateBackoff(attempt, c.config.RetryBackoffBase)
			c.logger.Warn().
				Int("status_code", resp.StatusCode).
				Int("attempt", attempt+1).
				Dur("backoff", backoff).
				Msg("Received non-200 status, retrying after backoff")

			if err := sleepContext(ctx, backoff); err != nil {
				return nil, err
			}
			return c.getExchangeRateWithRetry(ctx, base, quote, attempt+1)
		}
		return nil, handleErrorResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body failed: %w", err)
	}

	return c.parseRatesResponse(body, base, quote)
}

func (c *ExchangeAPIClient) parseRatesResponse(body []byte, base, quote string) (*domain.ExchangeRate, error) {
	var response ratesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("parsing JSON response failed: %w", err)
	}

	raw, ok := response.Rates[strings.ToUpper(quote)]
	if !ok {
		return nil, fmt.Errorf("no %s rate in response", quote)
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid rate format: %w", err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("non-positive rate %s for %s/%s", raw, base, quote)
	}

	fetchedAt := time.Now().UTC()
	if response.Timestamp > 0 {
		fetchedAt = time.Unix(response.Timestamp, 0).UTC()
	}

	return &domain.ExchangeRate{
		Base:      base,
		Quote:     quote,
		Rate:      rate,
		FetchedAt: fetchedAt,
	}, nil
}

func handleErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("HTTP error %d: failed to read response body", resp.StatusCode)
	}

	var errorResp struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error != "" {
		return fmt.Errorf("HTTP error %d: %s", resp.StatusCode, errorResp.Error)
	}

	return fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
}

func shouldRetry(err error) bool {
	if err, ok := err.(interface{ Timeout() bool }); ok && err.Timeout() {
		return true
	}
	if err, ok := err.(interface{ Temporary() bool }); ok && err.Temporary() {
		return true
	}
	return false
}

func shouldRetryStatusCode(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}

// calculateBackoff grows base^attempt seconds, capped at 30s.
func calculateBackoff(attempt, base int) time.Duration {
	if base <= 1 {
		base = 2
	}
	backoff := time.Second
	for i := 0; i < attempt; i++ {
		backoff *= time.Duration(base)
		if backoff > 30*time.Second {
			return 30 * time.Second
		}
	}
	return backoff
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
