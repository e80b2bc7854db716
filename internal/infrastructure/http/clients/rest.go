package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/pkg/config"
)

// HTTPError is a non-2xx answer from a downstream service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// TransportError is a failure below HTTP. Timeout reports whether the
// request may already have been delivered.
type TransportError struct {
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type restClient struct {
	name       string
	baseURL    string
	apiKey     string
	bearer     bool
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     zerolog.Logger
}

func newRestClient(name string, cfg config.ServiceClientConfig, bearer bool, logger zerolog.Logger) *restClient {
	return &restClient{
		name:    name,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		bearer:  bearer,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger.With().Str("component", name+"_client").Logger(),
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// makeRequest makes an HTTP request with retries. Connection failures and 5xx
// answers are retried with exponential backoff; timeouts are retried only when
// retryTimeouts is set, since a timed-out write may have reached the server.
func (c *restClient) makeRequest(ctx context.Context, method, endpoint string, body interface{}, response interface{}, retryTimeouts bool) error {
	fullURL := c.baseURL + endpoint

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return &TransportError{Timeout: true, Err: ctx.Err()}
			case <-time.After(c.retryDelay * time.Duration(1<<(attempt-1))):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			if c.bearer {
				req.Header.Set("Authorization", "Bearer "+c.apiKey)
			} else {
				req.Header.Set("X-API-Key", c.apiKey)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			timeout := isTimeout(err)
			lastErr = &TransportError{Timeout: timeout, Err: err}
			if timeout && !retryTimeouts {
				c.logger.Warn().Err(err).Str("url", fullURL).Msg("Request timed out, outcome unknown")
				return lastErr
			}
			c.logger.Warn().Err(err).Int("attempt", attempt+1).Str("url", fullURL).Msg("Request failed, retrying")
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if readErr != nil {
				lastErr = &TransportError{Timeout: isTimeout(readErr), Err: readErr}
				continue
			}
			if response != nil && len(respBody) > 0 {
				if err := json.Unmarshal(respBody, response); err != nil {
					return fmt.Errorf("failed to unmarshal response: %w", err)
				}
			}
			return nil
		}

		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			lastErr = httpErr
			c.logger.Warn().Int("status", resp.StatusCode).Int("attempt", attempt+1).Str("url", fullURL).Msg("Server error, retrying")
			continue
		}

		// Client errors (4xx) - don't retry
		return httpErr
	}

	c.logger.Error().Err(lastErr).Str("url", fullURL).Int("max_retries", c.maxRetries).Msg("Request failed after all retries")
	return lastErr
}
