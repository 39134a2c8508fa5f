// Package httpx is the shared HTTP transport for upstream content
// providers: GET with timeout, transport-level retry and uniform errors.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/albayan/bayan/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Bayan/1.0"
)

// Options configures a Client.
type Options struct {
	Timeout  time.Duration
	Attempts uint          // total tries per request, at least 1
	Delay    time.Duration // base delay between tries
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.Code, e.URL)
}

// Retryable reports whether the upstream may answer differently on retry.
func (e *StatusError) Retryable() bool {
	return e.Code >= 500 || e.Code == http.StatusTooManyRequests
}

// Client performs GET requests against upstream providers.
// Every error it returns wraps domain.ErrUpstreamFetchFailed.
type Client struct {
	httpClient *http.Client
	attempts   uint
	delay      time.Duration
	logger     *slog.Logger
}

// New creates a Client.
func New(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	// retry-go treats zero attempts as "forever"
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		attempts:   opts.Attempts,
		delay:      opts.Delay,
		logger:     logger,
	}
}

// Get fetches url and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			b, err := c.do(ctx, url)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying upstream request", "url", url, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFetchFailed, err)
	}
	return body, nil
}

// GetJSON fetches url and decodes the JSON body into dest.
func (c *Client) GetJSON(ctx context.Context, url string, dest interface{}) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "url", url, "error", err, "bodyLen", len(body))
		return fmt.Errorf("%w: failed to parse response from %s: %w", domain.ErrUpstreamFetchFailed, url, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("upstream request", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	return body, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Retryable()
	}
	return true
}
