package transport

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client performs the read-only requests apiwiki makes against the
// directory and codegen servers.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithRateLimit caps outbound requests per second. Zero or less disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		userAgent: constants.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do waits for the rate limiter, sets common headers and sends req.
// Timeouts wrap errors.ErrTimeout and cancellation wraps errors.ErrCanceled.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, classify(ctx, err)
		}
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Method == http.MethodGet {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		return nil, classify(ctx, err)
	}
	return resp, nil
}

// classify tags deadline and cancellation failures with the matching sentinel.
func classify(ctx context.Context, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", errors.ErrTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", errors.ErrTimeout, err)
	}
	return err
}

// GetJSON fetches url and decodes the JSON body into target.
func (c *Client) GetJSON(ctx context.Context, server, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapResource("create", "request", "GET "+url, err)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return &errors.APIError{
			Server:   server,
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}

	return DecodeResponse(ctx, resp, server, target)
}

// Head issues a HEAD request. A response with an error status is closed and
// reported as an *errors.APIError carrying the status code, so callers can
// tell HTTP errors apart from network failures. Only the headers of the
// returned response are meaningful; its body is already closed.
func (c *Client) Head(ctx context.Context, server, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "HEAD "+url, err)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, &errors.APIError{
			Server:   server,
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		_ = resp.Body.Close()
		apiErr := errors.NewAPIError(server, resp.StatusCode, http.StatusText(resp.StatusCode))
		apiErr.Endpoint = url
		return nil, apiErr
	}
	_ = resp.Body.Close()

	return resp, nil
}
