package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/google/uuid"

	"github.com/device-management-toolkit/storefront/pkg/logger"
)

const (
	// HeaderCorrelationID is set on every outbound request.
	HeaderCorrelationID = "X-Correlation-Id"
	// HeaderSessionID carries an explicit session token when one is known.
	HeaderSessionID = "X-Openerp-Session-Id"

	_defaultTimeout = 30 * time.Second
	_maxBodyBytes   = 32 << 20
)

var (
	ErrInvalidResponse = errors.New("invalid json-rpc response")
	ErrIDMismatch      = errors.New("json-rpc response id does not match request id")
)

// Client posts envelopes over HTTP. The underlying http.Client keeps a cookie
// jar so servers that track the session by cookie keep working across calls.
type Client struct {
	http     *http.Client
	nextID   func() int
	log      logger.Interface
	timeout  time.Duration
	injected bool
}

// Option -.
type Option func(*Client)

// WithHTTPClient replaces the transport client (tests, custom TLS).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
		c.injected = true
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithIDSource overrides the random correlation id generator.
func WithIDSource(next func() int) Option {
	return func(c *Client) {
		c.nextID = next
	}
}

// WithLogger -.
func WithLogger(l logger.Interface) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient -.
func NewClient(opts ...Option) *Client {
	c := &Client{
		nextID:  randomID,
		timeout: _defaultTimeout,
		log:     logger.New("info"),
	}

	for _, opt := range opts {
		opt(c)
	}

	if !c.injected {
		jar, _ := cookiejar.New(nil)
		c.http = &http.Client{Jar: jar, Timeout: c.timeout}
	}

	return c
}

func randomID() int {
	return rand.IntN(MaxRequestID) //nolint:gosec // correlation id, not a secret
}

// Call posts params to url and decodes the envelope. A nil error means the
// server answered with a well formed envelope; the caller inspects
// Response.Error. Any failure to reach the server or to decode its answer is
// returned as an error.
func (c *Client) Call(ctx context.Context, url string, params interface{}, sessionToken string) (*Response, error) {
	req := NewRequest(params, c.nextID())

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("jsonrpc - encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("jsonrpc - build request: %w", err)
	}

	correlationID := correlationIDFrom(ctx)

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderCorrelationID, correlationID)

	if sessionToken != "" {
		httpReq.Header.Set(HeaderSessionID, sessionToken)
	}

	start := time.Now()

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("jsonrpc - post %s: %w", url, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, _maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("jsonrpc - read response: %w", err)
	}

	c.log.Debug("jsonrpc - call %s id=%d correlation=%s status=%d took=%s",
		url, req.ID, correlationID, httpResp.StatusCode, time.Since(start))

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: status %d: %w", ErrInvalidResponse, httpResp.StatusCode, err)
	}

	if resp.Error == nil && resp.Result == nil {
		return nil, fmt.Errorf("%w: status %d: neither result nor error present", ErrInvalidResponse, httpResp.StatusCode)
	}

	if resp.ID != nil && *resp.ID != req.ID {
		return nil, fmt.Errorf("%w: sent %d, got %d", ErrIDMismatch, req.ID, *resp.ID)
	}

	return &resp, nil
}

type correlationKey struct{}

// WithCorrelationID returns a context whose outbound calls reuse id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func correlationIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(correlationKey{}).(string); ok && v != "" {
		return v
	}

	return uuid.NewString()
}
