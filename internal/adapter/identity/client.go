// Package identity is the HTTP client for the remote identity service that
// owns users and issues tokens.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/catgateway/internal/config"
	"github.com/heartmarshall/catgateway/internal/domain"
	"github.com/heartmarshall/catgateway/internal/metrics"
	"github.com/heartmarshall/catgateway/pkg/ctxutil"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// requestIDHeader correlates gateway and identity service logs.
const requestIDHeader = "X-Request-Id"

// Client calls the identity service. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	userAgent  string

	// configErr is set once at construction and returned by every call.
	configErr error
}

// Option customizes a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header sent on every call.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client from IdentityConfig. An empty or malformed base
// URL does not fail construction: the client is returned and every call
// fails with domain.ErrMisconfigured.
func NewClient(cfg config.IdentityConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "identity"),
	}
	for _, opt := range opts {
		opt(c)
	}

	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		c.configErr = fmt.Errorf("identity: %w: %w", domain.ErrMisconfigured, err)
		c.log.Warn("identity service is not configured", slog.String("error", err.Error()))
		return c
	}
	c.baseURL = base

	return c
}

// Configured reports whether the base URL was usable. When it is false every
// call fails with domain.ErrMisconfigured.
func (c *Client) Configured() bool {
	return c.configErr == nil
}

func parseBaseURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errors.New("base url is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base url %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url %q has no host", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// errorBody is the shape of a failed identity service response.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	if len(b.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(b.Error, &s); err == nil {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}

// do performs one JSON request. body may be nil; out may be nil when the
// response is not needed. A non-empty token is sent as a bearer credential.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	if c.configErr != nil {
		return c.configErr
	}

	start := time.Now()
	status := "error"
	defer func() {
		metrics.RecordIdentityCall(op, status, time.Since(start).Seconds())
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("identity.%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("identity.%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		req.Header.Set(requestIDHeader, id)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.DebugContext(ctx, "identity request", slog.String("op", op), slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("identity.%s: %w", op, err)
		}
		upErr := transportError(err)
		status = strconv.Itoa(upErr.Status)
		c.log.WarnContext(ctx, "identity request failed",
			slog.String("op", op),
			slog.Int("status", upErr.Status),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("identity.%s: %w", op, upErr)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upErr := statusError(resp)
		c.log.WarnContext(ctx, "identity request rejected",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
			slog.String("message", upErr.Message),
		)
		return fmt.Errorf("identity.%s: %w", op, upErr)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("identity.%s: %w", op,
			domain.NewUpstreamError(http.StatusBadGateway, "invalid response from identity service"))
	}

	return nil
}

// transportError classifies a failed round trip: timeouts become 504, every
// other network failure 502.
func transportError(err error) *domain.UpstreamError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewUpstreamError(http.StatusGatewayTimeout, "identity service timed out")
	}
	return domain.NewUpstreamError(http.StatusBadGateway, "identity service unreachable")
}

func statusError(resp *http.Response) *domain.UpstreamError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		return domain.NewUpstreamError(resp.StatusCode, eb.text())
	}
	return domain.NewUpstreamError(resp.StatusCode, "")
}
