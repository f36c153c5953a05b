// Package api is the HTTP client for the storefront REST API. It is the
// concrete side of the ports the domain packages declare (cart.RemoteCart,
// catalog.API, session.API, checkout.API).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sportshop-client/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultTimeout = 15 * time.Second

// Outbound budget, matching the server's frontend tier so a busy client
// never trips the server-side limiter.
const (
	outboundLimit = rate.Limit(20)
	outboundBurst = 40
)

// TokenSource supplies the bearer credential attached to every request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		limiter:    rate.NewLimiter(outboundLimit, outboundBurst),
	}
}

// do runs one JSON round trip: marshal body, attach headers and bearer
// token, check status, decode into out (skipped when out is nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	requestID := uuid.NewString()
	log := logger.FromCtx(ctx).With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			log.Error("failed to marshal request body", zap.Error(err))
			return err
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed", zap.Error(err))
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error("server returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if out != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			log.Error("failed decoding response", zap.Error(err))
			return fmt.Errorf("api: decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}
