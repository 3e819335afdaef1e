// Package rest implements the video store gateway over its HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/clipcast/client/pkg/ctxlogger"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// RequestsPerSecond caps outgoing calls. Zero disables the limiter.
	RequestsPerSecond float64
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewClient(cfg *Config, logger *slog.Logger) *Client {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		limiter:    limiter,
		logger:     logger,
	}
}

// do performs one request against the remote store. The caller passes a nil
// out to discard the response body. Any transport or status failure is
// returned raw, conversion to the uniform gateway error happens in the
// entity methods.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	requestId := uuid.NewString()
	ctx = ctxlogger.AppendCtx(ctx, slog.String("request_id", requestId))

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-Id", requestId)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.DebugContext(ctx, "gateway request", "method", method, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	// A *json.RawMessage caller gets the body verbatim, valid JSON or not:
	// the list endpoints tolerate malformed bodies and must not see a
	// decode failure dressed up as a transport one.
	if rawOut, ok := out.(*json.RawMessage); ok {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		*rawOut = data
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
