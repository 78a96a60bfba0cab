package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"payment_method_gateway/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "payment_method_gateway/httpclient"

// Client talks JSON to the processor. Outbound keys are snake_cased and inbound keys
// camelCased so callers only ever see in-memory naming.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	config     Config
	tracer     trace.Tracer
	logger     *zap.Logger
}

var _ interfaces.IHTTPClient = (*Client)(nil)

func New(cfg Config, logger *zap.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	parsed, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("httpclient: parse base url: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Transport: cfg.Transport,
			Timeout:   cfg.Timeout,
		},
		baseURL: parsed,
		config:  cfg,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body map[string]any) (map[string]any, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body map[string]any) (map[string]any, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (map[string]any, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body map[string]any) (map[string]any, error) {
	ctx, span := c.tracer.Start(ctx, "processor "+method, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", stripQuery(path)),
		))
	defer span.End()

	resp, status, err := c.roundTrip(ctx, method, path, body)
	if status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("[processor][http] request failed",
			zap.String("method", method), zap.String("path", path), zap.Int("status", status), zap.Error(err))
		return nil, err
	}
	c.logger.Debug("[processor][http] request done",
		zap.String("method", method), zap.String("path", path), zap.Int("status", status))
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body map[string]any) (map[string]any, int, error) {
	req, err := c.buildRequest(ctx, method, path, body)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return nil, 0, NewTimeoutError(err)
		}
		return nil, 0, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, raw); classErr != nil {
		return nil, resp.StatusCode, classErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, resp.StatusCode, nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, resp.StatusCode, NewUnexpectedError(resp.StatusCode, raw, fmt.Errorf("decode response: %w", err))
	}
	camel, _ := CamelizeKeys(decoded).(map[string]any)
	return camel, resp.StatusCode, nil
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body map[string]any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(UnderscoreKeys(body))
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-ApiVersion", c.config.APIVersion)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.config.PublicKey, c.config.PrivateKey)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return req, nil
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
