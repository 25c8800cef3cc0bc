// Package api implements the HTTP transport the resource stores talk
// through: a resty-backed client that injects the bearer token, retries
// idempotent reads, pins itself to a reachable endpoint, and collapses every
// HTTP outcome into the domain error taxonomy.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
	"github.com/workerhousing/housing-client/internal/metrics"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 3
)

// Options configures a Client.
type Options struct {
	BaseURL      string
	FallbackURLs []string
	Timeout      time.Duration
	RetryCount   int
	Tokens       ports.TokenStore
	Logger       zerolog.Logger
}

// Client is the concrete ports.Transport. One instance is shared by every
// store; it is safe for concurrent use.
type Client struct {
	http      *resty.Client
	tokens    ports.TokenStore
	fallbacks []string
	log       zerolog.Logger
}

var _ ports.Transport = (*Client)(nil)

// New builds a Client pinned to opts.BaseURL. Call Probe (typically in a
// goroutine) to re-pin to the first reachable endpoint; requests may be
// issued before the probe settles.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	retries := opts.RetryCount
	if retries <= 0 {
		retries = defaultRetryCount
	}

	c := &Client{
		tokens:    opts.Tokens,
		fallbacks: opts.FallbackURLs,
		log:       opts.Logger,
	}

	c.http = resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only connectivity failures on idempotent reads are retried;
			// mutations must reach the server at most once.
			return err != nil && r != nil && r.Request.Method == http.MethodGet
		}).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if token := c.tokens.Token(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
			return nil
		})

	return c
}

// BaseURL returns the endpoint the client is currently pinned to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

func (c *Client) Get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, query)
}

func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, query map[string]string) ([]byte, error) {
	start := time.Now()

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "network_error").Inc()
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed before reaching server")
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	if resp.IsSuccess() {
		metrics.RequestsTotal.WithLabelValues(method, "ok").Inc()
		return resp.Body(), nil
	}

	mapped := c.statusError(resp)
	metrics.RequestsTotal.WithLabelValues(method, outcomeLabel(mapped)).Inc()
	c.log.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Err(mapped).
		Msg("request rejected")
	return nil, mapped
}

// statusError maps a non-2xx response onto the domain error taxonomy.
func (c *Client) statusError(resp *resty.Response) error {
	body := resp.Body()
	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		// Token is dead; drop it so the next action forces a re-login.
		if err := c.tokens.Clear(); err != nil {
			c.log.Warn().Err(err).Msg("failed to clear stored token")
		}
		return domain.ErrUnauthorized
	case http.StatusBadRequest:
		return &domain.ValidationError{Fields: fieldErrors(body)}
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		msg := gjson.GetBytes(body, "message").String()
		if msg == "" {
			msg = gjson.GetBytes(body, "error").String()
		}
		return &domain.ServerError{Status: resp.StatusCode(), Message: msg}
	}
}

// fieldErrors pulls server-supplied validation errors out of a 400 body.
// Both shapes in the wild are accepted: {"errors":{"field":"msg"}} and
// {"errors":[{"field":"f","message":"msg"}]}.
func fieldErrors(body []byte) map[string]string {
	fields := make(map[string]string)
	errs := gjson.GetBytes(body, "errors")
	switch {
	case errs.IsObject():
		errs.ForEach(func(key, value gjson.Result) bool {
			fields[key.String()] = value.String()
			return true
		})
	case errs.IsArray():
		errs.ForEach(func(_, value gjson.Result) bool {
			field := value.Get("field").String()
			if field == "" {
				field = value.Get("param").String()
			}
			if field != "" {
				fields[field] = value.Get("message").String()
			}
			return true
		})
	}
	return fields
}

func outcomeLabel(err error) string {
	switch err.(type) {
	case *domain.ValidationError:
		return "validation"
	case *domain.ServerError:
		return "server_error"
	}
	switch err {
	case domain.ErrUnauthorized:
		return "unauthorized"
	case domain.ErrNotFound:
		return "not_found"
	}
	return "server_error"
}
