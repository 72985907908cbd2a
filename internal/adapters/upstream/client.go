package upstream

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"widgets-api/internal/metrics"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// ClientConfig configures a provider client
type ClientConfig struct {
	Provider   string
	HTTPClient *http.Client
	Timeout    time.Duration
	Metrics    *metrics.Manager
}

// Client performs single, unretried requests against one provider
type Client struct {
	provider   string
	httpClient *http.Client
	metrics    *metrics.Manager
}

// Response is a fully read upstream response
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is 2xx
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewClient creates a provider client
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		provider:   cfg.Provider,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
	}
}

// Provider returns the provider name used in logs, metrics and errors
func (c *Client) Provider() string {
	return c.provider
}

// Do sends req and reads the whole body. Any received response is returned
// without error regardless of status; errors mean no usable response.
func (c *Client) Do(ctx context.Context, op string, req *http.Request) (*Response, error) {
	req = req.WithContext(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, req, 0, start, err)
		return nil, errors.Mark(errors.Wrapf(err, "%s %s", c.provider, op), ErrTransport)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logrus.WithError(closeErr).Warn("close upstream response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.observe(op, req, resp.StatusCode, start, err)
		return nil, errors.Mark(errors.Wrapf(err, "%s %s: read response body", c.provider, op), ErrTransport)
	}

	c.observe(op, req, resp.StatusCode, start, nil)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// DecodeJSON unmarshals a provider payload into target
func (c *Client) DecodeJSON(op string, body []byte, target any) error {
	if len(body) == 0 {
		return errors.Wrapf(ErrEmptyPayload, "%s %s", c.provider, op)
	}
	if err := sonic.Unmarshal(body, target); err != nil {
		return errors.Mark(errors.Wrapf(err, "%s %s: decode payload", c.provider, op), ErrInvalidBody)
	}
	return nil
}

func (c *Client) observe(op string, req *http.Request, statusCode int, start time.Time, err error) {
	latency := time.Since(start)
	c.metrics.RecordUpstream(c.provider, op, statusCode, latency)

	fields := logrus.Fields{
		"provider":    c.provider,
		"operation":   op,
		"method":      req.Method,
		"host":        req.URL.Host,
		"status_code": statusCode,
		"latency_ms":  float64(latency.Nanoseconds()) / 1000000,
	}

	switch {
	case err != nil:
		logrus.WithFields(fields).WithError(err).Error("Upstream request failed")
	case statusCode >= 400:
		logrus.WithFields(fields).Warn("Upstream returned error status")
	default:
		logrus.WithFields(fields).Debug("Upstream request completed")
	}
}
