package upstream

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Common upstream error types
var (
	ErrTransport    = errors.New("upstream request failed")
	ErrInvalidBody  = errors.New("invalid upstream payload")
	ErrEmptyPayload = errors.New("empty upstream payload")
)

// UpstreamError is a non-2xx reply from a provider. It is forwarded to the
// caller as-is: same status code, same body.
type UpstreamError struct {
	Provider    string // Provider name (e.g. "spotify")
	Op          string // Operation that failed (e.g. "token")
	StatusCode  int
	Body        []byte
	ContentType string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Provider, e.Op, e.StatusCode)
}

// NewUpstreamError creates an UpstreamError from a received response
func NewUpstreamError(provider, op string, resp *Response) *UpstreamError {
	return &UpstreamError{
		Provider:    provider,
		Op:          op,
		StatusCode:  resp.StatusCode,
		Body:        resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
	}
}

// AsUpstreamError extracts an UpstreamError from an error chain
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}

// IsTransport returns true if the request never produced a response
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
