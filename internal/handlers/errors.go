package handlers

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"widgets-api/internal/adapters/upstream"
	"widgets-api/internal/services"
	"widgets-api/pkg/lambda"
)

const (
	contentTypeJSON     = "application/json"
	contentTypeFallback = "text/plain; charset=utf-8"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// jsonResponse encodes v as the body of a response with the given status
func jsonResponse(status int, v interface{}) *lambda.Response {
	body, err := sonic.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("Failed to encode response body")
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       body,
	}
}

// errorToResponse translates a service error into a response.
//
//   - configuration errors become 500 with their fixed message
//   - upstream non-2xx replies are forwarded with their status and raw body
//   - everything else becomes 500 with the error text
func errorToResponse(operation string, err error) *lambda.Response {
	fields := logrus.Fields{"operation": operation}

	if configErr, ok := services.AsConfigError(err); ok {
		logrus.WithFields(fields).Error(configErr.Message)
		return jsonResponse(http.StatusInternalServerError, ErrorResponse{Error: configErr.Message})
	}

	if upstreamErr, ok := upstream.AsUpstreamError(err); ok {
		fields["provider"] = upstreamErr.Provider
		fields["status_code"] = upstreamErr.StatusCode
		logrus.WithFields(fields).Warn("Forwarding upstream error response")

		contentType := upstreamErr.ContentType
		if contentType == "" {
			contentType = contentTypeFallback
		}
		return &lambda.Response{
			StatusCode: upstreamErr.StatusCode,
			Headers:    map[string]string{"Content-Type": contentType},
			Body:       upstreamErr.Body,
		}
	}

	logrus.WithFields(fields).WithError(err).Error("Request failed")
	return jsonResponse(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
