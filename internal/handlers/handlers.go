package handlers

import (
	"github.com/gin-gonic/gin"

	"widgets-api/internal/middleware"
	"widgets-api/pkg/lambda"
)

// requestFromGin converts a gin request into the framework-agnostic form
// so both the local server and the Lambda entrypoints share one code path.
func requestFromGin(c *gin.Context) *lambda.Request {
	query := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	headers := make(map[string]string)
	for key := range c.Request.Header {
		headers[key] = c.Request.Header.Get(key)
	}

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		RequestID:   c.GetString(middleware.RequestIDKey),
	}
}

// writeResponse writes a framework-agnostic response through gin
func writeResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		if key == "Content-Type" {
			continue
		}
		c.Header(key, value)
	}

	contentType := resp.ContentType()
	if contentType == "" {
		contentType = contentTypeFallback
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}
