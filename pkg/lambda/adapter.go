package lambda

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// APIGatewayHandler is the signature awslambda.Start expects for proxy events
type APIGatewayHandler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Adapt wraps a framework-agnostic handler for API Gateway proxy events.
// Handler errors become a bare 500 so the runtime never sees a failed invocation.
func Adapt(name string, h HandlerFunc) APIGatewayHandler {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		start := time.Now()
		req := FromAPIGateway(event)
		if req.RequestID == "" {
			req.RequestID = uuid.New().String()
		}

		resp, err := h(ctx, req)
		if err != nil || resp == nil {
			logrus.WithFields(logrus.Fields{
				"function":   name,
				"request_id": req.RequestID,
			}).WithError(err).Error("Handler failed")
			resp = InternalError()
		}

		logrus.WithFields(logrus.Fields{
			"function":    name,
			"request_id":  req.RequestID,
			"status_code": resp.StatusCode,
			"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1000000,
		}).Info("Invocation completed")

		return resp.ToAPIGateway(), nil
	}
}

// InternalError is the response used when no handler response is available
func InternalError() *Response {
	return &Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"error":"Internal server error"}`),
	}
}
