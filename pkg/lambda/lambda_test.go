package lambda

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

// TestFromAPIGateway verifies event conversion
func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		Path:                  "/.netlify/functions/la-liga-standings",
		QueryStringParameters: map[string]string{"top": "3"},
		Body:                  "",
		RequestContext:        events.APIGatewayProxyRequestContext{RequestID: "req-1"},
	}

	req := FromAPIGateway(event)
	if req.Method != "GET" {
		t.Errorf("Expected method GET, got %s", req.Method)
	}
	if req.Query("top") != "3" {
		t.Errorf("Expected top=3, got %q", req.Query("top"))
	}
	if req.Query("missing") != "" {
		t.Errorf("Expected empty value for missing parameter")
	}
	if req.RequestID != "req-1" {
		t.Errorf("Expected request id req-1, got %s", req.RequestID)
	}
}

// TestRequestQuery_NilParams verifies absent query strings are tolerated
func TestRequestQuery_NilParams(t *testing.T) {
	req := FromAPIGateway(events.APIGatewayProxyRequest{})
	if req.Query("top") != "" {
		t.Error("Expected empty value when no query string was sent")
	}

	var nilReq *Request
	if nilReq.Query("top") != "" {
		t.Error("Expected empty value on nil request")
	}
}

// TestAdapt verifies responses are converted and failures become 500
func TestAdapt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := Adapt("test", func(ctx context.Context, req *Request) (*Response, error) {
			if req.RequestID == "" {
				t.Error("Expected a generated request id")
			}
			return &Response{
				StatusCode: 400,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       []byte(`{"error":"invalid_grant"}`),
			}, nil
		})

		resp, err := h(context.Background(), events.APIGatewayProxyRequest{})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if resp.StatusCode != 400 {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
		if resp.Body != `{"error":"invalid_grant"}` {
			t.Errorf("Unexpected body: %s", resp.Body)
		}
	})

	t.Run("HandlerError", func(t *testing.T) {
		h := Adapt("test", func(ctx context.Context, req *Request) (*Response, error) {
			return nil, errors.New("boom")
		})

		resp, err := h(context.Background(), events.APIGatewayProxyRequest{})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if resp.StatusCode != 500 {
			t.Errorf("Expected status 500, got %d", resp.StatusCode)
		}
	})
}
