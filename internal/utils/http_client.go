package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// TraceIDHeader carries the request trace identifier between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient embeds *resty.Client and stamps every outgoing request with a
// trace ID (taken from the request context, or freshly generated).
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient rooted at baseURL. A zero timeout
// leaves resty's default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(TraceIDHeader) != "" {
			return nil
		}
		traceID := GetTraceIDFromContext(req.Context())
		if traceID == "" {
			traceID = NewTraceID()
		}
		req.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	return &HTTPClient{Client: client}
}

// NewTraceID returns a time-ordered UUID string.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
