// Package utils holds small helpers shared by the client and the server:
// context keys, clocks, observable values, JWT handling, HTTP helpers and
// the local network link check.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated diary owner (int64).
	UserIDCtxKey = contextKey("userID")
	// TraceIDCtxKey stores the request trace identifier (string).
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext returns the authenticated user ID, if any.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace ID carried by ctx, or "".
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
