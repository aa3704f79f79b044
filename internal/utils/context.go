// Package utils provides general-purpose helpers shared by the client and the
// reference ledger server: typed context keys, keyed hashing, JSON response
// writing, the resty client wrapper, JWT issuing and parsing, and UUIDs.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the int64 ID of the authenticated caller.
	UserIDCtxKey = contextKey("userID")

	// TraceIDCtxKey holds the request trace ID string.
	TraceIDCtxKey = contextKey("traceID")
)

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the caller ID stored by WithUserID. ok is
// false if the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace ID or "".
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
