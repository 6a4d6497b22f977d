package ctxutil

import (
	"context"

	"github.com/heartmarshall/catgateway/internal/domain"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
	clientKeyKey ctxKey = "client_key"
)

// WithCaller stores the authenticated caller in the context.
func WithCaller(ctx context.Context, c *domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromCtx extracts the caller from the context.
// Returns nil and false for anonymous requests.
func CallerFromCtx(ctx context.Context) (*domain.Caller, bool) {
	c, ok := ctx.Value(callerKey).(*domain.Caller)
	if !ok || c == nil || c.ID == "" {
		return nil, false
	}
	return c, true
}

// UserIDFromCtx returns the caller's id, or "" for anonymous requests.
func UserIDFromCtx(ctx context.Context) string {
	c, ok := CallerFromCtx(ctx)
	if !ok {
		return ""
	}
	return c.ID
}

// IsAdminCtx reports whether the context carries an admin caller.
func IsAdminCtx(ctx context.Context) bool {
	c, ok := CallerFromCtx(ctx)
	return ok && c.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientKey stores the per-connection key used to identify anonymous callers.
func WithClientKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, clientKeyKey, key)
}

// ClientKeyFromCtx extracts the per-connection key. Returns "" if absent.
func ClientKeyFromCtx(ctx context.Context) string {
	key, _ := ctx.Value(clientKeyKey).(string)
	return key
}
