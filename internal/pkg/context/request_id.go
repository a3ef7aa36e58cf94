// Package context carries request-scoped values between the HTTP middleware,
// the logger and the services.
package context

import "context"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	userIDKey
	roleKey
)

// WithRequestID stores the id assigned by the request-id middleware.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns "" when no id was assigned.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
