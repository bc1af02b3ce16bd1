package logging

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}
type clientKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID extracts the request ID set by the request middleware.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// WithClient stores the hashed client address for diagnostics.
func WithClient(ctx context.Context, hashed string) context.Context {
	return context.WithValue(ctx, clientKey{}, hashed)
}

func Client(ctx context.Context) string {
	if c, ok := ctx.Value(clientKey{}).(string); ok {
		return c
	}
	return ""
}

// Fields returns the request-scoped zap fields present in ctx.
func Fields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if rid := RequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if c := Client(ctx); c != "" {
		fields = append(fields, zap.String("client", c))
	}
	return fields
}
