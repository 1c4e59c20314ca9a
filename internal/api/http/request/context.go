package request

import "context"

type connIDKey struct{}

// WithConnID stores the connection identifier in ctx.
func WithConnID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, connIDKey{}, id)
}

// ConnIDFromContext returns the connection identifier, if any.
func ConnIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(connIDKey{}).(string)
	return id, ok
}
