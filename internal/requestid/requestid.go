// Package requestid carries the X-Request-ID of an inbound console request
// through context so outbound backend calls can forward it.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the standard header name used to propagate request IDs.
const Header = "X-Request-ID"

type ctxKey struct{}

// New generates a fresh request ID.
func New() string { return uuid.NewString() }

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
