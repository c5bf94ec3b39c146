package auth

import (
	"context"

	"google.golang.org/grpc/metadata"
)

type ctxKey struct{}

const OwnerMetadataKey = "x-owner-id"

// WithOwnerID attaches the caller's household to ctx.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ownerID)
}

// GetOwnerID returns the household the caller acts for, or "" when the
// request carries no identity.
func GetOwnerID(ctx context.Context) string {
	if val, ok := ctx.Value(ctxKey{}).(string); ok && val != "" {
		return val
	}

	// Fallback to metadata
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(OwnerMetadataKey); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
