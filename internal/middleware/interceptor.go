package middleware

import (
	"context"

	"github.com/fekuna/household-pantry-service/internal/auth"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ContextInterceptor moves the owner id from request metadata into the
// context so handlers and use cases read it through auth.GetOwnerID.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if val := md.Get(auth.OwnerMetadataKey); len(val) > 0 && val[0] != "" {
				ctx = auth.WithOwnerID(ctx, val[0])
			}
		}
		return handler(ctx, req)
	}
}

// RateLimitInterceptor rejects calls once the shared token bucket is empty.
func RateLimitInterceptor(rps float64, burst int) grpc.UnaryServerInterceptor {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !limiter.Allow() {
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}
