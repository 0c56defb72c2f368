package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Methods that do not require a bearer token.
var publicMethods = map[string]struct{}{
	"/courier.v1.AuthService/Register": {},
	"/courier.v1.AuthService/Login":    {},
}

type contextKey string

const userIDKey contextKey = "user_id"

// CallerID returns the authenticated user injected by the interceptor.
func CallerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// WithCallerID injects a caller identity; used by tests and by the stream
// interceptor.
func WithCallerID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UnaryInterceptor resolves the bearer credential to a user id and threads
// it through the context. Every service operation takes the caller
// explicitly; there is no ambient session state.
func UnaryInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}
	userID, err := callerFromMetadata(ctx)
	if err != nil {
		return nil, err
	}
	return handler(WithCallerID(ctx, userID), req)
}

// StreamInterceptor authenticates long-lived subscription streams.
func StreamInterceptor(srv any, ss grpc.ServerStream,
	info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	userID, err := callerFromMetadata(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &authenticatedStream{ServerStream: ss, userID: userID})
}

type authenticatedStream struct {
	grpc.ServerStream
	userID uuid.UUID
}

func (s *authenticatedStream) Context() context.Context {
	return WithCallerID(s.ServerStream.Context(), s.userID)
}

func callerFromMetadata(ctx context.Context) (uuid.UUID, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return uuid.Nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}
	tokenStr := strings.TrimPrefix(values[0], "Bearer ")
	userID, err := ValidateToken(tokenStr)
	if err != nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return userID, nil
}
