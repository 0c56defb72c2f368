package server

import (
	"context"

	"courier/errors"
	pb "courier/proto/account"
	"courier/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	authService services.IAuthService
}

// NewAuthServer creates the gRPC server for authentication.
func NewAuthServer(authService services.IAuthService) *AuthServer {
	return &AuthServer{authService: authService}
}

// Register handles user registration by validating input, hashing the
// password and issuing a token.
func (s *AuthServer) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	session, err := s.authService.Register(ctx, in.GetUsername(), in.GetDisplayName(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toAuthResponse(session), nil
}

// Login verifies credentials and returns a session token.
func (s *AuthServer) Login(ctx context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	session, err := s.authService.Login(ctx, in.GetUsername(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toAuthResponse(session), nil
}

func toAuthResponse(session services.Session) *pb.AuthResponse {
	return &pb.AuthResponse{
		Token: session.Token,
		User: &pb.UserSummary{
			UserId:      session.User.ID.String(),
			Username:    session.User.Username,
			DisplayName: session.User.DisplayName,
			Presence:    string(session.User.Presence),
		},
	}
}
