package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"courier/auth"
	"courier/domain"
	"courier/errors"
	pb "courier/proto/account"
	"courier/services"
)

type UserServer struct {
	pb.UnimplementedUserServiceServer
	userService services.IUserService
}

func NewUserServer(userService services.IUserService) *UserServer {
	return &UserServer{userService: userService}
}

func (s *UserServer) GetProfile(ctx context.Context, in *pb.GetProfileRequest) (*pb.UserSummary, error) {
	if _, ok := auth.CallerID(ctx); !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	userID, err := uuid.Parse(in.GetUserId())
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrUserNotFound)
	}
	summary, err := s.userService.Get(ctx, userID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toUserSummary(summary), nil
}

func (s *UserServer) SearchUsers(ctx context.Context, in *pb.SearchUsersRequest) (*pb.SearchUsersResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	summaries, err := s.userService.SearchUsers(ctx, callerID, in.GetPrefix(), int(in.GetLimit()))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchUsersResponse{
		Users: lo.Map(summaries, func(s domain.Summary, _ int) *pb.UserSummary { return toUserSummary(s) }),
	}, nil
}

func (s *UserServer) UpdatePresence(ctx context.Context, in *pb.UpdatePresenceRequest) (*pb.UpdatePresenceResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	if err := s.userService.UpdatePresence(ctx, callerID, domain.Presence(in.GetPresence())); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.UpdatePresenceResponse{Success: true}, nil
}

func toUserSummary(summary domain.Summary) *pb.UserSummary {
	return &pb.UserSummary{
		UserId:      summary.ID.String(),
		Username:    summary.Username,
		DisplayName: summary.DisplayName,
		Presence:    string(summary.Presence),
	}
}
