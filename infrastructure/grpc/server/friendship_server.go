package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"courier/auth"
	"courier/domain"
	"courier/errors"
	pb "courier/proto/messaging"
	"courier/services"
)

type FriendshipServer struct {
	pb.UnimplementedFriendshipServiceServer
	friendshipService services.IFriendshipService
	userService       services.IUserService
}

func NewFriendshipServer(friendshipService services.IFriendshipService,
	userService services.IUserService) *FriendshipServer {
	return &FriendshipServer{friendshipService: friendshipService, userService: userService}
}

func (s *FriendshipServer) SendRequest(ctx context.Context, in *pb.SendFriendRequest) (*pb.FriendshipEdgeResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	edge, err := s.friendshipService.SendRequest(ctx, callerID, in.GetAddresseeUsername())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toEdgeResponse(edge), nil
}

func (s *FriendshipServer) Accept(ctx context.Context, in *pb.EdgeActionRequest) (*pb.FriendshipEdgeResponse, error) {
	return s.transition(ctx, in.GetEdgeId(), s.friendshipService.Accept)
}

func (s *FriendshipServer) Block(ctx context.Context, in *pb.EdgeActionRequest) (*pb.FriendshipEdgeResponse, error) {
	return s.transition(ctx, in.GetEdgeId(), s.friendshipService.Block)
}

func (s *FriendshipServer) transition(ctx context.Context, rawEdgeID string,
	action func(ctx context.Context, edgeID, actorID uuid.UUID) (domain.FriendshipEdge, error)) (*pb.FriendshipEdgeResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	edgeID, err := uuid.Parse(rawEdgeID)
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrEdgeNotFound)
	}
	edge, err := action(ctx, edgeID, callerID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return s.resolve(ctx, edge)
}

func (s *FriendshipServer) Remove(ctx context.Context, in *pb.EdgeActionRequest) (*pb.RemoveResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	edgeID, err := uuid.Parse(in.GetEdgeId())
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrEdgeNotFound)
	}
	if err := s.friendshipService.CancelOrRemove(ctx, edgeID, callerID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RemoveResponse{Success: true}, nil
}

func (s *FriendshipServer) ListEdges(ctx context.Context, in *pb.ListEdgesRequest) (*pb.ListEdgesResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	var filter *domain.FriendshipStatus
	if in.GetStatus() != "" {
		status := domain.FriendshipStatus(in.GetStatus())
		if !status.Valid() {
			return nil, errors.MapToGRPCError(errors.InvalidContent("unknown friendship status"))
		}
		filter = &status
	}
	edges, err := s.friendshipService.ListEdges(ctx, callerID, filter)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListEdgesResponse{
		Edges: lo.Map(edges, func(e domain.EdgeWithUsers, _ int) *pb.FriendshipEdgeResponse { return toEdgeResponse(e) }),
	}, nil
}

// resolve attaches both user summaries to a bare edge for the response.
func (s *FriendshipServer) resolve(ctx context.Context, edge domain.FriendshipEdge) (*pb.FriendshipEdgeResponse, error) {
	requester, err := s.userService.Get(ctx, edge.RequesterID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	addressee, err := s.userService.Get(ctx, edge.AddresseeID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toEdgeResponse(domain.EdgeWithUsers{
		Edge:      edge,
		Requester: requester,
		Addressee: addressee,
	}), nil
}
