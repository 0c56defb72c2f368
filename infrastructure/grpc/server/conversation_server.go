package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"courier/auth"
	"courier/errors"
	pb "courier/proto/messaging"
	"courier/services"
)

type ConversationServer struct {
	pb.UnimplementedConversationServiceServer
	conversationService services.IConversationService
}

func NewConversationServer(conversationService services.IConversationService) *ConversationServer {
	return &ConversationServer{conversationService: conversationService}
}

func (s *ConversationServer) FindOrCreate(ctx context.Context, in *pb.FindOrCreateRequest) (*pb.ConversationResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	view, err := s.conversationService.FindOrCreate(ctx, callerID, in.GetParticipantUsername())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toConversationResponse(view), nil
}

func (s *ConversationServer) Get(ctx context.Context, in *pb.GetConversationRequest) (*pb.ConversationResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	conversationID, err := uuid.Parse(in.GetConversationId())
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrConversationNotFound)
	}
	view, err := s.conversationService.Get(ctx, conversationID, callerID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toConversationResponse(view), nil
}

func (s *ConversationServer) List(ctx context.Context, _ *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	views, err := s.conversationService.List(ctx, callerID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListConversationsResponse{
		Conversations: lo.Map(views, func(v services.ConversationView, _ int) *pb.ConversationResponse {
			return toConversationResponse(v)
		}),
	}, nil
}

func (s *ConversationServer) Delete(ctx context.Context, in *pb.DeleteConversationRequest) (*pb.RemoveResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	conversationID, err := uuid.Parse(in.GetConversationId())
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrConversationNotFound)
	}
	if err := s.conversationService.Delete(ctx, conversationID, callerID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RemoveResponse{Success: true}, nil
}
