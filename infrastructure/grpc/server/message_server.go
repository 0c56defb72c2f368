package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"courier/auth"
	"courier/contract"
	"courier/domain"
	"courier/domain/event"
	"courier/errors"
	pb "courier/proto/messaging"
	"courier/services"
	"courier/sink"
)

type MessageServer struct {
	pb.UnimplementedMessageServiceServer
	messageService       services.IMessageService
	conversationService  services.IConversationService
	orchestrator         contract.IOrchestrator
	connectionBufferSize int
	log                  *slog.Logger
}

func NewMessageServer(log *slog.Logger, messageService services.IMessageService,
	conversationService services.IConversationService, orchestrator contract.IOrchestrator,
	connectionBufferSize int) *MessageServer {
	return &MessageServer{
		messageService:       messageService,
		conversationService:  conversationService,
		orchestrator:         orchestrator,
		connectionBufferSize: connectionBufferSize,
		log:                  log,
	}
}

func (s *MessageServer) Append(ctx context.Context, in *pb.AppendRequest) (*pb.MessageResponse, error) {
	callerID, conversationID, err := s.conversationCall(ctx, in.GetConversationId())
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(in.GetContent())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	message, err := s.messageService.Append(ctx, conversationID, callerID, doc)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toMessageResponse(message), nil
}

func (s *MessageServer) Page(ctx context.Context, in *pb.PageRequest) (*pb.PageResponse, error) {
	callerID, conversationID, err := s.conversationCall(ctx, in.GetConversationId())
	if err != nil {
		return nil, err
	}
	var before *string
	if in.GetBefore() != "" {
		before = lo.ToPtr(in.GetBefore())
	}
	page, err := s.messageService.Page(ctx, conversationID, callerID, int(in.GetLimit()), before)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	res := &pb.PageResponse{
		Messages: lo.Map(page.Messages, func(m domain.Message, _ int) *pb.MessageResponse { return toMessageResponse(m) }),
		HasMore:  page.HasMore,
	}
	if page.Cursor != nil {
		res.Cursor = *page.Cursor
	}
	return res, nil
}

func (s *MessageServer) Edit(ctx context.Context, in *pb.EditRequest) (*pb.MessageResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	messageID, err := uuid.Parse(in.GetMessageId())
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrMessageNotFound)
	}
	doc, err := decodeDocument(in.GetContent())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	message, err := s.messageService.Edit(ctx, messageID, callerID, doc)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toMessageResponse(message), nil
}

func (s *MessageServer) Delete(ctx context.Context, in *pb.DeleteMessageRequest) (*pb.RemoveResponse, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	messageID, err := uuid.Parse(in.GetMessageId())
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrMessageNotFound)
	}
	if err := s.messageService.Delete(ctx, messageID, callerID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.RemoveResponse{Success: true}, nil
}

func (s *MessageServer) Search(ctx context.Context, in *pb.SearchMessagesRequest) (*pb.SearchMessagesResponse, error) {
	callerID, conversationID, err := s.conversationCall(ctx, in.GetConversationId())
	if err != nil {
		return nil, err
	}
	messages, err := s.messageService.Search(ctx, conversationID, callerID, in.GetTerms(), int(in.GetLimit()))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchMessagesResponse{
		Messages: lo.Map(messages, func(m domain.Message, _ int) *pb.MessageResponse { return toMessageResponse(m) }),
	}, nil
}

// Subscribe establishes the long-lived stream for real-time delivery. It
// registers a dedicated gRPC sink in the orchestrator's registry and blocks
// until the client disconnects. Cleanup runs via deferred unregistration so
// the registry never leaks dead sessions.
func (s *MessageServer) Subscribe(in *pb.SubscribeRequest, stream pb.MessageService_SubscribeServer) error {
	ctx := stream.Context()
	callerID, conversationID, err := s.conversationCall(ctx, in.GetConversationId())
	if err != nil {
		return err
	}
	// Participant gate before any registry mutation.
	if _, err := s.conversationService.Get(ctx, conversationID, callerID); err != nil {
		return errors.MapToGRPCError(err)
	}

	userSink := sink.NewGrpcSink(s.connectionBufferSize)
	s.orchestrator.Subscribe(callerID, conversationID, userSink)
	defer s.orchestrator.Unsubscribe(callerID, conversationID)

	for {
		select {
		case <-ctx.Done():
			s.log.Warn(fmt.Sprintf("Client %s disconnected from %s", callerID, conversationID))
			return nil
		case evt := <-userSink.ConnectedUserEvent:
			// Only this conversation's events go down this stream.
			// User-addressed events (uuid.Nil scope) pass through.
			if scope := evt.ConversationID(); scope != uuid.Nil && scope != conversationID {
				continue
			}
			res, ok := toConversationEvent(evt)
			if !ok {
				continue
			}
			if err := stream.Send(res); err != nil {
				s.log.Error("failed to push event to stream",
					"user_id", callerID,
					"conversation_id", conversationID,
					"error", err)
				return err
			}
		}
	}
}

func (s *MessageServer) conversationCall(ctx context.Context, rawConversationID string) (uuid.UUID, uuid.UUID, error) {
	callerID, ok := auth.CallerID(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, errors.MapToGRPCError(errors.Forbidden("missing credentials"))
	}
	conversationID, err := uuid.Parse(rawConversationID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.MapToGRPCError(errors.ErrConversationNotFound)
	}
	return callerID, conversationID, nil
}

func toConversationEvent(e event.DomainEvent) (*pb.ConversationEvent, bool) {
	switch evt := e.(type) {
	case event.MessageInserted:
		return &pb.ConversationEvent{
			Event: &pb.ConversationEvent_Inserted{Inserted: toMessageResponse(evt.Message)},
		}, true
	case event.MessageUpdated:
		return &pb.ConversationEvent{
			Event: &pb.ConversationEvent_Updated{Updated: toMessageResponse(evt.Message)},
		}, true
	case event.MessageDeleted:
		return &pb.ConversationEvent{
			Event: &pb.ConversationEvent_Deleted{Deleted: &pb.MessageDeleted{
				ConversationId: evt.Conversation.String(),
				MessageId:      evt.MessageID.String(),
				At:             timestamppb.New(evt.At),
			}},
		}, true
	case event.ConversationCreated:
		return &pb.ConversationEvent{
			Event: &pb.ConversationEvent_ConversationCreated{ConversationCreated: &pb.ConversationResponse{
				ConversationId: evt.Conversation.ID.String(),
				Participants: lo.Map(evt.Participants, func(id uuid.UUID, _ int) *pb.UserRef {
					return &pb.UserRef{UserId: id.String()}
				}),
				CreatedAt: timestamppb.New(evt.Conversation.CreatedAt),
			}},
		}, true
	case event.FriendshipChanged:
		return &pb.ConversationEvent{
			Event: &pb.ConversationEvent_FriendshipChanged{FriendshipChanged: toBareEdgeResponse(evt.Edge)},
		}, true
	case event.FriendshipRemoved:
		return &pb.ConversationEvent{
			Event: &pb.ConversationEvent_FriendshipRemoved{FriendshipRemoved: &pb.FriendshipRemoved{
				Edge:           toBareEdgeResponse(evt.Edge),
				PreviousStatus: string(evt.PreviousStatus),
				At:             timestamppb.New(evt.At),
			}},
		}, true
	default:
		return nil, false
	}
}

// toBareEdgeResponse carries ids only; streams do not resolve user summaries.
func toBareEdgeResponse(edge domain.FriendshipEdge) *pb.FriendshipEdgeResponse {
	return &pb.FriendshipEdgeResponse{
		EdgeId:      edge.ID.String(),
		Requester:   &pb.UserRef{UserId: edge.RequesterID.String()},
		Addressee:   &pb.UserRef{UserId: edge.AddresseeID.String()},
		Status:      string(edge.Status),
		LastActorId: edge.LastActorID.String(),
		CreatedAt:   timestamppb.New(edge.CreatedAt),
		UpdatedAt:   timestamppb.New(edge.UpdatedAt),
	}
}
