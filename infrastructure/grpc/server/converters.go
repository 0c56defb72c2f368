package server

import (
	"encoding/json"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"courier/domain"
	"courier/domain/content"
	"courier/errors"
	pb "courier/proto/messaging"
	"courier/services"
)

func toUserRef(summary domain.Summary) *pb.UserRef {
	return &pb.UserRef{
		UserId:      summary.ID.String(),
		Username:    summary.Username,
		DisplayName: summary.DisplayName,
		Presence:    string(summary.Presence),
	}
}

func toEdgeResponse(edge domain.EdgeWithUsers) *pb.FriendshipEdgeResponse {
	return &pb.FriendshipEdgeResponse{
		EdgeId:      edge.Edge.ID.String(),
		Requester:   toUserRef(edge.Requester),
		Addressee:   toUserRef(edge.Addressee),
		Status:      string(edge.Edge.Status),
		LastActorId: edge.Edge.LastActorID.String(),
		CreatedAt:   timestamppb.New(edge.Edge.CreatedAt),
		UpdatedAt:   timestamppb.New(edge.Edge.UpdatedAt),
	}
}

func toMessageResponse(message domain.Message) *pb.MessageResponse {
	res := &pb.MessageResponse{
		MessageId:      message.ID.String(),
		ConversationId: message.ConversationID.String(),
		AuthorId:       message.AuthorID.String(),
		Content:        encodeDocument(message.Content),
		CreatedAt:      timestamppb.New(message.CreatedAt),
	}
	if message.UpdatedAt != nil {
		res.UpdatedAt = timestamppb.New(*message.UpdatedAt)
	}
	return res
}

func toConversationResponse(view services.ConversationView) *pb.ConversationResponse {
	res := &pb.ConversationResponse{
		ConversationId: view.Conversation.ID.String(),
		Participants:   lo.Map(view.Participants, func(p domain.Summary, _ int) *pb.UserRef { return toUserRef(p) }),
		Unread:         view.Unread,
		CreatedAt:      timestamppb.New(view.Conversation.CreatedAt),
	}
	if view.LastMessage != nil {
		res.LastMessage = toMessageResponse(*view.LastMessage)
	}
	return res
}

func encodeDocument(doc content.Document) string {
	raw, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return string(raw)
}

func decodeDocument(raw string) (content.Document, error) {
	var doc content.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return content.Document{}, errors.InvalidContent("content is not a valid document")
	}
	return doc, nil
}
