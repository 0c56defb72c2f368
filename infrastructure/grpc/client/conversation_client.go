// Package client provides the consumer-side view of a conversation: unary
// calls carry the bearer token, and the live feed glues the subscription
// stream to the local timeline.
package client

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/grpc/metadata"

	"courier/domain"
	"courier/domain/content"
	"courier/domain/event"
	pb "courier/proto/messaging"
	"courier/projection"
	"courier/repositories"
)

type ConversationClient struct {
	client pb.MessageServiceClient
	token  string
	log    *slog.Logger
}

func NewConversationClient(client pb.MessageServiceClient, token string, log *slog.Logger) *ConversationClient {
	return &ConversationClient{client: client, token: token, log: log}
}

// OpenFeed acquires the live view of one conversation. The returned feed is
// already seeded and subscribed; releasing it is the caller's job via Close.
func (c *ConversationClient) OpenFeed(ctx context.Context, conversationID uuid.UUID) (*projection.Feed, error) {
	feed := projection.NewFeed(
		conversationID,
		c.pageFunc(conversationID),
		c.subscribeFunc(conversationID),
		func(m domain.Message) string { return repositories.Cursor(m.CreatedAt, m.ID) },
		c.log,
	)
	if err := feed.Open(ctx); err != nil {
		return nil, err
	}
	return feed, nil
}

func (c *ConversationClient) pageFunc(conversationID uuid.UUID) projection.PageFunc {
	return func(ctx context.Context, limit int, before *string) ([]domain.Message, bool, error) {
		req := &pb.PageRequest{
			ConversationId: conversationID.String(),
			Limit:          int32(limit),
		}
		if before != nil {
			req.Before = *before
		}
		res, err := c.client.Page(c.withToken(ctx), req)
		if err != nil {
			return nil, false, err
		}
		messages := lo.FilterMap(res.GetMessages(), func(m *pb.MessageResponse, _ int) (domain.Message, bool) {
			message, err := fromMessageResponse(m)
			if err != nil {
				c.log.Warn("Skipping unreadable message", "err", err)
				return domain.Message{}, false
			}
			return message, true
		})
		return messages, res.GetHasMore(), nil
	}
}

func (c *ConversationClient) subscribeFunc(conversationID uuid.UUID) projection.SubscribeFunc {
	return func(ctx context.Context) (<-chan event.DomainEvent, error) {
		stream, err := c.client.Subscribe(c.withToken(ctx),
			&pb.SubscribeRequest{ConversationId: conversationID.String()})
		if err != nil {
			return nil, err
		}

		events := make(chan event.DomainEvent)
		go func() {
			defer close(events)
			for {
				res, err := stream.Recv()
				if err != nil {
					// Closing the channel signals the feed to resubscribe.
					return
				}
				evt, ok := fromConversationEvent(res)
				if !ok {
					continue
				}
				select {
				case <-ctx.Done():
					return
				case events <- evt:
				}
			}
		}()
		return events, nil
	}
}

func (c *ConversationClient) withToken(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

func fromMessageResponse(res *pb.MessageResponse) (domain.Message, error) {
	id, err := uuid.Parse(res.GetMessageId())
	if err != nil {
		return domain.Message{}, err
	}
	conversationID, err := uuid.Parse(res.GetConversationId())
	if err != nil {
		return domain.Message{}, err
	}
	authorID, err := uuid.Parse(res.GetAuthorId())
	if err != nil {
		return domain.Message{}, err
	}
	var doc content.Document
	if err := json.Unmarshal([]byte(res.GetContent()), &doc); err != nil {
		return domain.Message{}, err
	}
	message := domain.Message{
		ID:             id,
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        doc,
		CreatedAt:      res.GetCreatedAt().AsTime(),
	}
	if res.GetUpdatedAt() != nil {
		updatedAt := res.GetUpdatedAt().AsTime()
		message.UpdatedAt = &updatedAt
	}
	return message, nil
}

func fromConversationEvent(res *pb.ConversationEvent) (event.DomainEvent, bool) {
	switch e := res.GetEvent().(type) {
	case *pb.ConversationEvent_Inserted:
		message, err := fromMessageResponse(e.Inserted)
		if err != nil {
			return nil, false
		}
		return event.MessageInserted{Message: message}, true
	case *pb.ConversationEvent_Updated:
		message, err := fromMessageResponse(e.Updated)
		if err != nil {
			return nil, false
		}
		return event.MessageUpdated{Message: message}, true
	case *pb.ConversationEvent_Deleted:
		conversationID, err := uuid.Parse(e.Deleted.GetConversationId())
		if err != nil {
			return nil, false
		}
		messageID, err := uuid.Parse(e.Deleted.GetMessageId())
		if err != nil {
			return nil, false
		}
		return event.MessageDeleted{
			Conversation: conversationID,
			MessageID:    messageID,
			At:           e.Deleted.GetAt().AsTime(),
		}, true
	default:
		// Friendship and conversation lifecycle events do not touch the
		// timeline.
		return nil, false
	}
}
