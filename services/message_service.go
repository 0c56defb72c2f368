//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"courier/domain"
	"courier/domain/content"
	"courier/domain/event"
	"courier/errors"
	"courier/infrastructure/search"
	"courier/moderation"
	"courier/repositories"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// PageResult is one slice of a conversation's history.
type PageResult struct {
	Messages []domain.Message
	Cursor   *string
	HasMore  bool
}

type IMessageService interface {
	Append(ctx context.Context, conversationID, authorID uuid.UUID, doc content.Document) (domain.Message, error)
	Page(ctx context.Context, conversationID, callerID uuid.UUID, limit int, before *string) (PageResult, error)
	Edit(ctx context.Context, messageID, actorID uuid.UUID, doc content.Document) (domain.Message, error)
	Delete(ctx context.Context, messageID, actorID uuid.UUID) error
	Search(ctx context.Context, conversationID, callerID uuid.UUID, terms string, limit int) ([]domain.Message, error)
}

type MessageService struct {
	messages      repositories.IMessageRepository
	conversations repositories.IConversationRepository
	index         search.IMessageIndex
	moderator     *moderation.Moderator
	publisher     EventPublisher
	log           *slog.Logger
}

func NewMessageService(messages repositories.IMessageRepository,
	conversations repositories.IConversationRepository, index search.IMessageIndex,
	moderator *moderation.Moderator, publisher EventPublisher, log *slog.Logger) *MessageService {
	return &MessageService{
		messages:      messages,
		conversations: conversations,
		index:         index,
		moderator:     moderator,
		publisher:     publisher,
		log:           log,
	}
}

// Append validates, sanitizes and censors the document, then commits it.
// created_at is assigned by the repository at commit time.
func (s *MessageService) Append(ctx context.Context, conversationID, authorID uuid.UUID, doc content.Document) (domain.Message, error) {
	if err := s.requireParticipant(conversationID, authorID); err != nil {
		return domain.Message{}, err
	}
	clean, err := s.prepareContent(doc)
	if err != nil {
		return domain.Message{}, err
	}
	message, err := s.messages.Append(conversationID, authorID, clean)
	if err != nil {
		return domain.Message{}, err
	}
	s.publisher.Publish(event.MessageInserted{Message: message})
	return message, nil
}

// Page returns up to limit messages strictly older than the cursor, newest
// first. Reading the head of the log marks the conversation read for the
// caller.
func (s *MessageService) Page(ctx context.Context, conversationID, callerID uuid.UUID, limit int, before *string) (PageResult, error) {
	if err := s.requireParticipant(conversationID, callerID); err != nil {
		return PageResult{}, err
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	messages, cursor, hasMore, err := s.messages.Page(conversationID, limit, before)
	if err != nil {
		return PageResult{}, errors.Transient("history fetch failed", err)
	}
	if before == nil {
		if err := s.conversations.ResetUnread(conversationID, callerID); err != nil {
			s.log.Warn("Unread reset failed", "conversation", conversationID, "err", err)
		}
	}
	return PageResult{Messages: messages, Cursor: cursor, HasMore: hasMore}, nil
}

// Edit replaces content in place; the ordering key is untouched so the
// timeline never reorders.
func (s *MessageService) Edit(ctx context.Context, messageID, actorID uuid.UUID, doc content.Document) (domain.Message, error) {
	existing, err := s.messages.GetByID(messageID)
	if err != nil {
		return domain.Message{}, err
	}
	if existing.AuthorID != actorID {
		return domain.Message{}, errors.Forbidden("you can only edit your own messages")
	}
	clean, err := s.prepareContent(doc)
	if err != nil {
		return domain.Message{}, err
	}
	updated, err := s.messages.Update(messageID, clean)
	if err != nil {
		return domain.Message{}, err
	}
	s.publisher.Publish(event.MessageUpdated{Message: updated})
	return updated, nil
}

// Delete removes the row and emits an observable delete event so consumers
// can distinguish a deleted message from one they never saw.
func (s *MessageService) Delete(ctx context.Context, messageID, actorID uuid.UUID) error {
	existing, err := s.messages.GetByID(messageID)
	if err != nil {
		return err
	}
	if existing.AuthorID != actorID {
		return errors.Forbidden("you can only delete your own messages")
	}
	removed, err := s.messages.Delete(messageID)
	if err != nil {
		return err
	}
	s.publisher.Publish(event.MessageDeleted{
		Conversation: removed.ConversationID,
		MessageID:    removed.ID,
		At:           time.Now().UTC(),
	})
	return nil
}

func (s *MessageService) Search(ctx context.Context, conversationID, callerID uuid.UUID, terms string, limit int) ([]domain.Message, error) {
	if err := s.requireParticipant(conversationID, callerID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > MaxPageLimit {
		limit = DefaultPageLimit
	}
	ids, err := s.index.Search(ctx, conversationID, terms, limit)
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		message, err := s.messages.GetByID(id)
		if err != nil {
			// Index lags deletes; skip silently.
			continue
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (s *MessageService) prepareContent(doc content.Document) (content.Document, error) {
	clean := content.Sanitize(doc)
	if err := content.Validate(clean); err != nil {
		return content.Document{}, err
	}
	return s.moderator.CensorDocument(clean), nil
}

func (s *MessageService) requireParticipant(conversationID, userID uuid.UUID) error {
	ok, err := s.conversations.IsParticipant(conversationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotParticipant
	}
	return nil
}
