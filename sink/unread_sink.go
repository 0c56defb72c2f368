package sink

import (
	"context"
	"log/slog"

	"courier/domain/event"
	"courier/repositories"
)

// UnreadSink maintains per-participant unread counters. The author's own
// counter is never bumped; everyone else's grows until they fetch the head
// page of the conversation.
type UnreadSink struct {
	conversations repositories.IConversationRepository
	log           *slog.Logger
}

func NewUnreadSink(conversations repositories.IConversationRepository, log *slog.Logger) UnreadSink {
	return UnreadSink{conversations: conversations, log: log}
}

func (s UnreadSink) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.MessageInserted)
	if !ok {
		return nil
	}

	participants, err := s.conversations.Participants(evt.Message.ConversationID)
	if err != nil {
		return err
	}
	for _, participant := range participants {
		if participant.UserID == evt.Message.AuthorID {
			continue
		}
		if err := s.conversations.IncrementUnread(evt.Message.ConversationID, participant.UserID); err != nil {
			s.log.Warn("Unread increment failed",
				"conversation", evt.Message.ConversationID, "user", participant.UserID, "err", err)
		}
	}
	return nil
}
