//go:generate go run go.uber.org/mock/mockgen -source=conversation_service.go -destination=../mocks/mock_conversation_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"courier/domain"
	"courier/domain/event"
	"courier/errors"
	"courier/repositories"
)

// ConversationView is a conversation resolved for one caller: participants,
// newest message preview and the caller's unread counter.
type ConversationView struct {
	Conversation domain.Conversation
	Participants []domain.Summary
	LastMessage  *domain.Message
	Unread       uint64
}

// LastActivity orders conversation lists: last message time when there is
// one, creation time otherwise.
func (v ConversationView) LastActivity() time.Time {
	if v.LastMessage != nil {
		return v.LastMessage.CreatedAt
	}
	return v.Conversation.CreatedAt
}

type IConversationService interface {
	FindOrCreate(ctx context.Context, callerID uuid.UUID, participantUsername string) (ConversationView, error)
	Get(ctx context.Context, conversationID, callerID uuid.UUID) (ConversationView, error)
	List(ctx context.Context, callerID uuid.UUID) ([]ConversationView, error)
	Delete(ctx context.Context, conversationID, callerID uuid.UUID) error
}

// ConversationService is the friend gate: conversations only exist between
// users holding an accepted friendship edge.
type ConversationService struct {
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	users         repositories.IUserRepository
	friendships   IFriendshipService
	publisher     EventPublisher
	log           *slog.Logger
}

func NewConversationService(conversations repositories.IConversationRepository,
	messages repositories.IMessageRepository, users repositories.IUserRepository,
	friendships IFriendshipService, publisher EventPublisher, log *slog.Logger) *ConversationService {
	return &ConversationService{
		conversations: conversations,
		messages:      messages,
		users:         users,
		friendships:   friendships,
		publisher:     publisher,
		log:           log,
	}
}

func (s *ConversationService) FindOrCreate(ctx context.Context, callerID uuid.UUID, participantUsername string) (ConversationView, error) {
	participant, err := s.users.GetByUsername(participantUsername)
	if err != nil {
		return ConversationView{}, err
	}
	if participant.ID == callerID {
		return ConversationView{}, errors.SelfReference("cannot open a conversation with yourself")
	}

	friends, err := s.friendships.AreFriends(ctx, callerID, participant.ID)
	if err != nil {
		return ConversationView{}, err
	}
	if !friends {
		return ConversationView{}, errors.NotFriends("you can only start conversations with friends")
	}

	conv, created, err := s.conversations.FindOrCreate(callerID, participant.ID)
	if err != nil {
		return ConversationView{}, err
	}
	if created {
		s.publisher.Publish(event.ConversationCreated{
			Conversation: conv,
			Participants: []uuid.UUID{callerID, participant.ID},
		})
	}
	return s.buildView(conv, callerID)
}

func (s *ConversationService) Get(ctx context.Context, conversationID, callerID uuid.UUID) (ConversationView, error) {
	if err := s.requireParticipant(conversationID, callerID); err != nil {
		return ConversationView{}, err
	}
	conv, err := s.conversations.GetByID(conversationID)
	if err != nil {
		return ConversationView{}, err
	}
	return s.buildView(conv, callerID)
}

func (s *ConversationService) List(ctx context.Context, callerID uuid.UUID) ([]ConversationView, error) {
	conversations, err := s.conversations.ListByUser(callerID)
	if err != nil {
		return nil, err
	}
	views := make([]ConversationView, 0, len(conversations))
	for _, conv := range conversations {
		view, err := s.buildView(conv, callerID)
		if err != nil {
			s.log.Warn("Skipping unreadable conversation", "conversation", conv.ID, "err", err)
			continue
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].LastActivity().After(views[j].LastActivity())
	})
	return views, nil
}

// Delete cascades messages along with the conversation: an orphaned DM log
// has no owner left to page it. Search index entries are left behind on
// purpose; search is conversation-scoped and participant-gated, so they are
// unreachable.
func (s *ConversationService) Delete(ctx context.Context, conversationID, callerID uuid.UUID) error {
	if err := s.requireParticipant(conversationID, callerID); err != nil {
		return err
	}
	if err := s.messages.DeleteAllForConversation(conversationID); err != nil {
		return err
	}
	return s.conversations.Delete(conversationID)
}

func (s *ConversationService) requireParticipant(conversationID, callerID uuid.UUID) error {
	ok, err := s.conversations.IsParticipant(conversationID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotParticipant
	}
	return nil
}

func (s *ConversationService) buildView(conv domain.Conversation, callerID uuid.UUID) (ConversationView, error) {
	participants, err := s.conversations.Participants(conv.ID)
	if err != nil {
		return ConversationView{}, err
	}
	summaries := lo.FilterMap(participants, func(p domain.Participant, _ int) (domain.Summary, bool) {
		user, err := s.users.GetByID(p.UserID)
		if err != nil {
			s.log.Warn("Participant references unknown user", "user", p.UserID, "err", err)
			return domain.Summary{}, false
		}
		return toSummary(user), true
	})

	last, err := s.messages.LastMessage(conv.ID)
	if err != nil {
		return ConversationView{}, err
	}
	unread, err := s.conversations.GetUnread(conv.ID, callerID)
	if err != nil {
		return ConversationView{}, err
	}
	return ConversationView{
		Conversation: conv,
		Participants: summaries,
		LastMessage:  last,
		Unread:       unread,
	}, nil
}
