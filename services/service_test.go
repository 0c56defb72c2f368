package services

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	"courier/domain/event"
	"courier/infrastructure/search"
	"courier/moderation"
	"courier/repositories"
)

// recordingPublisher collects every published event for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (p *recordingPublisher) Publish(e event.DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) all() []event.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.DomainEvent{}, p.events...)
}

func (p *recordingPublisher) last() event.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return nil
	}
	return p.events[len(p.events)-1]
}

// fixture wires real repositories over a throwaway database, mirroring the
// production composition minus the transport.
type fixture struct {
	users         *repositories.UserRepository
	edges         *repositories.FriendshipRepository
	conversations *repositories.ConversationRepository
	messages      *repositories.MessageRepository
	index         *search.MessageIndex
	publisher     *recordingPublisher

	authService         *AuthService
	userService         *UserService
	friendshipService   *FriendshipService
	conversationService *ConversationService
	messageService      *MessageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	t.Cleanup(func() { database.CleanupDB(badgerDB, blugeWriter) })

	log := slog.Default()
	moderator, err := moderation.NewModerator([]string{"damn"}, '*', log)
	req.NoError(err)

	f := &fixture{
		users:         repositories.NewUserRepository(badgerDB, log),
		edges:         repositories.NewFriendshipRepository(badgerDB, log),
		conversations: repositories.NewConversationRepository(badgerDB, log),
		messages:      repositories.NewMessageRepository(badgerDB, log),
		index:         search.NewMessageIndex(blugeWriter, log),
		publisher:     &recordingPublisher{},
	}
	f.authService = NewAuthService(f.users, time.Hour, log)
	f.userService = NewUserService(f.users, log)
	f.friendshipService = NewFriendshipService(f.edges, f.users, f.publisher, log)
	f.conversationService = NewConversationService(f.conversations, f.messages, f.users,
		f.friendshipService, f.publisher, log)
	f.messageService = NewMessageService(f.messages, f.conversations, f.index,
		moderator, f.publisher, log)
	return f
}

func (f *fixture) registerUser(t *testing.T, username string) repositories.DiskUser {
	t.Helper()
	user, err := f.users.CreateUser(username, username, "unused-hash")
	require.NoError(t, err)
	return user
}
