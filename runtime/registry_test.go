package runtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"courier/domain/event"
)

// Sink is a trivial recording sink for registry assertions.
type Sink struct {
	name string
}

func (s *Sink) Consume(_ context.Context, _ event.DomainEvent) error {
	return nil
}

func Test_Subscribe_And_Route_By_Conversation(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conversationID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	aliceSink, bobSink := &Sink{name: "alice"}, &Sink{name: "bob"}

	registry.Subscribe(alice, conversationID, aliceSink)
	registry.Subscribe(bob, conversationID, bobSink)

	sinks := registry.GetSinksForConversation(conversationID)
	req.Len(sinks, 2)
	req.Contains(sinks, aliceSink)
	req.Contains(sinks, bobSink)
}

func Test_User_With_Two_Open_Conversations(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	first, second := uuid.New(), uuid.New()
	alice := uuid.New()
	firstSink, secondSink := &Sink{name: "first"}, &Sink{name: "second"}

	registry.Subscribe(alice, first, firstSink)
	registry.Subscribe(alice, second, secondSink)

	// Each conversation routes to its own stream
	sinks := registry.GetSinksForConversation(first)
	req.Len(sinks, 1)
	req.Same(firstSink, sinks[0].(*Sink))
	sinks = registry.GetSinksForConversation(second)
	req.Len(sinks, 1)
	req.Same(secondSink, sinks[0].(*Sink))

	// User-addressed events reach both streams
	req.Len(registry.GetSinksForUser(alice), 2)
}

func Test_Unsubscribe_Leaves_Other_Conversations_Live(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	first, second := uuid.New(), uuid.New()
	alice := uuid.New()
	firstSink, secondSink := &Sink{name: "first"}, &Sink{name: "second"}

	registry.Subscribe(alice, first, firstSink)
	registry.Subscribe(alice, second, secondSink)
	registry.Unsubscribe(alice, first)

	req.Nil(registry.GetSinksForConversation(first))
	sinks := registry.GetSinksForConversation(second)
	req.Len(sinks, 1)
	req.Same(secondSink, sinks[0].(*Sink))
	req.Len(registry.GetSinksForUser(alice), 1)
}

func Test_Disconnected_Member_Is_Skipped(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conversationID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	bobSink := &Sink{name: "bob"}

	registry.Subscribe(alice, conversationID, &Sink{name: "alice"})
	registry.Subscribe(bob, conversationID, bobSink)
	registry.Unsubscribe(alice, conversationID)

	sinks := registry.GetSinksForConversation(conversationID)
	req.Len(sinks, 1)
	req.Contains(sinks, bobSink)
}

func Test_Resubscribe_Replaces_The_Previous_Sink(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conversationID := uuid.New()
	alice := uuid.New()
	stale, fresh := &Sink{name: "stale"}, &Sink{name: "fresh"}

	registry.Subscribe(alice, conversationID, stale)
	registry.Subscribe(alice, conversationID, fresh)

	sinks := registry.GetSinksForConversation(conversationID)
	req.Len(sinks, 1)
	req.Same(fresh, sinks[0].(*Sink))
	req.Len(registry.GetSinksForUser(alice), 1)
}

func Test_GetSinksForUser_Unknown(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.Empty(registry.GetSinksForUser(uuid.New()))
}

func Test_Unsubscribe_Cleans_Empty_Membership(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conversationID := uuid.New()
	alice := uuid.New()

	registry.Subscribe(alice, conversationID, &Sink{name: "alice"})
	registry.Unsubscribe(alice, conversationID)

	req.Nil(registry.GetSinksForConversation(conversationID))
	req.Empty(registry.GetSinksForUser(alice))
}
