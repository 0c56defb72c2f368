package workers_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"courier/contract"
	"courier/domain"
	"courier/domain/event"
	"courier/runtime"
	"courier/runtime/workers"
)

// recordingSink collects every consumed event.
type recordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func Test_Conversation_Event_Reaches_Live_Members(t *testing.T) {
	req := require.New(t)
	registry := runtime.NewRegistry()
	conversationID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	aliceSink, bobSink := &recordingSink{}, &recordingSink{}
	registry.Subscribe(alice, conversationID, aliceSink)
	registry.Subscribe(bob, conversationID, bobSink)

	fanout := workers.NewEventFanout(slog.Default(), registry,
		make(chan event.DomainEvent), make(chan event.DomainEvent, 1), nil, time.Second)

	evt := event.MessageInserted{Message: domain.Message{ID: uuid.New(), ConversationID: conversationID}}
	fanout.Fanout(context.Background(), evt)

	req.Equal(1, aliceSink.count())
	req.Equal(1, bobSink.count())
}

func Test_User_Addressed_Event_Reaches_Recipients(t *testing.T) {
	req := require.New(t)
	registry := runtime.NewRegistry()
	alice, bob, eve := uuid.New(), uuid.New(), uuid.New()
	aliceSink, eveSink := &recordingSink{}, &recordingSink{}
	// Alice and Eve are online on unrelated conversations
	registry.Subscribe(alice, uuid.New(), aliceSink)
	registry.Subscribe(eve, uuid.New(), eveSink)

	fanout := workers.NewEventFanout(slog.Default(), registry,
		make(chan event.DomainEvent), make(chan event.DomainEvent, 1), nil, time.Second)

	// A friendship transition between Alice and offline Bob
	evt := event.FriendshipChanged{Edge: domain.FriendshipEdge{
		ID:          uuid.New(),
		RequesterID: alice,
		AddresseeID: bob,
		Status:      domain.StatusPending,
	}}
	fanout.Fanout(context.Background(), evt)

	req.Equal(1, aliceSink.count())
	req.Zero(eveSink.count())
}

func Test_Two_Open_Conversations_Route_Independently(t *testing.T) {
	req := require.New(t)
	registry := runtime.NewRegistry()
	first, second := uuid.New(), uuid.New()
	alice := uuid.New()
	firstSink, secondSink := &recordingSink{}, &recordingSink{}
	registry.Subscribe(alice, first, firstSink)
	registry.Subscribe(alice, second, secondSink)

	fanout := workers.NewEventFanout(slog.Default(), registry,
		make(chan event.DomainEvent), make(chan event.DomainEvent, 1), nil, time.Second)

	// An event in the first conversation reaches only that stream
	fanout.Fanout(context.Background(), event.MessageInserted{
		Message: domain.Message{ID: uuid.New(), ConversationID: first},
	})
	req.Equal(1, firstSink.count())
	req.Zero(secondSink.count())

	// A friendship event addressed to Alice reaches both of her streams
	fanout.Fanout(context.Background(), event.FriendshipChanged{Edge: domain.FriendshipEdge{
		RequesterID: alice, AddresseeID: uuid.New(), Status: domain.StatusPending,
	}})
	req.Equal(2, firstSink.count())
	req.Equal(1, secondSink.count())
}

func Test_Sink_Reachable_Through_Both_Routes_Gets_One_Delivery(t *testing.T) {
	req := require.New(t)
	registry := runtime.NewRegistry()
	conversationID := uuid.New()
	alice := uuid.New()
	aliceSink := &recordingSink{}
	registry.Subscribe(alice, conversationID, aliceSink)

	fanout := workers.NewEventFanout(slog.Default(), registry,
		make(chan event.DomainEvent), make(chan event.DomainEvent, 1), nil, time.Second)

	// ConversationCreated routes by conversation membership and by recipient
	evt := event.ConversationCreated{
		Conversation: domain.Conversation{ID: conversationID},
		Participants: []uuid.UUID{alice, uuid.New()},
	}
	fanout.Fanout(context.Background(), evt)

	req.Equal(1, aliceSink.count())
}

func Test_Permanent_Sink_Sees_Everything(t *testing.T) {
	req := require.New(t)
	registry := runtime.NewRegistry()
	permanent := &recordingSink{}

	fanout := workers.NewEventFanout(slog.Default(), registry,
		make(chan event.DomainEvent), make(chan event.DomainEvent, 1),
		[]contract.EventSink{permanent}, time.Second)

	fanout.Fanout(context.Background(), event.MessageInserted{
		Message: domain.Message{ID: uuid.New(), ConversationID: uuid.New()},
	})
	fanout.Fanout(context.Background(), event.FriendshipChanged{Edge: domain.FriendshipEdge{
		RequesterID: uuid.New(), AddresseeID: uuid.New(),
	}})

	req.Equal(2, permanent.count())
}

func Test_Run_Forwards_To_Telemetry(t *testing.T) {
	req := require.New(t)
	registry := runtime.NewRegistry()
	domainEvents := make(chan event.DomainEvent, 1)
	telemetry := make(chan event.DomainEvent, 1)

	fanout := workers.NewEventFanout(slog.Default(), registry, domainEvents, telemetry, nil, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = fanout.Run(ctx)
		close(done)
	}()

	evt := event.MessageInserted{Message: domain.Message{ID: uuid.New(), ConversationID: uuid.New()}}
	domainEvents <- evt

	select {
	case forwarded := <-telemetry:
		req.Equal(evt, forwarded)
	case <-time.After(time.Second):
		t.Fatal("telemetry never received the event")
	}

	cancel()
	<-done
}
