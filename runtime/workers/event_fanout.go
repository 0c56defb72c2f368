package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"courier/contract"
	"courier/domain/event"
)

// EventFanout broadcasts domain events to in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// Conversation-scoped events reach the live members of the conversation;
// user-addressed events (friendship transitions) reach every open stream of
// each recipient. Permanent sinks see everything.
type EventFanout struct {
	log            *slog.Logger
	registry       contract.IRegistry
	domainEvents   chan event.DomainEvent
	telemetry      chan event.DomainEvent
	permanentSinks []contract.EventSink
	sinkTimeout    time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry,
	domainEvents, telemetry chan event.DomainEvent,
	permanentSinks []contract.EventSink, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:            log,
		registry:       registry,
		domainEvents:   domainEvents,
		telemetry:      telemetry,
		permanentSinks: permanentSinks,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.domainEvents:
			w.Fanout(ctx, evt)
			select {
			case w.telemetry <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping domainEvent send")
			return nil
		}
	}
}

// Fanout routes one event. A sink reachable through both routes (conversation
// membership and direct addressing) is delivered to once. A slow sink only
// burns its own timeout; the other sinks still get the event.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	sinks := append([]contract.EventSink{}, w.permanentSinks...)

	if conversationID := evt.ConversationID(); conversationID != uuid.Nil {
		sinks = append(sinks, w.registry.GetSinksForConversation(conversationID)...)
	}
	for _, userID := range evt.Recipients() {
		sinks = append(sinks, w.registry.GetSinksForUser(userID)...)
	}

	seen := make(map[contract.EventSink]struct{}, len(sinks))
	for _, sink := range sinks {
		if _, done := seen[sink]; done {
			continue
		}
		seen[sink] = struct{}{}
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink rejected event", "err", err)
		}
		cancel()
	}
}
