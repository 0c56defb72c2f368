//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/google/uuid"

	"courier/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual naming
// in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry tracks live subscriptions. A session binds one (user,
// conversation) pair to a sink; a user with several conversations open holds
// one session per conversation, and all of them stay addressable by user id
// for events that are not conversation-scoped (friendship transitions).
type IRegistry interface {
	GetSinksForConversation(conversationID uuid.UUID) []EventSink
	GetSinksForUser(userID uuid.UUID) []EventSink
	Subscribe(userID, conversationID uuid.UUID, sink EventSink)
	Unsubscribe(userID, conversationID uuid.UUID)
}

type IOrchestrator interface {
	RegisterSinks(sink ...EventSink)
	Publish(e event.DomainEvent)
	Subscribe(userID, conversationID uuid.UUID, sink EventSink)
	Unsubscribe(userID, conversationID uuid.UUID)
	Start(ctx context.Context) error
	Stop()
}
