// Package event defines the domain events flowing through the live channel.
// Message events are scoped to a conversation; friendship events are
// addressed to the two parties directly.
package event

import (
	"time"

	"github.com/google/uuid"

	"courier/domain"
)

// DomainEvent is anything the fan-out can route. ConversationID returns
// uuid.Nil for events not scoped to a conversation; such events address
// users via Recipients.
type DomainEvent interface {
	ConversationID() uuid.UUID
	Recipients() []uuid.UUID
}

// MessageInserted carries the full row so that subscribers never need a
// follow-up fetch. Delivery is at-least-once; consumers dedup by message id.
type MessageInserted struct {
	Message domain.Message
}

func (e MessageInserted) ConversationID() uuid.UUID { return e.Message.ConversationID }
func (e MessageInserted) Recipients() []uuid.UUID   { return nil }

// MessageUpdated carries the full updated row.
type MessageUpdated struct {
	Message domain.Message
}

func (e MessageUpdated) ConversationID() uuid.UUID { return e.Message.ConversationID }
func (e MessageUpdated) Recipients() []uuid.UUID   { return nil }

// MessageDeleted carries only ids: the row is gone, but subscribers must be
// able to distinguish "deleted" from "never existed".
type MessageDeleted struct {
	Conversation uuid.UUID
	MessageID    uuid.UUID
	At           time.Time
}

func (e MessageDeleted) ConversationID() uuid.UUID { return e.Conversation }
func (e MessageDeleted) Recipients() []uuid.UUID   { return nil }

// ConversationCreated notifies both participants that a thread now exists.
type ConversationCreated struct {
	Conversation domain.Conversation
	Participants []uuid.UUID
}

func (e ConversationCreated) ConversationID() uuid.UUID { return e.Conversation.ID }
func (e ConversationCreated) Recipients() []uuid.UUID   { return e.Participants }

// FriendshipChanged covers request, accept and block transitions. Removed
// reports deletion, carrying the status the edge had before removal so a
// cancel can be told apart from an unfriend or an unblock.
type FriendshipChanged struct {
	Edge domain.FriendshipEdge
}

func (e FriendshipChanged) ConversationID() uuid.UUID { return uuid.Nil }
func (e FriendshipChanged) Recipients() []uuid.UUID {
	return []uuid.UUID{e.Edge.RequesterID, e.Edge.AddresseeID}
}

type FriendshipRemoved struct {
	Edge           domain.FriendshipEdge
	PreviousStatus domain.FriendshipStatus
	At             time.Time
}

func (e FriendshipRemoved) ConversationID() uuid.UUID { return uuid.Nil }
func (e FriendshipRemoved) Recipients() []uuid.UUID {
	return []uuid.UUID{e.Edge.RequesterID, e.Edge.AddresseeID}
}
