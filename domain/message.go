// Package domain contains core concepts of the messaging system.
// This file defines Message identity and the timeline ordering key.
package domain

import (
	"bytes"
	"time"

	"github.com/google/uuid"

	"courier/domain/content"
)

// Message is a single entry of a conversation's append-only log. Identity is
// immutable; only Content and UpdatedAt change on edit.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	AuthorID       uuid.UUID
	Content        content.Document
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Before is the timeline ordering relation. Timestamps alone collide under
// concurrent senders at low clock resolution; the message id (UUIDv7,
// time-ordered) breaks ties so that ordering is total.
func (m Message) Before(other Message) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return bytes.Compare(m.ID[:], other.ID[:]) < 0
}
