// Package domain contains core concepts of the messaging system.
// This file defines Conversation identity and the canonical pair key.
package domain

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Conversation is the identity of a DM thread. Exactly one exists per
// unordered participant pair; it is created lazily and never implicitly
// deleted.
type Conversation struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// Participant joins a user to a conversation.
type Participant struct {
	ConversationID uuid.UUID
	UserID         uuid.UUID
	JoinedAt       time.Time
}

// CanonicalPair orders two user ids so that any unordered pair has a single
// representation. Uniqueness constraints on pair-scoped records (friendship
// edges, conversations) are enforced on this key.
func CanonicalPair(a, b uuid.UUID) (lo, hi uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}

// PairKey renders the canonical pair as a storage key fragment.
func PairKey(a, b uuid.UUID) string {
	lo, hi := CanonicalPair(a, b)
	return fmt.Sprintf("%s:%s", lo, hi)
}
