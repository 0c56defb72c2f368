// Package domain contains core concepts of the messaging system.
// This file defines User entities and presence.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Presence is the self-reported availability of a user.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceAway    Presence = "away"
	PresenceBusy    Presence = "busy"
	PresenceOffline Presence = "offline"
)

func (p Presence) Valid() bool {
	switch p {
	case PresenceOnline, PresenceAway, PresenceBusy, PresenceOffline:
		return true
	}
	return false
}

// User identity. Username is unique case-insensitively; the canonical form
// is the lowercase one.
type User struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Presence    Presence
	CreatedAt   time.Time
}

// NormalizeUsername returns the canonical storage form of a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Summary is the public projection of a user, safe to attach to
// friendship edges and participant lists.
type Summary struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Presence    Presence
}

func (u User) Summary() Summary {
	return Summary{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Presence:    u.Presence,
	}
}
