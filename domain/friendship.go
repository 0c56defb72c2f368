// Package domain contains core concepts of the messaging system.
// This file defines the friendship state machine.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipStatus is a closed enum. Transitions not listed in Allowed are
// rejected, never silently applied.
type FriendshipStatus string

const (
	StatusPending  FriendshipStatus = "pending"
	StatusAccepted FriendshipStatus = "accepted"
	StatusBlocked  FriendshipStatus = "blocked"
)

func (s FriendshipStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusBlocked:
		return true
	}
	return false
}

// FriendshipEdge is the single record existing for an unordered user pair.
// Requester/Addressee keep the original direction of the request; LastActor
// records who performed the latest transition.
type FriendshipEdge struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	AddresseeID uuid.UUID
	Status      FriendshipStatus
	LastActorID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Involves reports whether userID is one of the two parties.
func (e FriendshipEdge) Involves(userID uuid.UUID) bool {
	return e.RequesterID == userID || e.AddresseeID == userID
}

// OtherParty returns the counterpart of userID on this edge.
// The zero UUID is returned when userID is not a party.
func (e FriendshipEdge) OtherParty(userID uuid.UUID) uuid.UUID {
	switch userID {
	case e.RequesterID:
		return e.AddresseeID
	case e.AddresseeID:
		return e.RequesterID
	}
	return uuid.Nil
}

// Transition table of the state machine:
//
//	{none}                     -> pending   sendRequest (requester)
//	pending                    -> accepted  accept (addressee only)
//	pending, accepted, blocked -> none      cancelOrRemove (either party)
//	any                        -> blocked   block (either party)
//
// Blocked never transitions directly to accepted; the edge must be removed
// and a new request sent.
var allowed = map[FriendshipStatus][]FriendshipStatus{
	StatusPending:  {StatusAccepted, StatusBlocked},
	StatusAccepted: {StatusBlocked},
	StatusBlocked:  {StatusBlocked},
}

// CanTransition reports whether the edge status may move from -> to.
func CanTransition(from, to FriendshipStatus) bool {
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// EdgeWithUsers resolves both parties of an edge for listing.
type EdgeWithUsers struct {
	Edge      FriendshipEdge
	Requester Summary
	Addressee Summary
}
