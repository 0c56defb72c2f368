package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFriendship_Transition_Table(t *testing.T) {
	req := require.New(t)

	// Pending can be accepted or blocked
	req.True(CanTransition(StatusPending, StatusAccepted))
	req.True(CanTransition(StatusPending, StatusBlocked))

	// Accepted can only be blocked
	req.True(CanTransition(StatusAccepted, StatusBlocked))
	req.False(CanTransition(StatusAccepted, StatusPending))

	// Blocked never goes back to accepted directly
	req.False(CanTransition(StatusBlocked, StatusAccepted))
	req.False(CanTransition(StatusBlocked, StatusPending))

	// Blocking twice is allowed
	req.True(CanTransition(StatusBlocked, StatusBlocked))
}

func TestFriendship_Edge_Parties(t *testing.T) {
	req := require.New(t)
	requester := uuid.New()
	addressee := uuid.New()
	stranger := uuid.New()
	edge := FriendshipEdge{RequesterID: requester, AddresseeID: addressee}

	req.True(edge.Involves(requester))
	req.True(edge.Involves(addressee))
	req.False(edge.Involves(stranger))

	req.Equal(addressee, edge.OtherParty(requester))
	req.Equal(requester, edge.OtherParty(addressee))
	req.Equal(uuid.Nil, edge.OtherParty(stranger))
}

func TestCanonicalPair_Is_Order_Insensitive(t *testing.T) {
	req := require.New(t)
	a := uuid.New()
	b := uuid.New()

	lo1, hi1 := CanonicalPair(a, b)
	lo2, hi2 := CanonicalPair(b, a)

	req.Equal(lo1, lo2)
	req.Equal(hi1, hi2)
	req.Equal(PairKey(a, b), PairKey(b, a))
}

func TestFriendshipStatus_Valid(t *testing.T) {
	req := require.New(t)
	req.True(StatusPending.Valid())
	req.True(StatusAccepted.Valid())
	req.True(StatusBlocked.Valid())
	req.False(FriendshipStatus("friendly").Valid())
}
