package services

import (
	"context"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"courier/domain"
	"courier/domain/event"
	"courier/errors"
)

func Test_SendRequest_Creates_Pending_Edge(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	f.registerUser(t, "bob")

	edge, err := f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	req.NoError(err)
	req.Equal(domain.StatusPending, edge.Edge.Status)
	req.Equal(alice.ID, edge.Edge.RequesterID)
	req.Equal("bob", edge.Addressee.Username)

	changed, ok := f.publisher.last().(event.FriendshipChanged)
	req.True(ok)
	req.Equal(edge.Edge.ID, changed.Edge.ID)
}

func Test_SendRequest_To_Yourself(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.registerUser(t, "alice")

	_, err := f.friendshipService.SendRequest(context.Background(), alice.ID, "alice")
	req.True(errors.HasCode(err, errors.CodeSelfReference))
}

func Test_SendRequest_To_Unknown_User(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.registerUser(t, "alice")

	_, err := f.friendshipService.SendRequest(context.Background(), alice.ID, "nobody")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_Mirror_Request_Is_Rejected(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")

	_, err := f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	req.NoError(err)

	// Bob requesting Alice hits the same pair
	_, err = f.friendshipService.SendRequest(ctx, bob.ID, "alice")
	req.ErrorIs(err, errors.ErrEdgeExists)
}

func Test_Concurrent_Mirror_Requests_Leave_One_Edge(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.friendshipService.SendRequest(ctx, bob.ID, "alice")
	}()
	wg.Wait()

	winners := lo.CountBy(errs, func(err error) bool { return err == nil })
	req.Equal(1, winners)

	edges, err := f.friendshipService.ListEdges(ctx, alice.ID, nil)
	req.NoError(err)
	req.Len(edges, 1)
}

func Test_Accept_Is_Addressee_Only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")

	edge, err := f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	req.NoError(err)

	// The requester cannot accept their own request
	_, err = f.friendshipService.Accept(ctx, edge.Edge.ID, alice.ID)
	req.True(errors.HasCode(err, errors.CodeForbidden))

	accepted, err := f.friendshipService.Accept(ctx, edge.Edge.ID, bob.ID)
	req.NoError(err)
	req.Equal(domain.StatusAccepted, accepted.Status)
	req.Equal(bob.ID, accepted.LastActorID)

	friends, err := f.friendshipService.AreFriends(ctx, alice.ID, bob.ID)
	req.NoError(err)
	req.True(friends)
}

func Test_Accept_A_Blocked_Edge_Is_Invalid(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")

	edge, err := f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	req.NoError(err)
	_, err = f.friendshipService.Block(ctx, edge.Edge.ID, bob.ID)
	req.NoError(err)

	_, err = f.friendshipService.Accept(ctx, edge.Edge.ID, bob.ID)
	req.True(errors.HasCode(err, errors.CodeInvalidState))
}

func Test_Block_From_Any_State(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")
	eve := f.registerUser(t, "eve")

	edge, err := f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	req.NoError(err)
	_, err = f.friendshipService.Accept(ctx, edge.Edge.ID, bob.ID)
	req.NoError(err)

	// A third party cannot touch the edge
	_, err = f.friendshipService.Block(ctx, edge.Edge.ID, eve.ID)
	req.True(errors.HasCode(err, errors.CodeForbidden))

	blocked, err := f.friendshipService.Block(ctx, edge.Edge.ID, alice.ID)
	req.NoError(err)
	req.Equal(domain.StatusBlocked, blocked.Status)

	// Blocking ends the friendship
	friends, err := f.friendshipService.AreFriends(ctx, alice.ID, bob.ID)
	req.NoError(err)
	req.False(friends)
}

func Test_CancelOrRemove_Emits_The_Previous_Status(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")

	edge, err := f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	req.NoError(err)
	_, err = f.friendshipService.Accept(ctx, edge.Edge.ID, bob.ID)
	req.NoError(err)

	req.NoError(f.friendshipService.CancelOrRemove(ctx, edge.Edge.ID, alice.ID))

	removed, ok := f.publisher.last().(event.FriendshipRemoved)
	req.True(ok)
	req.Equal(domain.StatusAccepted, removed.PreviousStatus)

	// The pair is free again
	_, err = f.friendshipService.SendRequest(ctx, bob.ID, "alice")
	req.NoError(err)
}

func Test_ListEdges_Filters_By_Status(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")
	f.registerUser(t, "carol")

	pending, err := f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	req.NoError(err)
	_, err = f.friendshipService.Accept(ctx, pending.Edge.ID, bob.ID)
	req.NoError(err)
	_, err = f.friendshipService.SendRequest(ctx, alice.ID, "carol")
	req.NoError(err)

	all, err := f.friendshipService.ListEdges(ctx, alice.ID, nil)
	req.NoError(err)
	req.Len(all, 2)

	accepted, err := f.friendshipService.ListEdges(ctx, alice.ID, lo.ToPtr(domain.StatusAccepted))
	req.NoError(err)
	req.Len(accepted, 1)
	req.Equal("bob", accepted[0].Addressee.Username)
}
