package repositories

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	"courier/domain"
	apperrors "courier/errors"
)

func Test_Create_And_Get_Edge(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewFriendshipRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()

	created, err := repository.Create(domain.FriendshipEdge{
		RequesterID: alice,
		AddresseeID: bob,
		Status:      domain.StatusPending,
		LastActorID: alice,
	})
	req.NoError(err)
	req.NotEqual(uuid.Nil, created.ID)

	byID, err := repository.GetByID(created.ID)
	req.NoError(err)
	req.Equal(created.ID, byID.ID)
	req.Equal(domain.StatusPending, byID.Status)

	// The pair lookup works in both directions
	byPair, err := repository.GetByPair(bob, alice)
	req.NoError(err)
	req.Equal(created.ID, byPair.ID)
}

func Test_Create_Rejects_Existing_Pair_In_Any_Direction(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewFriendshipRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()

	_, err = repository.Create(domain.FriendshipEdge{
		RequesterID: alice, AddresseeID: bob,
		Status: domain.StatusPending, LastActorID: alice,
	})
	req.NoError(err)

	// The mirrored request hits the same canonical pair key
	_, err = repository.Create(domain.FriendshipEdge{
		RequesterID: bob, AddresseeID: alice,
		Status: domain.StatusPending, LastActorID: bob,
	})
	req.ErrorIs(err, apperrors.ErrEdgeExists)
}

func Test_Concurrent_Create_Leaves_Exactly_One_Edge(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewFriendshipRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	pairs := [][2]uuid.UUID{{alice, bob}, {bob, alice}}
	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, requester, addressee uuid.UUID) {
			defer wg.Done()
			_, errs[i] = repository.Create(domain.FriendshipEdge{
				RequesterID: requester, AddresseeID: addressee,
				Status: domain.StatusPending, LastActorID: requester,
			})
		}(i, pair[0], pair[1])
	}
	wg.Wait()

	// One side won, the other lost with either ErrEdgeExists or a Conflict
	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		lostRace := apperrors.HasCode(err, apperrors.CodeAlreadyExists) ||
			apperrors.HasCode(err, apperrors.CodeConflict)
		req.True(lostRace, "unexpected error: %v", err)
	}
	req.Equal(1, winners)

	edges, err := repository.ListByUser(alice)
	req.NoError(err)
	req.Len(edges, 1)
}

func Test_UpdateStatus(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewFriendshipRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()

	created, err := repository.Create(domain.FriendshipEdge{
		RequesterID: alice, AddresseeID: bob,
		Status: domain.StatusPending, LastActorID: alice,
	})
	req.NoError(err)

	updated, err := repository.UpdateStatus(created.ID, domain.StatusAccepted, bob)
	req.NoError(err)
	req.Equal(domain.StatusAccepted, updated.Status)
	req.Equal(bob, updated.LastActorID)
	req.False(updated.UpdatedAt.Before(created.UpdatedAt))
}

func Test_Delete_Edge_Frees_The_Pair(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewFriendshipRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()

	created, err := repository.Create(domain.FriendshipEdge{
		RequesterID: alice, AddresseeID: bob,
		Status: domain.StatusPending, LastActorID: alice,
	})
	req.NoError(err)

	req.NoError(repository.Delete(created.ID))

	_, err = repository.GetByID(created.ID)
	req.ErrorIs(err, apperrors.ErrEdgeNotFound)
	_, err = repository.GetByPair(alice, bob)
	req.ErrorIs(err, apperrors.ErrEdgeNotFound)
	edges, err := repository.ListByUser(bob)
	req.NoError(err)
	req.Empty(edges)

	// A new request for the same pair is possible again
	_, err = repository.Create(domain.FriendshipEdge{
		RequesterID: bob, AddresseeID: alice,
		Status: domain.StatusPending, LastActorID: bob,
	})
	req.NoError(err)
}

func Test_ListByUser_Only_Involved_Edges(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewFriendshipRepository(badgerDB, slog.Default())
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	_, err = repository.Create(domain.FriendshipEdge{
		RequesterID: alice, AddresseeID: bob,
		Status: domain.StatusPending, LastActorID: alice,
	})
	req.NoError(err)
	_, err = repository.Create(domain.FriendshipEdge{
		RequesterID: carol, AddresseeID: bob,
		Status: domain.StatusPending, LastActorID: carol,
	})
	req.NoError(err)

	aliceEdges, err := repository.ListByUser(alice)
	req.NoError(err)
	req.Len(aliceEdges, 1)

	bobEdges, err := repository.ListByUser(bob)
	req.NoError(err)
	req.Len(bobEdges, 2)
}
