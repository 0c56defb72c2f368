package repositories

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	apperrors "courier/errors"
)

func Test_FindOrCreate_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewConversationRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()

	first, created, err := repository.FindOrCreate(alice, bob)
	req.NoError(err)
	req.True(created)

	// Same pair, reversed order
	second, created, err := repository.FindOrCreate(bob, alice)
	req.NoError(err)
	req.False(created)
	req.Equal(first.ID, second.ID)

	participants, err := repository.Participants(first.ID)
	req.NoError(err)
	req.Len(participants, 2)
}

func Test_Concurrent_FindOrCreate_Single_Conversation(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewConversationRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()

	const callers = 8
	var wg sync.WaitGroup
	ids := make([]uuid.UUID, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conv, _, err := repository.FindOrCreate(alice, bob)
			ids[i], errs[i] = conv.ID, err
		}(i)
	}
	wg.Wait()

	// Every caller observed the same conversation id
	for i := 0; i < callers; i++ {
		req.NoError(errs[i])
		req.Equal(ids[0], ids[i])
	}

	conversations, err := repository.ListByUser(alice)
	req.NoError(err)
	req.Len(conversations, 1)
}

func Test_IsParticipant(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewConversationRepository(badgerDB, slog.Default())
	alice, bob, eve := uuid.New(), uuid.New(), uuid.New()

	conv, _, err := repository.FindOrCreate(alice, bob)
	req.NoError(err)

	ok, err := repository.IsParticipant(conv.ID, alice)
	req.NoError(err)
	req.True(ok)

	ok, err = repository.IsParticipant(conv.ID, eve)
	req.NoError(err)
	req.False(ok)
}

func Test_Delete_Conversation_Cascades(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewConversationRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()

	conv, _, err := repository.FindOrCreate(alice, bob)
	req.NoError(err)
	req.NoError(repository.IncrementUnread(conv.ID, bob))

	req.NoError(repository.Delete(conv.ID))

	_, err = repository.GetByID(conv.ID)
	req.ErrorIs(err, apperrors.ErrConversationNotFound)
	participants, err := repository.Participants(conv.ID)
	req.NoError(err)
	req.Empty(participants)
	conversations, err := repository.ListByUser(bob)
	req.NoError(err)
	req.Empty(conversations)

	// The pair anchor is gone too: a new conversation can be created
	fresh, created, err := repository.FindOrCreate(alice, bob)
	req.NoError(err)
	req.True(created)
	req.NotEqual(conv.ID, fresh.ID)
}

func Test_Unread_Counters(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewConversationRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()
	conv, _, err := repository.FindOrCreate(alice, bob)
	req.NoError(err)

	// Fresh counter reads zero
	count, err := repository.GetUnread(conv.ID, bob)
	req.NoError(err)
	req.Zero(count)

	req.NoError(repository.IncrementUnread(conv.ID, bob))
	req.NoError(repository.IncrementUnread(conv.ID, bob))
	count, err = repository.GetUnread(conv.ID, bob)
	req.NoError(err)
	req.Equal(uint64(2), count)

	// Alice's counter is independent
	count, err = repository.GetUnread(conv.ID, alice)
	req.NoError(err)
	req.Zero(count)

	req.NoError(repository.ResetUnread(conv.ID, bob))
	count, err = repository.GetUnread(conv.ID, bob)
	req.NoError(err)
	req.Zero(count)
}
