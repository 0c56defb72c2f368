package repositories

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	apperrors "courier/errors"
)

func Test_CreateUser_And_Lookups(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewUserRepository(badgerDB, slog.Default())

	created, err := repository.CreateUser("alice", "Alice", "hash")
	req.NoError(err)
	req.NotEqual(uuid.Nil, created.ID)

	byName, err := repository.GetByUsername("alice")
	req.NoError(err)
	req.Equal(created.ID, byName.ID)

	byID, err := repository.GetByID(created.ID)
	req.NoError(err)
	req.Equal("alice", byID.Username)
}

func Test_CreateUser_Rejects_Taken_Username(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewUserRepository(badgerDB, slog.Default())

	_, err = repository.CreateUser("alice", "Alice", "hash")
	req.NoError(err)

	// The same name again, regardless of display name
	_, err = repository.CreateUser("alice", "Other Alice", "hash2")
	req.ErrorIs(err, apperrors.ErrUsernameTaken)
}

func Test_GetByUsername_Unknown(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewUserRepository(badgerDB, slog.Default())

	_, err = repository.GetByUsername("nobody")
	req.ErrorIs(err, apperrors.ErrUserNotFound)
}

func Test_SearchByPrefix(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewUserRepository(badgerDB, slog.Default())
	for _, name := range []string{"bob", "bobby", "boris", "carol"} {
		_, err := repository.CreateUser(name, name, "hash")
		req.NoError(err)
	}

	users, err := repository.SearchByPrefix("bob", 10)
	req.NoError(err)
	req.Len(users, 2)

	users, err = repository.SearchByPrefix("bo", 2)
	req.NoError(err)
	req.Len(users, 2)

	users, err = repository.SearchByPrefix("z", 10)
	req.NoError(err)
	req.Empty(users)
}

func Test_UpdatePresence(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewUserRepository(badgerDB, slog.Default())
	created, err := repository.CreateUser("alice", "Alice", "hash")
	req.NoError(err)

	req.NoError(repository.UpdatePresence(created.ID, "away"))

	user, err := repository.GetByID(created.ID)
	req.NoError(err)
	req.Equal("away", user.Presence)
}
