package search

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	"courier/domain"
	"courier/domain/content"
)

func newMessage(conversationID uuid.UUID, text string) domain.Message {
	return domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		AuthorID:       uuid.New(),
		Content:        content.Text(text),
		CreatedAt:      time.Now().UTC(),
	}
}

func Test_Search_Finds_Indexed_Message(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewMessageIndex(blugeWriter, slog.Default())
	conversationID := uuid.New()
	message := newMessage(conversationID, "meet me at the harbor tonight")
	req.NoError(index.Index(message))

	ids, err := index.Search(context.Background(), conversationID, "harbor", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{message.ID}, ids)
}

func Test_Search_Is_Scoped_To_The_Conversation(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewMessageIndex(blugeWriter, slog.Default())
	first, second := uuid.New(), uuid.New()
	inFirst := newMessage(first, "the harbor is foggy")
	inSecond := newMessage(second, "the harbor is sunny")
	req.NoError(index.Index(inFirst))
	req.NoError(index.Index(inSecond))

	ids, err := index.Search(context.Background(), first, "harbor", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{inFirst.ID}, ids)
}

func Test_Index_Is_An_Upsert(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewMessageIndex(blugeWriter, slog.Default())
	conversationID := uuid.New()
	message := newMessage(conversationID, "original wording")
	req.NoError(index.Index(message))

	// When re-indexing the same id with new content
	message.Content = content.Text("revised wording")
	req.NoError(index.Index(message))

	// Then the old terms no longer match and the new ones do
	ids, err := index.Search(context.Background(), conversationID, "original", 10)
	req.NoError(err)
	req.Empty(ids)
	ids, err = index.Search(context.Background(), conversationID, "revised", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{message.ID}, ids)
}

func Test_Remove_Drops_The_Message(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewMessageIndex(blugeWriter, slog.Default())
	conversationID := uuid.New()
	message := newMessage(conversationID, "soon to be deleted")
	req.NoError(index.Index(message))
	req.NoError(index.Remove(message.ID))

	ids, err := index.Search(context.Background(), conversationID, "deleted", 10)
	req.NoError(err)
	req.Empty(ids)
}

func Test_Search_Blank_Terms_Return_Nothing(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewMessageIndex(blugeWriter, slog.Default())

	ids, err := index.Search(context.Background(), uuid.New(), "   ", 10)
	req.NoError(err)
	req.Nil(ids)
}
