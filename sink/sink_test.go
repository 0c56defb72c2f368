package sink

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
	"courier/domain/event"
	"courier/infrastructure/search"
	"courier/repositories"
)

func insertedEvent(conversationID, authorID uuid.UUID, text string) event.MessageInserted {
	return event.MessageInserted{Message: domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        content.Text(text),
		CreatedAt:      time.Now().UTC(),
	}}
}

func Test_UnreadSink_Spares_The_Author(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	conversations := repositories.NewConversationRepository(badgerDB, slog.Default())
	alice, bob := uuid.New(), uuid.New()
	conv, _, err := conversations.FindOrCreate(alice, bob)
	req.NoError(err)

	s := NewUnreadSink(conversations, slog.Default())
	req.NoError(s.Consume(context.Background(), insertedEvent(conv.ID, alice, "hello")))
	req.NoError(s.Consume(context.Background(), insertedEvent(conv.ID, alice, "you there?")))

	bobUnread, err := conversations.GetUnread(conv.ID, bob)
	req.NoError(err)
	req.Equal(uint64(2), bobUnread)
	aliceUnread, err := conversations.GetUnread(conv.ID, alice)
	req.NoError(err)
	req.Zero(aliceUnread)
}

func Test_UnreadSink_Ignores_Other_Events(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	conversations := repositories.NewConversationRepository(badgerDB, slog.Default())
	s := NewUnreadSink(conversations, slog.Default())

	req.NoError(s.Consume(context.Background(), event.MessageDeleted{
		Conversation: uuid.New(), MessageID: uuid.New(), At: time.Now().UTC(),
	}))
}

func Test_SearchSink_Follows_The_Message_Lifecycle(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := search.NewMessageIndex(blugeWriter, slog.Default())
	s := NewSearchSink(index, slog.Default())
	ctx := context.Background()
	conversationID := uuid.New()

	inserted := insertedEvent(conversationID, uuid.New(), "the harbor is foggy")
	req.NoError(s.Consume(ctx, inserted))

	ids, err := index.Search(ctx, conversationID, "foggy", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{inserted.Message.ID}, ids)

	// An edit reindexes under the same id
	edited := inserted.Message
	edited.Content = content.Text("the harbor is sunny")
	req.NoError(s.Consume(ctx, event.MessageUpdated{Message: edited}))
	ids, err = index.Search(ctx, conversationID, "foggy", 10)
	req.NoError(err)
	req.Empty(ids)

	req.NoError(s.Consume(ctx, event.MessageDeleted{
		Conversation: conversationID, MessageID: edited.ID, At: time.Now().UTC(),
	}))
	ids, err = index.Search(ctx, conversationID, "sunny", 10)
	req.NoError(err)
	req.Empty(ids)
}

func Test_GrpcSink_Drops_When_The_Client_Lags(t *testing.T) {
	req := require.New(t)
	s := NewGrpcSink(1)
	ctx := context.Background()
	conversationID := uuid.New()

	first := insertedEvent(conversationID, uuid.New(), "first")
	second := insertedEvent(conversationID, uuid.New(), "second")

	req.NoError(s.Consume(ctx, first))
	// Buffer full: the event is dropped, never blocking the fan-out
	req.NoError(s.Consume(ctx, second))

	req.Equal(first, <-s.ConnectedUserEvent)
	select {
	case evt := <-s.ConnectedUserEvent:
		t.Fatalf("unexpected buffered event: %v", evt)
	default:
	}
}
