package projection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"courier/domain"
	"courier/domain/content"
	"courier/domain/event"
)

func makeMessage(conversationID, authorID uuid.UUID, at time.Time, text string) domain.Message {
	return domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        content.Text(text),
		CreatedAt:      at,
	}
}

func ids(messages []domain.Message) []uuid.UUID {
	out := make([]uuid.UUID, len(messages))
	for i, m := range messages {
		out[i] = m.ID
	}
	return out
}

func Test_Seed_Orders_Oldest_First(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	older := makeMessage(conversationID, author, base, "older")
	newer := makeMessage(conversationID, author, base.Add(time.Minute), "newer")

	reconciler := NewReconciler(conversationID)
	// Pages arrive newest first
	reconciler.Seed([]domain.Message{newer, older}, false)

	req.Equal([]uuid.UUID{older.ID, newer.ID}, ids(reconciler.Messages()))
	req.False(reconciler.HasMore())
}

func Test_Replaying_An_Insert_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	message := makeMessage(conversationID, uuid.New(), time.Now().UTC(), "once")

	reconciler := NewReconciler(conversationID)
	reconciler.Apply(event.MessageInserted{Message: message})
	reconciler.Apply(event.MessageInserted{Message: message})

	req.Len(reconciler.Messages(), 1)
}

func Test_Live_Insert_Racing_The_Seed_Page(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	seeded := makeMessage(conversationID, author, base, "seeded")
	live := makeMessage(conversationID, author, base.Add(time.Second), "live")

	reconciler := NewReconciler(conversationID)
	// The live event lands first, then the page arrives containing both
	reconciler.Apply(event.MessageInserted{Message: live})
	reconciler.Seed([]domain.Message{live, seeded}, false)

	req.Equal([]uuid.UUID{seeded.ID, live.ID}, ids(reconciler.Messages()))
}

func Test_Delayed_Insert_Lands_In_The_Middle(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	first := makeMessage(conversationID, author, base, "first")
	second := makeMessage(conversationID, author, base.Add(time.Minute), "second")
	third := makeMessage(conversationID, author, base.Add(2*time.Minute), "third")

	reconciler := NewReconciler(conversationID)
	reconciler.Insert(first)
	reconciler.Insert(third)
	// The event for the middle message arrives last
	reconciler.Insert(second)

	req.Equal([]uuid.UUID{first.ID, second.ID, third.ID}, ids(reconciler.Messages()))
}

func Test_Insert_Ignores_Other_Conversations(t *testing.T) {
	req := require.New(t)
	reconciler := NewReconciler(uuid.New())

	reconciler.Insert(makeMessage(uuid.New(), uuid.New(), time.Now().UTC(), "elsewhere"))

	req.Empty(reconciler.Messages())
}

func Test_Update_Never_Reorders(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	first := makeMessage(conversationID, author, base, "first")
	second := makeMessage(conversationID, author, base.Add(time.Minute), "second")

	reconciler := NewReconciler(conversationID)
	reconciler.Seed([]domain.Message{second, first}, false)

	edited := first
	edited.Content = content.Text("edited")
	now := time.Now().UTC()
	edited.UpdatedAt = &now
	reconciler.Apply(event.MessageUpdated{Message: edited})

	timeline := reconciler.Messages()
	req.Equal([]uuid.UUID{first.ID, second.ID}, ids(timeline))
	req.Equal("edited", timeline[0].Content.PlainText())
	req.NotNil(timeline[0].UpdatedAt)
}

func Test_Update_Unknown_Id_Is_Ignored(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	reconciler := NewReconciler(conversationID)

	reconciler.Update(makeMessage(conversationID, uuid.New(), time.Now().UTC(), "ghost"))

	req.Empty(reconciler.Messages())
}

func Test_Delete_Is_A_NoOp_When_Absent(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	message := makeMessage(conversationID, uuid.New(), time.Now().UTC(), "kept")

	reconciler := NewReconciler(conversationID)
	reconciler.Insert(message)
	reconciler.Delete(uuid.New())

	req.Len(reconciler.Messages(), 1)
}

func Test_Delete_Reindexes_The_Remainder(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	first := makeMessage(conversationID, author, base, "first")
	second := makeMessage(conversationID, author, base.Add(time.Minute), "second")
	third := makeMessage(conversationID, author, base.Add(2*time.Minute), "third")

	reconciler := NewReconciler(conversationID)
	reconciler.Seed([]domain.Message{third, second, first}, false)
	reconciler.Apply(event.MessageDeleted{Conversation: conversationID, MessageID: second.ID, At: time.Now().UTC()})

	req.Equal([]uuid.UUID{first.ID, third.ID}, ids(reconciler.Messages()))
	// A later delete of a survivor still resolves correctly
	reconciler.Delete(third.ID)
	req.Equal([]uuid.UUID{first.ID}, ids(reconciler.Messages()))
}

func Test_MergeOlder_Prepends_And_Updates_HasMore(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	oldest := makeMessage(conversationID, author, base, "oldest")
	middle := makeMessage(conversationID, author, base.Add(time.Minute), "middle")
	newest := makeMessage(conversationID, author, base.Add(2*time.Minute), "newest")

	reconciler := NewReconciler(conversationID)
	reconciler.Seed([]domain.Message{newest, middle}, true)
	req.True(reconciler.HasMore())

	reconciler.MergeOlder([]domain.Message{oldest}, false)

	req.Equal([]uuid.UUID{oldest.ID, middle.ID, newest.ID}, ids(reconciler.Messages()))
	req.False(reconciler.HasMore())

	bound, ok := reconciler.OldestCursorAt()
	req.True(ok)
	req.Equal(oldest.ID, bound.ID)
}

func Test_Groups_Cluster_Same_Author_Within_Quiet_Interval(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	base := time.Now().UTC()

	reconciler := NewReconciler(conversationID)
	reconciler.Insert(makeMessage(conversationID, alice, base, "hi"))
	reconciler.Insert(makeMessage(conversationID, alice, base.Add(time.Minute), "you there?"))
	reconciler.Insert(makeMessage(conversationID, bob, base.Add(2*time.Minute), "yes"))
	// Same author again, but past the quiet interval: a new group starts
	reconciler.Insert(makeMessage(conversationID, bob, base.Add(2*time.Minute+GroupQuietInterval), "still there?"))

	groups := reconciler.Groups()
	req.Len(groups, 3)
	req.Equal(alice, groups[0].AuthorID)
	req.Len(groups[0].Messages, 2)
	req.Equal(bob, groups[1].AuthorID)
	req.Len(groups[1].Messages, 1)
	req.Equal(bob, groups[2].AuthorID)
	req.Len(groups[2].Messages, 1)
}
