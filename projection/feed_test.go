package projection

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"courier/domain"
	"courier/domain/event"
	apperrors "courier/errors"
)

// fakeBackend serves canned pages and a controllable event channel.
type fakeBackend struct {
	mu         sync.Mutex
	pages      map[string][]domain.Message // "" keys the head page
	hasMore    map[string]bool
	pageErr    error
	pageCalls  int
	events     chan event.DomainEvent
	subscribes int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		pages:   make(map[string][]domain.Message),
		hasMore: make(map[string]bool),
		events:  make(chan event.DomainEvent, 16),
	}
}

func (b *fakeBackend) page(_ context.Context, _ int, before *string) ([]domain.Message, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pageCalls++
	if b.pageErr != nil {
		return nil, false, b.pageErr
	}
	key := ""
	if before != nil {
		key = *before
	}
	return b.pages[key], b.hasMore[key], nil
}

func (b *fakeBackend) subscribe(_ context.Context) (<-chan event.DomainEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribes++
	return b.events, nil
}

func cursorByID(m domain.Message) string { return m.ID.String() }

func Test_Open_Seeds_And_Applies_Live_Events(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	seeded := makeMessage(conversationID, author, base, "seeded")

	backend := newFakeBackend()
	backend.pages[""] = []domain.Message{seeded}

	feed := NewFeed(conversationID, backend.page, backend.subscribe, cursorByID, slog.Default())
	req.NoError(feed.Open(context.Background()))
	defer feed.Close()

	live := makeMessage(conversationID, author, base.Add(time.Second), "live")
	backend.events <- event.MessageInserted{Message: live}

	req.Eventually(func() bool {
		return len(feed.Snapshot()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	snapshot := feed.Snapshot()
	req.Equal(seeded.ID, snapshot[0].ID)
	req.Equal(live.ID, snapshot[1].ID)
}

func Test_Open_Fails_When_The_Seed_Fetch_Fails(t *testing.T) {
	req := require.New(t)
	backend := newFakeBackend()
	backend.pageErr = apperrors.Transient("backend down", nil)

	feed := NewFeed(uuid.New(), backend.page, backend.subscribe, cursorByID, slog.Default())

	req.Error(feed.Open(context.Background()))
	req.Empty(feed.Snapshot())
	// Close on an unopened feed must not block or panic
	feed.Close()
}

func Test_LoadOlder_Walks_History(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	oldest := makeMessage(conversationID, author, base, "oldest")
	newest := makeMessage(conversationID, author, base.Add(time.Minute), "newest")

	backend := newFakeBackend()
	backend.pages[""] = []domain.Message{newest}
	backend.hasMore[""] = true
	backend.pages[newest.ID.String()] = []domain.Message{oldest}

	feed := NewFeed(conversationID, backend.page, backend.subscribe, cursorByID, slog.Default())
	req.NoError(feed.Open(context.Background()))
	defer feed.Close()

	more, err := feed.LoadOlder(context.Background())
	req.NoError(err)
	req.False(more)
	snapshot := feed.Snapshot()
	req.Len(snapshot, 2)
	req.Equal(oldest.ID, snapshot[0].ID)

	// History is exhausted: no further fetch happens
	calls := backend.pageCalls
	more, err = feed.LoadOlder(context.Background())
	req.NoError(err)
	req.False(more)
	req.Equal(calls, backend.pageCalls)
}

func Test_LoadOlder_Failed_Fetch_Mutates_Nothing(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	newest := makeMessage(conversationID, author, time.Now().UTC(), "newest")

	backend := newFakeBackend()
	backend.pages[""] = []domain.Message{newest}
	backend.hasMore[""] = true

	feed := NewFeed(conversationID, backend.page, backend.subscribe, cursorByID, slog.Default())
	req.NoError(feed.Open(context.Background()))
	defer feed.Close()

	backend.mu.Lock()
	backend.pageErr = apperrors.Transient("backend down", nil)
	backend.mu.Unlock()

	more, err := feed.LoadOlder(context.Background())
	req.Error(err)
	req.False(more)
	req.Len(feed.Snapshot(), 1)

	// The next attempt can still succeed from the same cursor
	backend.mu.Lock()
	backend.pageErr = nil
	backend.pages[newest.ID.String()] = []domain.Message{makeMessage(conversationID, author, newest.CreatedAt.Add(-time.Minute), "older")}
	backend.mu.Unlock()

	more, err = feed.LoadOlder(context.Background())
	req.NoError(err)
	req.False(more)
	req.Len(feed.Snapshot(), 2)
}

func Test_Closed_Stream_Triggers_Resubscribe_And_Reseed(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	author := uuid.New()
	base := time.Now().UTC()
	missed := makeMessage(conversationID, author, base, "missed during the outage")

	backend := newFakeBackend()

	feed := NewFeed(conversationID, backend.page, backend.subscribe, cursorByID, slog.Default())
	req.NoError(feed.Open(context.Background()))
	defer feed.Close()

	// The connection drops; the head page now contains a message the stream
	// never delivered
	backend.mu.Lock()
	dropped := backend.events
	backend.events = make(chan event.DomainEvent, 16)
	backend.pages[""] = []domain.Message{missed}
	backend.mu.Unlock()
	close(dropped)

	req.Eventually(func() bool {
		snapshot := feed.Snapshot()
		return len(snapshot) == 1 && snapshot[0].ID == missed.ID
	}, 5*time.Second, 20*time.Millisecond)

	backend.mu.Lock()
	subscribes := backend.subscribes
	backend.mu.Unlock()
	req.Equal(2, subscribes)
}

func Test_Close_Stops_The_Background_Loop(t *testing.T) {
	req := require.New(t)
	backend := newFakeBackend()

	feed := NewFeed(uuid.New(), backend.page, backend.subscribe, cursorByID, slog.Default())
	req.NoError(feed.Open(context.Background()))

	feed.Close()

	// Events sent after Close are never applied
	backend.events <- event.MessageInserted{Message: makeMessage(feed.reconciler.ConversationID(), uuid.New(), time.Now().UTC(), "late")}
	time.Sleep(50 * time.Millisecond)
	req.Empty(feed.Snapshot())
}
