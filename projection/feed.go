package projection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"courier/domain"
	"courier/domain/event"
	"courier/errors"
)

const (
	feedPageLimit      = 50
	reconnectBaseDelay = 500 * time.Millisecond
	reconnectMaxDelay  = 30 * time.Second
)

// PageFunc fetches one page of history, newest first. A nil cursor means the
// head of the log.
type PageFunc func(ctx context.Context, limit int, before *string) ([]domain.Message, bool, error)

// SubscribeFunc opens the live event stream for the conversation. The
// returned channel closes when the connection is lost; the feed then
// resubscribes on its own.
type SubscribeFunc func(ctx context.Context) (<-chan event.DomainEvent, error)

// CursorFunc renders the opaque pagination cursor for a message.
type CursorFunc func(domain.Message) string

// Feed owns the live view of one open conversation: a reconciler, its
// subscription, and the reconnect loop. Opening acquires the subscription;
// Close releases it deterministically on every path, no work continues in
// the background afterwards.
type Feed struct {
	mu         sync.Mutex
	reconciler *Reconciler
	page       PageFunc
	subscribe  SubscribeFunc
	cursorOf   CursorFunc
	log        *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewFeed(conversationID uuid.UUID, page PageFunc, subscribe SubscribeFunc,
	cursorOf CursorFunc, log *slog.Logger) *Feed {
	return &Feed{
		reconciler: NewReconciler(conversationID),
		page:       page,
		subscribe:  subscribe,
		cursorOf:   cursorOf,
		log:        log,
	}
}

// Open subscribes first and seeds afterwards, so no event can fall between
// the snapshot and the stream; events arriving before the seed resolves are
// absorbed by the id-based merge. A failed seed closes the subscription and
// leaves the feed unopened.
func (f *Feed) Open(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	events, err := f.subscribe(runCtx)
	if err != nil {
		cancel()
		return errors.Transient("subscription failed", err)
	}

	messages, hasMore, err := f.page(ctx, feedPageLimit, nil)
	if err != nil {
		cancel()
		return err
	}
	f.mu.Lock()
	f.reconciler.Seed(messages, hasMore)
	f.mu.Unlock()

	f.cancel = cancel
	f.done = make(chan struct{})
	go f.run(runCtx, events)
	return nil
}

// LoadOlder fetches the page below the current oldest message and merges it
// at the head. Returns false when history is exhausted. A failed fetch
// mutates nothing.
func (f *Feed) LoadOlder(ctx context.Context) (bool, error) {
	f.mu.Lock()
	oldest, ok := f.reconciler.OldestCursorAt()
	hasMore := f.reconciler.HasMore()
	f.mu.Unlock()

	if !ok || !hasMore {
		return false, nil
	}
	cursor := f.cursorOf(oldest)
	messages, more, err := f.page(ctx, feedPageLimit, &cursor)
	if err != nil {
		return false, err
	}
	f.mu.Lock()
	f.reconciler.MergeOlder(messages, more)
	f.mu.Unlock()
	return more, nil
}

// Snapshot returns a copy of the timeline, oldest first.
func (f *Feed) Snapshot() []domain.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Message, len(f.reconciler.Messages()))
	copy(out, f.reconciler.Messages())
	return out
}

func (f *Feed) Groups() []Group {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reconciler.Groups()
}

// Close releases the subscription and stops the reconnect loop. Blocks until
// the background goroutine has exited. Safe to call on an unopened feed.
func (f *Feed) Close() {
	if f.cancel == nil {
		return
	}
	f.cancel()
	<-f.done
	f.cancel = nil
}

// run consumes the stream until the context is canceled. A closed channel
// means the connection dropped: resubscribe with capped exponential backoff,
// then refetch the newest page to close any gap, since the transport gives
// no gap-filling guarantee.
func (f *Feed) run(ctx context.Context, events <-chan event.DomainEvent) {
	defer close(f.done)

	delay := reconnectBaseDelay
	for {
		select {
		case <-ctx.Done():
			return
		case evt, open := <-events:
			if !open {
				events = f.reconnect(ctx, &delay)
				if events == nil {
					return
				}
				continue
			}
			delay = reconnectBaseDelay
			f.mu.Lock()
			f.reconciler.Apply(evt)
			f.mu.Unlock()
		}
	}
}

func (f *Feed) reconnect(ctx context.Context, delay *time.Duration) <-chan event.DomainEvent {
	for {
		f.log.Warn("Live channel lost, resubscribing",
			"conversation", f.reconciler.ConversationID(), "delay", *delay)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(*delay):
		}
		if *delay < reconnectMaxDelay {
			*delay *= 2
			if *delay > reconnectMaxDelay {
				*delay = reconnectMaxDelay
			}
		}

		events, err := f.subscribe(ctx)
		if err != nil {
			continue
		}
		if messages, hasMore, err := f.page(ctx, feedPageLimit, nil); err == nil {
			f.mu.Lock()
			f.reconciler.Seed(messages, hasMore)
			f.mu.Unlock()
		}
		return events
	}
}
