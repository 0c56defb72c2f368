// Package projection builds local timelines from a history snapshot and the
// observed event stream. Handles ordering, deduplication, and display
// grouping. Does not emit events and holds no connection state.
package projection

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"courier/domain"
	"courier/domain/event"
)

// Reconciler merges paginated history with live events into one ordered,
// duplicate-free timeline for a single conversation.
//
// All merging is keyed by message id, which makes the structure idempotent:
// replaying an insert, or racing a live insert against the seeding page
// fetch, leaves the timeline unchanged. Arrival order is irrelevant to the
// final state.
//
// Reconciler is not safe for concurrent use; the feed serializes access.
type Reconciler struct {
	conversationID uuid.UUID
	messages       []domain.Message // ascending by (created_at, id)
	byID           map[uuid.UUID]int
	hasMore        bool
	seeded         bool
}

func NewReconciler(conversationID uuid.UUID) *Reconciler {
	return &Reconciler{
		conversationID: conversationID,
		byID:           make(map[uuid.UUID]int),
		hasMore:        true,
	}
}

func (r *Reconciler) ConversationID() uuid.UUID { return r.conversationID }

// Messages returns the timeline oldest first. The slice is shared; callers
// must not mutate it.
func (r *Reconciler) Messages() []domain.Message { return r.messages }

// HasMore reports whether an older page may still exist.
func (r *Reconciler) HasMore() bool { return r.hasMore }

// Seed loads the newest page. Live events applied before seeding are kept;
// the page merges around them by id.
func (r *Reconciler) Seed(page []domain.Message, hasMore bool) {
	for _, message := range page {
		r.upsert(message)
	}
	r.hasMore = hasMore
	r.seeded = true
}

// MergeOlder merges a page fetched below the current oldest message. The
// hasMore flag of the page replaces the current one, gating further loads.
func (r *Reconciler) MergeOlder(page []domain.Message, hasMore bool) {
	for _, message := range page {
		r.upsert(message)
	}
	r.hasMore = hasMore
}

// OldestCursorAt returns the created_at of the oldest known message, the
// bound for the next older page. False when the timeline is empty.
func (r *Reconciler) OldestCursorAt() (domain.Message, bool) {
	if len(r.messages) == 0 {
		return domain.Message{}, false
	}
	return r.messages[0], true
}

// Apply folds one live event into the timeline.
func (r *Reconciler) Apply(e event.DomainEvent) {
	switch evt := e.(type) {
	case event.MessageInserted:
		r.Insert(evt.Message)
	case event.MessageUpdated:
		r.Update(evt.Message)
	case event.MessageDeleted:
		r.Delete(evt.MessageID)
	}
}

// Insert places the message at the position implied by (created_at, id).
// Never assumes append-at-end: a delayed event for an older message lands in
// the middle. A known id is ignored, absorbing at-least-once duplicates and
// the race with the seeding fetch.
func (r *Reconciler) Insert(message domain.Message) {
	if message.ConversationID != r.conversationID {
		return
	}
	r.upsert(message)
}

// Update replaces content and updated_at in place. The ordering key is part
// of message identity, so an edit never reorders the timeline. Unknown ids
// are ignored; the message lives in a page not yet loaded.
func (r *Reconciler) Update(message domain.Message) {
	pos, ok := r.byID[message.ID]
	if !ok {
		return
	}
	r.messages[pos].Content = message.Content
	r.messages[pos].UpdatedAt = message.UpdatedAt
}

// Delete removes by id, no-op if absent.
func (r *Reconciler) Delete(messageID uuid.UUID) {
	pos, ok := r.byID[messageID]
	if !ok {
		return
	}
	r.messages = append(r.messages[:pos], r.messages[pos+1:]...)
	delete(r.byID, messageID)
	for i := pos; i < len(r.messages); i++ {
		r.byID[r.messages[i].ID] = i
	}
}

func (r *Reconciler) upsert(message domain.Message) {
	if _, exists := r.byID[message.ID]; exists {
		return
	}
	pos := sort.Search(len(r.messages), func(i int) bool {
		return message.Before(r.messages[i])
	})
	r.messages = append(r.messages, domain.Message{})
	copy(r.messages[pos+1:], r.messages[pos:])
	r.messages[pos] = message
	for i := pos; i < len(r.messages); i++ {
		r.byID[r.messages[i].ID] = i
	}
}

// GroupQuietInterval bounds author clustering: consecutive messages from the
// same author closer than this belong to one group.
const GroupQuietInterval = 5 * time.Minute

// Group is a run of consecutive same-author messages, rendered under a
// single header.
type Group struct {
	AuthorID uuid.UUID
	Messages []domain.Message
}

// Groups derives the display clustering. Pure function of the current
// timeline; no state is kept between calls.
func (r *Reconciler) Groups() []Group {
	var groups []Group
	for _, message := range r.messages {
		n := len(groups)
		if n > 0 && groups[n-1].AuthorID == message.AuthorID {
			last := groups[n-1].Messages[len(groups[n-1].Messages)-1]
			if message.CreatedAt.Sub(last.CreatedAt) < GroupQuietInterval {
				groups[n-1].Messages = append(groups[n-1].Messages, message)
				continue
			}
		}
		groups = append(groups, Group{AuthorID: message.AuthorID, Messages: []domain.Message{message}})
	}
	return groups
}
