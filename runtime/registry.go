package runtime

import (
	"sync"

	"github.com/google/uuid"

	"courier/contract"
)

type Set map[uuid.UUID]struct{}

// Registry tracks live subscriptions. A session is keyed by (user,
// conversation): one user may hold several conversation streams at once, each
// with its own sink. The conversation membership map routes
// conversation-scoped events to whoever is currently listening on that
// thread; user-addressed events reach every open stream of the user.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[uuid.UUID]contract.EventSink // user -> conversation -> sink
	members  map[uuid.UUID]Set                              // conversation -> user ids
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]map[uuid.UUID]contract.EventSink),
		members:  make(map[uuid.UUID]Set),
	}
}

// GetSinksForConversation resolves the conversation's live members into the
// sinks subscribed to that conversation. A member without a session on it
// (disconnected) is simply skipped; they will catch up through the unread
// counter and the next page fetch.
func (r *Registry) GetSinksForConversation(conversationID uuid.UUID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.members[conversationID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for userID := range members {
		if sink, exists := r.sessions[userID][conversationID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// GetSinksForUser returns every open stream of the user, across all of their
// subscribed conversations. Used for events addressed to the user directly.
func (r *Registry) GetSinksForUser(userID uuid.UUID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sinks []contract.EventSink
	for _, sink := range r.sessions[userID] {
		sinks = append(sinks, sink)
	}
	return sinks
}

// Subscribe registers a stream of the user on a conversation. Re-subscribing
// to the same conversation with a new sink replaces the previous one, so a
// reconnect never leaves a stale session behind; streams on other
// conversations are untouched.
func (r *Registry) Subscribe(userID, conversationID uuid.UUID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[userID]; !ok {
		r.sessions[userID] = make(map[uuid.UUID]contract.EventSink)
	}
	r.sessions[userID][conversationID] = sink

	if _, ok := r.members[conversationID]; !ok {
		r.members[conversationID] = make(Set)
	}
	r.members[conversationID][userID] = struct{}{}
}

// Unsubscribe drops one (user, conversation) session. The user's streams on
// other conversations stay live. Empty maps are removed so the registry does
// not grow with dead conversations.
func (r *Registry) Unsubscribe(userID, conversationID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conversations, ok := r.sessions[userID]; ok {
		delete(conversations, conversationID)
		if len(conversations) == 0 {
			delete(r.sessions, userID)
		}
	}

	if members, ok := r.members[conversationID]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(r.members, conversationID)
		}
	}
}
