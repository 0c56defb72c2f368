package sink

import (
	"context"
	"log/slog"

	"courier/domain/event"
	"courier/infrastructure/search"
)

// SearchSink keeps the full-text index in step with the message log. Indexing
// is best-effort; a failed write is logged and the message stays findable
// through normal pagination.
type SearchSink struct {
	index search.IMessageIndex
	log   *slog.Logger
}

func NewSearchSink(index search.IMessageIndex, log *slog.Logger) SearchSink {
	return SearchSink{index: index, log: log}
}

func (s SearchSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageInserted:
		return s.index.Index(evt.Message)
	case event.MessageUpdated:
		return s.index.Index(evt.Message)
	case event.MessageDeleted:
		return s.index.Remove(evt.MessageID)
	default:
		return nil
	}
}
