//go:generate go run go.uber.org/mock/mockgen -source=message_index.go -destination=../../mocks/mock_message_index.go -package=mocks
// Package search maintains the full-text index over message plain text.
// The index is derived data: Badger stays the source of truth and the index
// is rebuildable from it.
package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/blugelabs/bluge"
	"github.com/google/uuid"

	"courier/domain"
)

type IMessageIndex interface {
	Index(message domain.Message) error
	Remove(messageID uuid.UUID) error
	Search(ctx context.Context, conversationID uuid.UUID, terms string, limit int) ([]uuid.UUID, error)
}

// Hit identifies an indexed message.
type Hit struct {
	MessageID uuid.UUID
	Score     float64
}

type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

// Index upserts one message. The conversation id is a keyword field so that
// search stays filtered to a single thread; the detected language is stored
// for diagnostics and future per-language analyzers.
func (m *MessageIndex) Index(message domain.Message) error {
	text := message.Content.PlainText()
	lang := whatlanggo.LangToString(whatlanggo.Detect(text).Lang)

	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField("conversation", message.ConversationID.String())).
		AddField(bluge.NewKeywordField("author", message.AuthorID.String())).
		AddField(bluge.NewTextField("text", text)).
		AddField(bluge.NewKeywordField("lang", lang)).
		AddField(bluge.NewDateTimeField("created", message.CreatedAt))

	return m.writer.Update(doc.ID(), doc)
}

func (m *MessageIndex) Remove(messageID uuid.UUID) error {
	return m.writer.Delete(bluge.Identifier(messageID.String()))
}

// Search runs a match query over the text field, hard-filtered to the given
// conversation. Results come back best-score first.
func (m *MessageIndex) Search(ctx context.Context, conversationID uuid.UUID, terms string, limit int) ([]uuid.UUID, error) {
	terms = strings.TrimSpace(terms)
	if terms == "" {
		return nil, nil
	}

	reader, err := m.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			m.log.Warn("Closing index reader failed", "err", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("text")).
		AddMust(bluge.NewTermQuery(conversationID.String()).SetField("conversation"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if id, parseErr := uuid.Parse(string(value)); parseErr == nil {
					ids = append(ids, id)
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}
