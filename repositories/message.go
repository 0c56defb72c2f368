//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"courier/domain"
	"courier/domain/content"
	apperrors "courier/errors"
)

type IMessageRepository interface {
	Append(conversationID, authorID uuid.UUID, doc content.Document) (domain.Message, error)
	Page(conversationID uuid.UUID, limit int, before *string) ([]domain.Message, *string, bool, error)
	GetByID(messageID uuid.UUID) (domain.Message, error)
	Update(messageID uuid.UUID, doc content.Document) (domain.Message, error)
	Delete(messageID uuid.UUID) (domain.Message, error)
	LastMessage(conversationID uuid.UUID) (*domain.Message, error)
	DeleteAllForConversation(conversationID uuid.UUID) error
}

// MessageRepository persists the append-only log. The primary key is
// formatted as "msg:{conversation}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Use the UUID as a collision disconnector if two messages land on the
//     same nanosecond; ids are UUIDv7 so the tiebreak follows send order.
//
// A secondary key "msgref:{uuid}" points at the primary key so edits and
// deletes resolve by message id alone.
type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

type diskMessage struct {
	ID             uuid.UUID        `cbor:"id"`
	ConversationID uuid.UUID        `cbor:"conversation_id"`
	AuthorID       uuid.UUID        `cbor:"author_id"`
	Content        content.Document `cbor:"content"`
	CreatedAt      time.Time        `cbor:"created_at"`
	UpdatedAt      *time.Time       `cbor:"updated_at,omitempty"`
}

func messagePrefix(conversationID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:", conversationID))
}

func messageKey(conversationID uuid.UUID, at time.Time, messageID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", conversationID, at.UnixNano(), messageID))
}

func messageRefKey(messageID uuid.UUID) []byte {
	return []byte("msgref:" + messageID.String())
}

// Cursor renders the pagination cursor for a message: the primary key suffix
// after the conversation prefix. Lexicographic order on cursors equals the
// (created_at, id) timeline order.
func Cursor(at time.Time, messageID uuid.UUID) string {
	return fmt.Sprintf("%019d:%s", at.UnixNano(), messageID)
}

// Append assigns id and created_at at commit time, never trusting client
// clocks.
func (m MessageRepository) Append(conversationID, authorID uuid.UUID, doc content.Document) (domain.Message, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Message{}, err
	}
	message := domain.Message{
		ID:             id,
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        doc,
		CreatedAt:      time.Now().UTC(),
	}
	data, err := marshalRow(fromMessage(message))
	if err != nil {
		return domain.Message{}, err
	}
	key := messageKey(conversationID, message.CreatedAt, message.ID)
	err = m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(messageRefKey(message.ID), key)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// Page retrieves up to limit messages older than the cursor (or the newest
// ones when before is nil), descending by (created_at, id). It fetches
// limit+1 rows to compute hasMore without a second scan. The returned cursor
// addresses the oldest message of the page.
func (m MessageRepository) Page(conversationID uuid.UUID, limit int, before *string) ([]domain.Message, *string, bool, error) {
	var rows []diskMessage
	var lastCursor string
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := messagePrefix(conversationID)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch before {
		case nil:
			// Start past any possible timestamp, then walk backwards.
			seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		default:
			seekKey = append(append([]byte{}, prefix...), []byte(*before)...)
		}

		it.Seek(seekKey)

		// The cursor addresses an already-seen message; skip it.
		if before != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[len(prefix):]) == *before {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix) && len(rows) < limit+1; it.Next() {
			item := it.Item()
			cursor := string(item.Key()[len(prefix):])
			var row diskMessage
			if err := item.Value(func(val []byte) error {
				return unmarshalRow(val, &row)
			}); err != nil {
				return err
			}
			rows = append(rows, row)
			lastCursor = cursor
		}
		return nil
	})
	if err != nil {
		return nil, nil, false, err
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
		lastCursor = Cursor(rows[limit-1].CreatedAt, rows[limit-1].ID)
	}
	if len(rows) == 0 {
		return nil, nil, false, nil
	}

	messages := make([]domain.Message, len(rows))
	for i, row := range rows {
		messages[i] = toMessage(row)
	}
	return messages, &lastCursor, hasMore, nil
}

func (m MessageRepository) GetByID(messageID uuid.UUID) (domain.Message, error) {
	var row diskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		found, err := m.readByRef(txn, messageID)
		row = found
		return err
	})
	if err != nil {
		return domain.Message{}, err
	}
	return toMessage(row), nil
}

func (m MessageRepository) readByRef(txn *badger.Txn, messageID uuid.UUID) (diskMessage, error) {
	item, err := txn.Get(messageRefKey(messageID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return diskMessage{}, apperrors.ErrMessageNotFound
	}
	if err != nil {
		return diskMessage{}, err
	}
	var primaryKey []byte
	if err := item.Value(func(val []byte) error {
		primaryKey = append([]byte{}, val...)
		return nil
	}); err != nil {
		return diskMessage{}, err
	}
	rowItem, err := txn.Get(primaryKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return diskMessage{}, apperrors.ErrMessageNotFound
	}
	if err != nil {
		return diskMessage{}, err
	}
	var row diskMessage
	err = rowItem.Value(func(val []byte) error {
		return unmarshalRow(val, &row)
	})
	return row, err
}

// Update rewrites the row in place. The primary key embeds created_at, so an
// edit can never reorder the timeline.
func (m MessageRepository) Update(messageID uuid.UUID, doc content.Document) (domain.Message, error) {
	var updated domain.Message
	err := m.db.Update(func(txn *badger.Txn) error {
		row, err := m.readByRef(txn, messageID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		row.Content = doc
		row.UpdatedAt = &now
		data, err := marshalRow(row)
		if err != nil {
			return err
		}
		updated = toMessage(row)
		return txn.Set(messageKey(row.ConversationID, row.CreatedAt, row.ID), data)
	})
	if errors.Is(err, badger.ErrConflict) {
		return domain.Message{}, apperrors.Conflict("concurrent message update")
	}
	if err != nil {
		return domain.Message{}, err
	}
	return updated, nil
}

// Delete removes the row and its ref. The removed message is returned so the
// caller can emit an observable delete event.
func (m MessageRepository) Delete(messageID uuid.UUID) (domain.Message, error) {
	var removed domain.Message
	err := m.db.Update(func(txn *badger.Txn) error {
		row, err := m.readByRef(txn, messageID)
		if err != nil {
			return err
		}
		removed = toMessage(row)
		if err := txn.Delete(messageKey(row.ConversationID, row.CreatedAt, row.ID)); err != nil {
			return err
		}
		return txn.Delete(messageRefKey(messageID))
	})
	if errors.Is(err, badger.ErrConflict) {
		return domain.Message{}, apperrors.Conflict("concurrent message delete")
	}
	if err != nil {
		return domain.Message{}, err
	}
	return removed, nil
}

// LastMessage returns the newest message of a conversation, or nil when the
// log is empty. Used for conversation previews and activity ordering.
func (m MessageRepository) LastMessage(conversationID uuid.UUID) (*domain.Message, error) {
	messages, _, _, err := m.Page(conversationID, 1, nil)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}
	return &messages[0], nil
}

// DeleteAllForConversation drops the whole log of a conversation, batched to
// respect Badger's transaction size limit.
func (m MessageRepository) DeleteAllForConversation(conversationID uuid.UUID) error {
	prefix := messagePrefix(conversationID)
	for {
		var keys [][]byte
		var refs [][]byte
		err := m.db.View(func(txn *badger.Txn) error {
			options := badger.DefaultIteratorOptions
			options.PrefetchValues = true
			it := txn.NewIterator(options)
			defer it.Close()
			for it.Seek(prefix); it.ValidForPrefix(prefix) && len(keys) < 1000; it.Next() {
				item := it.Item()
				keys = append(keys, item.KeyCopy(nil))
				var row diskMessage
				if err := item.Value(func(val []byte) error {
					return unmarshalRow(val, &row)
				}); err != nil {
					return err
				}
				refs = append(refs, messageRefKey(row.ID))
			}
			return nil
		})
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			return nil
		}
		wb := m.db.NewWriteBatch()
		for i := range keys {
			if err := wb.Delete(keys[i]); err != nil {
				wb.Cancel()
				return err
			}
			if err := wb.Delete(refs[i]); err != nil {
				wb.Cancel()
				return err
			}
		}
		if err := wb.Flush(); err != nil {
			return err
		}
	}
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		AuthorID:       message.AuthorID,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
		UpdatedAt:      message.UpdatedAt,
	}
}

func toMessage(row diskMessage) domain.Message {
	return domain.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		AuthorID:       row.AuthorID,
		Content:        row.Content,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
