//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"courier/domain"
	apperrors "courier/errors"
)

type IConversationRepository interface {
	FindOrCreate(a, b uuid.UUID) (domain.Conversation, bool, error)
	GetByID(conversationID uuid.UUID) (domain.Conversation, error)
	Participants(conversationID uuid.UUID) ([]domain.Participant, error)
	IsParticipant(conversationID, userID uuid.UUID) (bool, error)
	ListByUser(userID uuid.UUID) ([]domain.Conversation, error)
	Delete(conversationID uuid.UUID) error
	IncrementUnread(conversationID, userID uuid.UUID) error
	ResetUnread(conversationID, userID uuid.UUID) error
	GetUnread(conversationID, userID uuid.UUID) (uint64, error)
}

// ConversationRepository owns conversation identity and membership. Keys:
//
//	conv:id:<conv_id>                full row
//	conv:pair:<min>:<max>            conversation id, the uniqueness anchor
//	conv:part:<conv_id>:<user_id>    participant row
//	conv:member:<user_id>:<conv_id>  membership index for listing
//	unread:<conv_id>:<user_id>       big-endian counter
//
// FindOrCreate is idempotent under races through the pair anchor: N
// concurrent callers commit at most one conversation; losers read the
// winner's id, either inside the transaction or on a Conflict retry.
type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{db: db, log: log}
}

type diskConversation struct {
	ID        uuid.UUID `cbor:"id"`
	CreatedAt time.Time `cbor:"created_at"`
}

type diskParticipant struct {
	ConversationID uuid.UUID `cbor:"conversation_id"`
	UserID         uuid.UUID `cbor:"user_id"`
	JoinedAt       time.Time `cbor:"joined_at"`
}

func convKey(conversationID uuid.UUID) []byte {
	return []byte("conv:id:" + conversationID.String())
}

func pairConvKey(a, b uuid.UUID) []byte {
	return []byte("conv:pair:" + domain.PairKey(a, b))
}

func participantKey(conversationID, userID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("conv:part:%s:%s", conversationID, userID))
}

func memberKey(userID, conversationID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("conv:member:%s:%s", userID, conversationID))
}

func unreadKey(conversationID, userID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("unread:%s:%s", conversationID, userID))
}

func (c ConversationRepository) FindOrCreate(a, b uuid.UUID) (domain.Conversation, bool, error) {
	conv, created, err := c.findOrCreateOnce(a, b)
	if errors.Is(err, badger.ErrConflict) {
		// Lost the commit race: the other caller created the conversation.
		// Re-read the anchor instead of surfacing the conflict.
		existing, getErr := c.getByPair(a, b)
		if getErr != nil {
			return domain.Conversation{}, false, apperrors.Conflict("conversation creation lost a race for this pair")
		}
		return existing, false, nil
	}
	return conv, created, err
}

func (c ConversationRepository) findOrCreateOnce(a, b uuid.UUID) (domain.Conversation, bool, error) {
	now := time.Now().UTC()
	fresh := domain.Conversation{ID: uuid.New(), CreatedAt: now}

	var existing *domain.Conversation
	err := c.db.Update(func(txn *badger.Txn) error {
		existing = nil
		pairKey := pairConvKey(a, b)
		item, err := txn.Get(pairKey)
		if err == nil {
			return item.Value(func(val []byte) error {
				conversationID, err := uuid.Parse(string(val))
				if err != nil {
					return err
				}
				conv, err := readConversation(txn, conversationID)
				if err != nil {
					return err
				}
				existing = &conv
				return nil
			})
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		data, err := marshalRow(diskConversation{ID: fresh.ID, CreatedAt: fresh.CreatedAt})
		if err != nil {
			return err
		}
		if err := txn.Set(pairKey, []byte(fresh.ID.String())); err != nil {
			return err
		}
		if err := txn.Set(convKey(fresh.ID), data); err != nil {
			return err
		}
		for _, userID := range []uuid.UUID{a, b} {
			part, err := marshalRow(diskParticipant{
				ConversationID: fresh.ID,
				UserID:         userID,
				JoinedAt:       now,
			})
			if err != nil {
				return err
			}
			if err := txn.Set(participantKey(fresh.ID, userID), part); err != nil {
				return err
			}
			if err := txn.Set(memberKey(userID, fresh.ID), nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Conversation{}, false, err
	}
	if existing != nil {
		return *existing, false, nil
	}
	return fresh, true, nil
}

func (c ConversationRepository) getByPair(a, b uuid.UUID) (domain.Conversation, error) {
	var conversationID uuid.UUID
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(pairConvKey(a, b))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			parsed, err := uuid.Parse(string(val))
			conversationID = parsed
			return err
		})
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return c.GetByID(conversationID)
}

func readConversation(txn *badger.Txn, conversationID uuid.UUID) (domain.Conversation, error) {
	item, err := txn.Get(convKey(conversationID))
	if err != nil {
		return domain.Conversation{}, err
	}
	var row diskConversation
	if err := item.Value(func(val []byte) error {
		return unmarshalRow(val, &row)
	}); err != nil {
		return domain.Conversation{}, err
	}
	return domain.Conversation{ID: row.ID, CreatedAt: row.CreatedAt}, nil
}

func (c ConversationRepository) GetByID(conversationID uuid.UUID) (domain.Conversation, error) {
	var conv domain.Conversation
	err := c.db.View(func(txn *badger.Txn) error {
		found, err := readConversation(txn, conversationID)
		conv = found
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Conversation{}, apperrors.ErrConversationNotFound
	}
	if err != nil {
		return domain.Conversation{}, err
	}
	return conv, nil
}

func (c ConversationRepository) Participants(conversationID uuid.UUID) ([]domain.Participant, error) {
	var participants []domain.Participant
	prefix := []byte(fmt.Sprintf("conv:part:%s:", conversationID))
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var row diskParticipant
			if err := it.Item().Value(func(val []byte) error {
				return unmarshalRow(val, &row)
			}); err != nil {
				return err
			}
			participants = append(participants, domain.Participant{
				ConversationID: row.ConversationID,
				UserID:         row.UserID,
				JoinedAt:       row.JoinedAt,
			})
		}
		return nil
	})
	return participants, err
}

func (c ConversationRepository) IsParticipant(conversationID, userID uuid.UUID) (bool, error) {
	err := c.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(participantKey(conversationID, userID))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c ConversationRepository) ListByUser(userID uuid.UUID) ([]domain.Conversation, error) {
	var conversationIDs []uuid.UUID
	prefix := []byte(fmt.Sprintf("conv:member:%s:", userID))
	err := c.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			raw := string(it.Item().Key()[len(prefix):])
			conversationID, err := uuid.Parse(raw)
			if err != nil {
				return fmt.Errorf("corrupt membership index key: %w", err)
			}
			conversationIDs = append(conversationIDs, conversationID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	conversations := make([]domain.Conversation, 0, len(conversationIDs))
	for _, conversationID := range conversationIDs {
		conv, err := c.GetByID(conversationID)
		if err != nil {
			c.log.Warn("Dangling membership index entry", "conversation", conversationID, "err", err)
			continue
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}

// Delete cascades: participant rows, membership index entries, unread
// counters and the pair anchor all go with the conversation row. Messages
// are cascaded by the message repository (DeleteAllForConversation); the
// service layer sequences the two.
func (c ConversationRepository) Delete(conversationID uuid.UUID) error {
	participants, err := c.Participants(conversationID)
	if err != nil {
		return err
	}
	if len(participants) < 2 {
		return apperrors.ErrConversationNotFound
	}
	a, b := participants[0].UserID, participants[1].UserID

	err = c.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(pairConvKey(a, b)); err != nil {
			return err
		}
		for _, p := range participants {
			if err := txn.Delete(participantKey(conversationID, p.UserID)); err != nil {
				return err
			}
			if err := txn.Delete(memberKey(p.UserID, conversationID)); err != nil {
				return err
			}
			if err := txn.Delete(unreadKey(conversationID, p.UserID)); err != nil {
				return err
			}
		}
		return txn.Delete(convKey(conversationID))
	})
	if errors.Is(err, badger.ErrConflict) {
		return apperrors.Conflict("concurrent conversation delete")
	}
	return err
}

func (c ConversationRepository) IncrementUnread(conversationID, userID uuid.UUID) error {
	return c.db.Update(func(txn *badger.Txn) error {
		key := unreadKey(conversationID, userID)
		var count uint64
		item, err := txn.Get(key)
		if err == nil {
			if err := item.Value(func(val []byte) error {
				count = binary.BigEndian.Uint64(val)
				return nil
			}); err != nil {
				return err
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, count+1)
		return txn.Set(key, buf)
	})
}

func (c ConversationRepository) ResetUnread(conversationID, userID uuid.UUID) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(unreadKey(conversationID, userID))
	})
}

func (c ConversationRepository) GetUnread(conversationID, userID uuid.UUID) (uint64, error) {
	var count uint64
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(unreadKey(conversationID, userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			count = binary.BigEndian.Uint64(val)
			return nil
		})
	})
	return count, err
}
