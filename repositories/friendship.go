//go:generate go run go.uber.org/mock/mockgen -source=friendship.go -destination=../mocks/mock_friendship_repository.go -package=mocks
package repositories

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"courier/domain"
	apperrors "courier/errors"
)

type IFriendshipRepository interface {
	Create(edge domain.FriendshipEdge) (domain.FriendshipEdge, error)
	GetByID(edgeID uuid.UUID) (domain.FriendshipEdge, error)
	GetByPair(a, b uuid.UUID) (domain.FriendshipEdge, error)
	UpdateStatus(edgeID uuid.UUID, status domain.FriendshipStatus, actorID uuid.UUID) (domain.FriendshipEdge, error)
	Delete(edgeID uuid.UUID) error
	ListByUser(userID uuid.UUID) ([]domain.FriendshipEdge, error)
}

// FriendshipRepository enforces the one-edge-per-pair invariant at the
// storage level. Keys:
//
//	friend:edge:<edge_id>            full row
//	friend:pair:<min>:<max>          edge id, the uniqueness anchor
//	friend:user:<user_id>:<edge_id>  membership index, one per party
//
// Two concurrent Create calls for the same pair either see each other's pair
// key (ErrEdgeExists) or collide on commit (badger.ErrConflict mapped to
// Conflict); exactly one row survives.
type FriendshipRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewFriendshipRepository(db *badger.DB, log *slog.Logger) *FriendshipRepository {
	return &FriendshipRepository{db: db, log: log}
}

type diskEdge struct {
	ID          uuid.UUID `cbor:"id"`
	RequesterID uuid.UUID `cbor:"requester_id"`
	AddresseeID uuid.UUID `cbor:"addressee_id"`
	Status      string    `cbor:"status"`
	LastActorID uuid.UUID `cbor:"last_actor_id"`
	CreatedAt   time.Time `cbor:"created_at"`
	UpdatedAt   time.Time `cbor:"updated_at"`
}

func edgeKey(edgeID uuid.UUID) []byte {
	return []byte("friend:edge:" + edgeID.String())
}

func pairEdgeKey(a, b uuid.UUID) []byte {
	return []byte("friend:pair:" + domain.PairKey(a, b))
}

func userEdgeKey(userID, edgeID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("friend:user:%s:%s", userID, edgeID))
}

func (f FriendshipRepository) Create(edge domain.FriendshipEdge) (domain.FriendshipEdge, error) {
	now := time.Now().UTC()
	edge.ID = uuid.New()
	edge.CreatedAt = now
	edge.UpdatedAt = now

	data, err := marshalRow(fromEdge(edge))
	if err != nil {
		return domain.FriendshipEdge{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = f.db.Update(func(txn *badger.Txn) error {
		pairKey := pairEdgeKey(edge.RequesterID, edge.AddresseeID)
		if _, err := txn.Get(pairKey); err == nil {
			return apperrors.ErrEdgeExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(pairKey, []byte(edge.ID.String())); err != nil {
			return err
		}
		if err := txn.Set(edgeKey(edge.ID), data); err != nil {
			return err
		}
		if err := txn.Set(userEdgeKey(edge.RequesterID, edge.ID), nil); err != nil {
			return err
		}
		return txn.Set(userEdgeKey(edge.AddresseeID, edge.ID), nil)
	})
	if errors.Is(err, badger.ErrConflict) {
		return domain.FriendshipEdge{}, apperrors.Conflict("friendship creation lost a race for this pair")
	}
	if err != nil {
		return domain.FriendshipEdge{}, err
	}
	return edge, nil
}

func (f FriendshipRepository) GetByID(edgeID uuid.UUID) (domain.FriendshipEdge, error) {
	var row diskEdge
	err := f.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(edgeKey(edgeID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalRow(val, &row)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.FriendshipEdge{}, apperrors.ErrEdgeNotFound
	}
	if err != nil {
		return domain.FriendshipEdge{}, err
	}
	return toEdge(row), nil
}

func (f FriendshipRepository) GetByPair(a, b uuid.UUID) (domain.FriendshipEdge, error) {
	var edgeID uuid.UUID
	err := f.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(pairEdgeKey(a, b))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			parsed, err := uuid.Parse(string(val))
			edgeID = parsed
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.FriendshipEdge{}, apperrors.ErrEdgeNotFound
	}
	if err != nil {
		return domain.FriendshipEdge{}, err
	}
	return f.GetByID(edgeID)
}

func (f FriendshipRepository) UpdateStatus(edgeID uuid.UUID, status domain.FriendshipStatus, actorID uuid.UUID) (domain.FriendshipEdge, error) {
	var updated domain.FriendshipEdge
	err := f.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(edgeKey(edgeID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return apperrors.ErrEdgeNotFound
		}
		if err != nil {
			return err
		}
		var row diskEdge
		if err := item.Value(func(val []byte) error {
			return unmarshalRow(val, &row)
		}); err != nil {
			return err
		}
		row.Status = string(status)
		row.LastActorID = actorID
		row.UpdatedAt = time.Now().UTC()
		data, err := marshalRow(row)
		if err != nil {
			return err
		}
		updated = toEdge(row)
		return txn.Set(edgeKey(edgeID), data)
	})
	if errors.Is(err, badger.ErrConflict) {
		return domain.FriendshipEdge{}, apperrors.Conflict("concurrent friendship update")
	}
	if err != nil {
		return domain.FriendshipEdge{}, err
	}
	return updated, nil
}

// Delete removes the row, the pair anchor and both membership index entries.
func (f FriendshipRepository) Delete(edgeID uuid.UUID) error {
	err := f.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(edgeKey(edgeID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return apperrors.ErrEdgeNotFound
		}
		if err != nil {
			return err
		}
		var row diskEdge
		if err := item.Value(func(val []byte) error {
			return unmarshalRow(val, &row)
		}); err != nil {
			return err
		}
		if err := txn.Delete(pairEdgeKey(row.RequesterID, row.AddresseeID)); err != nil {
			return err
		}
		if err := txn.Delete(userEdgeKey(row.RequesterID, edgeID)); err != nil {
			return err
		}
		if err := txn.Delete(userEdgeKey(row.AddresseeID, edgeID)); err != nil {
			return err
		}
		return txn.Delete(edgeKey(edgeID))
	})
	if errors.Is(err, badger.ErrConflict) {
		return apperrors.Conflict("concurrent friendship delete")
	}
	return err
}

func (f FriendshipRepository) ListByUser(userID uuid.UUID) ([]domain.FriendshipEdge, error) {
	var edgeIDs []uuid.UUID
	prefix := []byte(fmt.Sprintf("friend:user:%s:", userID))
	err := f.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			raw := string(it.Item().Key()[len(prefix):])
			edgeID, err := uuid.Parse(raw)
			if err != nil {
				return fmt.Errorf("corrupt friendship index key: %w", err)
			}
			edgeIDs = append(edgeIDs, edgeID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	edges := make([]domain.FriendshipEdge, 0, len(edgeIDs))
	for _, edgeID := range edgeIDs {
		edge, err := f.GetByID(edgeID)
		if err != nil {
			f.log.Warn("Dangling friendship index entry", "edge", edgeID, "err", err)
			continue
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

func fromEdge(edge domain.FriendshipEdge) diskEdge {
	return diskEdge{
		ID:          edge.ID,
		RequesterID: edge.RequesterID,
		AddresseeID: edge.AddresseeID,
		Status:      string(edge.Status),
		LastActorID: edge.LastActorID,
		CreatedAt:   edge.CreatedAt,
		UpdatedAt:   edge.UpdatedAt,
	}
}

func toEdge(row diskEdge) domain.FriendshipEdge {
	return domain.FriendshipEdge{
		ID:          row.ID,
		RequesterID: row.RequesterID,
		AddresseeID: row.AddresseeID,
		Status:      domain.FriendshipStatus(row.Status),
		LastActorID: row.LastActorID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
