//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	apperrors "courier/errors"
)

type IUserRepository interface {
	CreateUser(username, displayName, passwordHash string) (DiskUser, error)
	GetByUsername(username string) (DiskUser, error)
	GetByID(id uuid.UUID) (DiskUser, error)
	SearchByPrefix(prefix string, limit int) ([]DiskUser, error)
	UpdatePresence(id uuid.UUID, presence string) error
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// DiskUser is the storage representation of a user. The username is stored
// in its original casing; the lookup key uses the lowercase form.
type DiskUser struct {
	ID           uuid.UUID `cbor:"id"`
	Username     string    `cbor:"username"`
	DisplayName  string    `cbor:"display_name"`
	PasswordHash string    `cbor:"password_hash"`
	Presence     string    `cbor:"presence"`
	CreatedAt    time.Time `cbor:"created_at"`
}

func userRowKey(id uuid.UUID) []byte {
	return []byte("user:id:" + id.String())
}

func usernameKey(username string) []byte {
	return []byte("user:name:" + strings.ToLower(username))
}

// CreateUser persists a new user. Username uniqueness is enforced inside the
// transaction on the lowercase name key; a concurrent registration of the
// same name loses with ErrUsernameTaken or a Conflict.
func (u UserRepository) CreateUser(username, displayName, passwordHash string) (DiskUser, error) {
	user := DiskUser{
		ID:           uuid.New(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Presence:     "offline",
		CreatedAt:    time.Now().UTC(),
	}
	data, err := marshalRow(user)
	if err != nil {
		return DiskUser{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		nameKey := usernameKey(username)
		if _, err := txn.Get(nameKey); err == nil {
			return apperrors.ErrUsernameTaken
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(nameKey, []byte(user.ID.String())); err != nil {
			return err
		}
		return txn.Set(userRowKey(user.ID), data)
	})
	if errors.Is(err, badger.ErrConflict) {
		return DiskUser{}, apperrors.ErrUsernameTaken
	}
	if err != nil {
		return DiskUser{}, err
	}
	return user, nil
}

func (u UserRepository) GetByUsername(username string) (DiskUser, error) {
	var id uuid.UUID
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			parsed, err := uuid.Parse(string(val))
			id = parsed
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return DiskUser{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return DiskUser{}, err
	}
	return u.GetByID(id)
}

func (u UserRepository) GetByID(id uuid.UUID) (DiskUser, error) {
	var user DiskUser
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userRowKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalRow(val, &user)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return DiskUser{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return DiskUser{}, err
	}
	return user, nil
}

// SearchByPrefix scans the lowercase name index. Prefix keys make this a
// range scan, not a full table walk.
func (u UserRepository) SearchByPrefix(prefix string, limit int) ([]DiskUser, error) {
	var ids []uuid.UUID
	err := u.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = true
		it := txn.NewIterator(options)
		defer it.Close()

		scanPrefix := usernameKey(prefix)
		for it.Seek(scanPrefix); it.ValidForPrefix(scanPrefix) && len(ids) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				id, err := uuid.Parse(string(val))
				if err != nil {
					return err
				}
				ids = append(ids, id)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	users := make([]DiskUser, 0, len(ids))
	for _, id := range ids {
		user, err := u.GetByID(id)
		if err != nil {
			u.log.Warn("Dangling username index entry", "id", id, "err", err)
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (u UserRepository) UpdatePresence(id uuid.UUID, presence string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userRowKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return apperrors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		var user DiskUser
		if err := item.Value(func(val []byte) error {
			return unmarshalRow(val, &user)
		}); err != nil {
			return err
		}
		user.Presence = presence
		data, err := marshalRow(user)
		if err != nil {
			return err
		}
		return txn.Set(userRowKey(id), data)
	})
}
