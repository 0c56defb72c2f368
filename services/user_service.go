//go:generate go run go.uber.org/mock/mockgen -source=user_service.go -destination=../mocks/mock_user_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"courier/domain"
	"courier/errors"
	"courier/repositories"
)

const maxUserSearchResults = 20

type IUserService interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Summary, error)
	SearchUsers(ctx context.Context, callerID uuid.UUID, prefix string, limit int) ([]domain.Summary, error)
	UpdatePresence(ctx context.Context, userID uuid.UUID, presence domain.Presence) error
}

type UserService struct {
	users repositories.IUserRepository
	log   *slog.Logger
}

func NewUserService(users repositories.IUserRepository, log *slog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (domain.Summary, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return domain.Summary{}, err
	}
	return toSummary(user), nil
}

// SearchUsers matches on the lowercase username prefix. The caller is
// excluded so the result set is always a list of potential friends.
func (s *UserService) SearchUsers(ctx context.Context, callerID uuid.UUID, prefix string, limit int) ([]domain.Summary, error) {
	prefix = domain.NormalizeUsername(prefix)
	if prefix == "" {
		return nil, nil
	}
	if limit <= 0 || limit > maxUserSearchResults {
		limit = maxUserSearchResults
	}
	// Fetch one extra so excluding the caller still fills the page.
	users, err := s.users.SearchByPrefix(prefix, limit+1)
	if err != nil {
		return nil, err
	}
	summaries := lo.FilterMap(users, func(user repositories.DiskUser, _ int) (domain.Summary, bool) {
		if user.ID == callerID {
			return domain.Summary{}, false
		}
		return toSummary(user), true
	})
	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

func (s *UserService) UpdatePresence(ctx context.Context, userID uuid.UUID, presence domain.Presence) error {
	if !presence.Valid() {
		return errors.InvalidContent("unknown presence value")
	}
	return s.users.UpdatePresence(userID, string(presence))
}
