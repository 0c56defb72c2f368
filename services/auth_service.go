//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"courier/auth"
	"courier/domain"
	"courier/errors"
	"courier/repositories"
)

type Session struct {
	User  domain.Summary
	Token string
}

type IAuthService interface {
	Register(ctx context.Context, username, displayName, password string) (Session, error)
	Login(ctx context.Context, username, password string) (Session, error)
}

type AuthService struct {
	users         repositories.IUserRepository
	tokenDuration time.Duration
	log           *slog.Logger
}

func NewAuthService(users repositories.IUserRepository, tokenDuration time.Duration, log *slog.Logger) *AuthService {
	return &AuthService{users: users, tokenDuration: tokenDuration, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, displayName, password string) (Session, error) {
	username = domain.NormalizeUsername(username)
	if err := auth.ValidateRegister(auth.RegisterRequest{
		Username:    username,
		DisplayName: displayName,
		Password:    password,
	}); err != nil {
		return Session{}, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, errors.Transient("password hashing failed", err)
	}
	user, err := s.users.CreateUser(username, displayName, hash)
	if err != nil {
		return Session{}, err
	}
	s.log.Info("User registered", "user", user.ID, "username", user.Username)
	return s.openSession(user)
}

// Login deliberately collapses unknown-user and wrong-password into the same
// error so the endpoint cannot be used to probe for usernames.
func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	user, err := s.users.GetByUsername(domain.NormalizeUsername(username))
	if err != nil {
		if errors.HasCode(err, errors.CodeNotFound) {
			return Session{}, errors.ErrInvalidCredentials
		}
		return Session{}, err
	}
	ok, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return Session{}, errors.Transient("password comparison failed", err)
	}
	if !ok {
		return Session{}, errors.ErrInvalidCredentials
	}
	return s.openSession(user)
}

func (s *AuthService) openSession(user repositories.DiskUser) (Session, error) {
	token, err := auth.GenerateToken(user.ID, s.tokenDuration)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	return Session{User: toSummary(user), Token: token}, nil
}
