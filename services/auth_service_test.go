package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"courier/auth"
	"courier/errors"
)

const testPassword = "Sup3r$ecretPhrase"

func Test_Register_Opens_A_Session(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	session, err := f.authService.Register(context.Background(), "Alice", "Alice L.", testPassword)
	req.NoError(err)
	req.Equal("alice", session.User.Username)
	req.NotEmpty(session.Token)

	// The token authenticates as the new user
	userID, err := auth.ValidateToken(session.Token)
	req.NoError(err)
	req.Equal(session.User.ID, userID)
}

func Test_Register_Rejects_A_Taken_Username(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.authService.Register(ctx, "alice", "Alice", testPassword)
	req.NoError(err)

	// The normalized form collides
	_, err = f.authService.Register(ctx, "ALICE", "Other Alice", testPassword)
	req.ErrorIs(err, errors.ErrUsernameTaken)
}

func Test_Register_Rejects_A_Weak_Password(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.authService.Register(context.Background(), "alice", "Alice", "password")
	req.True(errors.HasCode(err, errors.CodeInvalidContent))
}

func Test_Login_Roundtrip(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	registered, err := f.authService.Register(ctx, "alice", "Alice", testPassword)
	req.NoError(err)

	session, err := f.authService.Login(ctx, "alice", testPassword)
	req.NoError(err)
	req.Equal(registered.User.ID, session.User.ID)
	req.NotEmpty(session.Token)
}

func Test_Login_Hides_Whether_The_User_Exists(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.authService.Register(ctx, "alice", "Alice", testPassword)
	req.NoError(err)

	// Wrong password and unknown user are indistinguishable
	_, wrongPassword := f.authService.Login(ctx, "alice", "not the password")
	_, unknownUser := f.authService.Login(ctx, "nobody", testPassword)
	req.ErrorIs(wrongPassword, errors.ErrInvalidCredentials)
	req.ErrorIs(unknownUser, errors.ErrInvalidCredentials)
}
