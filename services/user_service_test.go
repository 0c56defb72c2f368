package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"courier/domain"
	"courier/errors"
)

func Test_Get_Unknown_User(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, err := f.userService.Get(context.Background(), uuid.New())
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_SearchUsers_Excludes_The_Caller(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	f.registerUser(t, "alina")
	f.registerUser(t, "bob")

	results, err := f.userService.SearchUsers(ctx, alice.ID, "al", 10)
	req.NoError(err)
	usernames := lo.Map(results, func(s domain.Summary, _ int) string { return s.Username })
	req.Equal([]string{"alina"}, usernames)
}

func Test_SearchUsers_Normalizes_The_Prefix(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	caller := f.registerUser(t, "zed")
	f.registerUser(t, "alice")

	results, err := f.userService.SearchUsers(context.Background(), caller.ID, "  ALI ", 10)
	req.NoError(err)
	req.Len(results, 1)
	req.Equal("alice", results[0].Username)
}

func Test_SearchUsers_Empty_Prefix(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	caller := f.registerUser(t, "zed")

	results, err := f.userService.SearchUsers(context.Background(), caller.ID, "   ", 10)
	req.NoError(err)
	req.Nil(results)
}

func Test_UpdatePresence(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")

	req.NoError(f.userService.UpdatePresence(ctx, alice.ID, domain.PresenceAway))
	summary, err := f.userService.Get(ctx, alice.ID)
	req.NoError(err)
	req.Equal(domain.PresenceAway, summary.Presence)

	err = f.userService.UpdatePresence(ctx, alice.ID, domain.Presence("sleeping"))
	req.True(errors.HasCode(err, errors.CodeInvalidContent))
}
