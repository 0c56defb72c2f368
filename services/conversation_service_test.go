package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"courier/domain/content"
	"courier/domain/event"
	"courier/errors"
)

// befriend runs the request/accept handshake between two registered users.
func (f *fixture) befriend(t *testing.T, requester, addressee string) {
	t.Helper()
	req := require.New(t)
	ctx := context.Background()
	requesterUser, err := f.users.GetByUsername(requester)
	req.NoError(err)
	addresseeUser, err := f.users.GetByUsername(addressee)
	req.NoError(err)

	edge, err := f.friendshipService.SendRequest(ctx, requesterUser.ID, addressee)
	req.NoError(err)
	_, err = f.friendshipService.Accept(ctx, edge.Edge.ID, addresseeUser.ID)
	req.NoError(err)
}

func Test_FindOrCreate_Requires_Friendship(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	f.registerUser(t, "bob")

	// No edge at all
	_, err := f.conversationService.FindOrCreate(ctx, alice.ID, "bob")
	req.True(errors.HasCode(err, errors.CodeNotFriends))

	// A pending edge is not enough
	_, err = f.friendshipService.SendRequest(ctx, alice.ID, "bob")
	req.NoError(err)
	_, err = f.conversationService.FindOrCreate(ctx, alice.ID, "bob")
	req.True(errors.HasCode(err, errors.CodeNotFriends))
}

func Test_FindOrCreate_Returns_The_Same_Thread(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	bob := f.registerUser(t, "bob")
	f.befriend(t, "alice", "bob")

	first, err := f.conversationService.FindOrCreate(ctx, alice.ID, "bob")
	req.NoError(err)
	req.Len(first.Participants, 2)

	// Bob opening the thread from his side lands on the same conversation
	second, err := f.conversationService.FindOrCreate(ctx, bob.ID, "alice")
	req.NoError(err)
	req.Equal(first.Conversation.ID, second.Conversation.ID)

	// Only the first call announced a creation
	created := 0
	for _, evt := range f.publisher.all() {
		if _, ok := evt.(event.ConversationCreated); ok {
			created++
		}
	}
	req.Equal(1, created)
}

func Test_FindOrCreate_With_Yourself(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.registerUser(t, "alice")

	_, err := f.conversationService.FindOrCreate(context.Background(), alice.ID, "alice")
	req.True(errors.HasCode(err, errors.CodeSelfReference))
}

func Test_Get_Is_Participant_Only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	f.registerUser(t, "bob")
	eve := f.registerUser(t, "eve")
	f.befriend(t, "alice", "bob")

	view, err := f.conversationService.FindOrCreate(ctx, alice.ID, "bob")
	req.NoError(err)

	_, err = f.conversationService.Get(ctx, view.Conversation.ID, eve.ID)
	req.ErrorIs(err, errors.ErrNotParticipant)
}

func Test_List_Orders_By_Last_Activity(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	f.registerUser(t, "bob")
	f.registerUser(t, "carol")
	f.befriend(t, "alice", "bob")
	f.befriend(t, "alice", "carol")

	withBob, err := f.conversationService.FindOrCreate(ctx, alice.ID, "bob")
	req.NoError(err)
	withCarol, err := f.conversationService.FindOrCreate(ctx, alice.ID, "carol")
	req.NoError(err)

	// A message in the older thread bumps it to the top
	time.Sleep(5 * time.Millisecond)
	_, err = f.messageService.Append(ctx, withBob.Conversation.ID, alice.ID, content.Text("ping"))
	req.NoError(err)

	views, err := f.conversationService.List(ctx, alice.ID)
	req.NoError(err)
	req.Len(views, 2)
	req.Equal(withBob.Conversation.ID, views[0].Conversation.ID)
	req.Equal(withCarol.Conversation.ID, views[1].Conversation.ID)
	req.NotNil(views[0].LastMessage)
	req.Equal("ping", views[0].LastMessage.Content.PlainText())
}

func Test_Delete_Cascades_The_Message_Log(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	alice := f.registerUser(t, "alice")
	f.registerUser(t, "bob")
	eve := f.registerUser(t, "eve")
	f.befriend(t, "alice", "bob")

	view, err := f.conversationService.FindOrCreate(ctx, alice.ID, "bob")
	req.NoError(err)
	message, err := f.messageService.Append(ctx, view.Conversation.ID, alice.ID, content.Text("doomed"))
	req.NoError(err)

	// A non-participant cannot delete
	err = f.conversationService.Delete(ctx, view.Conversation.ID, eve.ID)
	req.ErrorIs(err, errors.ErrNotParticipant)

	req.NoError(f.conversationService.Delete(ctx, view.Conversation.ID, alice.ID))

	_, err = f.conversationService.Get(ctx, view.Conversation.ID, alice.ID)
	req.ErrorIs(err, errors.ErrNotParticipant)
	_, err = f.messages.GetByID(message.ID)
	req.ErrorIs(err, errors.ErrMessageNotFound)
}
