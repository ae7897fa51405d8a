package repository

import (
	"context"
	"testing"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_ThreadAndUnread(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	msgs := NewMessageRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")
	ben := seedUser(t, users, "ben")
	cam := seedUser(t, users, "cam")

	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: ava.ID, ReceiverID: ben.ID, Content: "hey"}))
	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: ben.ID, ReceiverID: ava.ID, Content: "hi back"}))
	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: cam.ID, ReceiverID: ava.ID, Content: "unrelated"}))

	thread, err := msgs.Thread(ctx, ava.ID, ben.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	for _, m := range thread {
		assert.True(t, m.Between(ava.ID, ben.ID))
	}

	unread, err := msgs.UnreadCount(ctx, ava.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)
}

func TestMessageRepository_MarkThreadRead(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	msgs := NewMessageRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")
	ben := seedUser(t, users, "ben")

	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: ben.ID, ReceiverID: ava.ID, Content: "one"}))
	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: ben.ID, ReceiverID: ava.ID, Content: "two"}))
	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: ava.ID, ReceiverID: ben.ID, Content: "mine"}))

	changed, err := msgs.MarkThreadRead(ctx, ava.ID, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	// Marking again changes nothing.
	changed, err = msgs.MarkThreadRead(ctx, ava.ID, ben.ID)
	require.NoError(t, err)
	assert.Zero(t, changed)

	// The reader's own sent message stays unread on the partner's side.
	unread, err := msgs.UnreadCount(ctx, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestMessageRepository_ListForUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	msgs := NewMessageRepository(db)
	ctx := context.Background()

	ava := seedUser(t, users, "ava")
	ben := seedUser(t, users, "ben")
	cam := seedUser(t, users, "cam")

	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: ava.ID, ReceiverID: ben.ID, Content: "to ben"}))
	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: cam.ID, ReceiverID: ava.ID, Content: "from cam"}))
	require.NoError(t, msgs.Create(ctx, &models.Message{SenderID: ben.ID, ReceiverID: cam.ID, Content: "not ava's"}))

	list, err := msgs.ListForUser(ctx, ava.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, m := range list {
		assert.True(t, m.SenderID == ava.ID || m.ReceiverID == ava.ID)
		assert.NotNil(t, m.Sender)
		assert.NotNil(t, m.Receiver)
	}
}
