package service

import (
	"context"
	"testing"
	"time"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageRepoStub struct {
	createFn         func(context.Context, *models.Message) error
	threadFn         func(context.Context, uint, uint, int, int) ([]*models.Message, error)
	listForUserFn    func(context.Context, uint, int) ([]*models.Message, error)
	markThreadReadFn func(context.Context, uint, uint) (int64, error)
	unreadCountFn    func(context.Context, uint) (int64, error)
}

func (s *messageRepoStub) Create(ctx context.Context, msg *models.Message) error {
	return s.createFn(ctx, msg)
}
func (s *messageRepoStub) GetByID(context.Context, uint) (*models.Message, error) {
	return nil, nil
}
func (s *messageRepoStub) Thread(ctx context.Context, userID, partnerID uint, limit, offset int) ([]*models.Message, error) {
	return s.threadFn(ctx, userID, partnerID, limit, offset)
}
func (s *messageRepoStub) ListForUser(ctx context.Context, userID uint, limit int) ([]*models.Message, error) {
	return s.listForUserFn(ctx, userID, limit)
}
func (s *messageRepoStub) MarkThreadRead(ctx context.Context, readerID, partnerID uint) (int64, error) {
	return s.markThreadReadFn(ctx, readerID, partnerID)
}
func (s *messageRepoStub) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.unreadCountFn(ctx, userID)
}
func (s *messageRepoStub) Delete(context.Context, uint) error { return nil }

type userRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.User, error)
	updateFn  func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetProfile(context.Context, uint) (*models.User, error) { return nil, nil }
func (s *userRepoStub) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, nil
}
func (s *userRepoStub) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, nil
}
func (s *userRepoStub) Create(context.Context, *models.User) error { return nil }
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, u)
	}
	return nil
}
func (s *userRepoStub) Delete(context.Context, uint) error { return nil }
func (s *userRepoStub) List(context.Context, int, int) ([]models.User, error) {
	return nil, nil
}
func (s *userRepoStub) Search(context.Context, string, int, int) ([]models.User, error) {
	return nil, nil
}

func existingUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}
}

func at(minute int) time.Time {
	return time.Date(2026, 3, 1, 12, minute, 0, 0, time.UTC)
}

func TestBuildConversations(t *testing.T) {
	const me = uint(1)
	msgs := []*models.Message{
		{ID: 1, SenderID: 2, ReceiverID: me, Content: "from ben", CreatedAt: at(0)},
		{ID: 2, SenderID: me, ReceiverID: 2, Content: "to ben", CreatedAt: at(5)},
		{ID: 3, SenderID: 3, ReceiverID: me, Content: "from cam", CreatedAt: at(10)},
		{ID: 4, SenderID: 3, ReceiverID: me, Content: "cam again", CreatedAt: at(11)},
	}

	convs := BuildConversations(msgs, me)
	require.Len(t, convs, 2)

	// Cam's thread has the most recent activity.
	assert.Equal(t, uint(3), convs[0].Partner.ID)
	assert.Equal(t, "cam again", convs[0].LastMessage.Content)
	assert.Equal(t, 2, convs[0].UnreadCount)

	assert.Equal(t, uint(2), convs[1].Partner.ID)
	assert.Equal(t, "to ben", convs[1].LastMessage.Content)
	assert.Equal(t, 1, convs[1].UnreadCount)
}

func TestBuildConversations_OrderIndependent(t *testing.T) {
	const me = uint(1)
	msgs := []*models.Message{
		{ID: 1, SenderID: 2, ReceiverID: me, CreatedAt: at(0)},
		{ID: 2, SenderID: me, ReceiverID: 2, CreatedAt: at(5)},
		{ID: 3, SenderID: 3, ReceiverID: me, CreatedAt: at(10)},
	}
	reversed := []*models.Message{msgs[2], msgs[1], msgs[0]}

	a := BuildConversations(msgs, me)
	b := BuildConversations(reversed, me)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Partner.ID, b[i].Partner.ID)
		assert.Equal(t, a[i].LastMessage.ID, b[i].LastMessage.ID)
		assert.Equal(t, a[i].UnreadCount, b[i].UnreadCount)
	}
}

func TestBuildConversations_OwnMessagesNotUnread(t *testing.T) {
	const me = uint(1)
	msgs := []*models.Message{
		{ID: 1, SenderID: me, ReceiverID: 2, CreatedAt: at(0)},
		{ID: 2, SenderID: me, ReceiverID: 2, CreatedAt: at(1)},
	}
	convs := BuildConversations(msgs, me)
	require.Len(t, convs, 1)
	assert.Zero(t, convs[0].UnreadCount)
}

func TestBuildConversations_Empty(t *testing.T) {
	assert.Empty(t, BuildConversations(nil, 1))
}

func TestApplyMessage_MatchesRebuild(t *testing.T) {
	const me = uint(1)
	existing := []*models.Message{
		{ID: 1, SenderID: 2, ReceiverID: me, CreatedAt: at(0)},
		{ID: 2, SenderID: me, ReceiverID: 3, CreatedAt: at(5)},
	}
	incoming := &models.Message{ID: 3, SenderID: 2, ReceiverID: me, CreatedAt: at(10)}

	incremental := ApplyMessage(BuildConversations(existing, me), incoming, me)
	rebuilt := BuildConversations(append(existing, incoming), me)

	require.Equal(t, len(rebuilt), len(incremental))
	for i := range rebuilt {
		assert.Equal(t, rebuilt[i].Partner.ID, incremental[i].Partner.ID)
		assert.Equal(t, rebuilt[i].LastMessage.ID, incremental[i].LastMessage.ID)
		assert.Equal(t, rebuilt[i].UnreadCount, incremental[i].UnreadCount)
	}
}

func TestApplyMessage_NewPartner(t *testing.T) {
	const me = uint(1)
	incoming := &models.Message{ID: 9, SenderID: 7, ReceiverID: me, CreatedAt: at(0)}
	convs := ApplyMessage(nil, incoming, me)
	require.Len(t, convs, 1)
	assert.Equal(t, uint(7), convs[0].Partner.ID)
	assert.Equal(t, 1, convs[0].UnreadCount)
}

func TestSendMessage_Validation(t *testing.T) {
	svc := NewMessageService(&messageRepoStub{}, existingUserRepo())
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, 1, 2, "   ")
	require.Error(t, err)

	_, err = svc.SendMessage(ctx, 1, 1, "hi me")
	require.Error(t, err)
}

func TestSendMessage_Stores(t *testing.T) {
	var stored *models.Message
	repo := &messageRepoStub{
		createFn: func(_ context.Context, m *models.Message) error {
			stored = m
			return nil
		},
	}
	svc := NewMessageService(repo, existingUserRepo())

	msg, err := svc.SendMessage(context.Background(), 1, 2, "  hello  ")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hello", msg.Content)
	assert.False(t, msg.Read)
}

func TestOpenThread_MarksReadAndAscending(t *testing.T) {
	repo := &messageRepoStub{
		threadFn: func(context.Context, uint, uint, int, int) ([]*models.Message, error) {
			return []*models.Message{
				{ID: 2, SenderID: 2, ReceiverID: 1, Content: "second", CreatedAt: at(5)},
				{ID: 1, SenderID: 2, ReceiverID: 1, Content: "first", CreatedAt: at(0)},
			}, nil
		},
		markThreadReadFn: func(context.Context, uint, uint) (int64, error) {
			return 2, nil
		},
	}
	svc := NewMessageService(repo, existingUserRepo())

	result, err := svc.OpenThread(context.Background(), 1, 2, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.MarkedRead)
	require.Len(t, result.Messages, 2)
	assert.Equal(t, "first", result.Messages[0].Content)
	assert.True(t, result.Messages[0].Read)
	assert.True(t, result.Messages[1].Read)
}
