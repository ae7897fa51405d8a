package service

import (
	"context"
	"testing"
	"time"

	"glowup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storyRepoStub struct {
	created   []*models.Story
	views     map[[2]uint]struct{}
	getByIDFn func(context.Context, uint, time.Time) (*models.Story, error)
}

func newStoryRepoStub() *storyRepoStub {
	return &storyRepoStub{views: make(map[[2]uint]struct{})}
}

func (s *storyRepoStub) Create(_ context.Context, story *models.Story) error {
	s.created = append(s.created, story)
	return nil
}
func (s *storyRepoStub) GetByID(ctx context.Context, id uint, now time.Time) (*models.Story, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id, now)
	}
	return nil, models.NewNotFoundError("Story", id)
}
func (s *storyRepoStub) ActiveByUser(context.Context, uint, time.Time) ([]*models.Story, error) {
	return nil, nil
}
func (s *storyRepoStub) ActiveFeed(context.Context, uint, time.Time) ([]*models.Story, error) {
	return nil, nil
}
func (s *storyRepoStub) RecordView(_ context.Context, storyID, viewerID uint) error {
	s.views[[2]uint{storyID, viewerID}] = struct{}{}
	return nil
}
func (s *storyRepoStub) Viewers(context.Context, uint) ([]models.User, error) {
	return nil, nil
}
func (s *storyRepoStub) Delete(context.Context, uint) error { return nil }
func (s *storyRepoStub) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func TestCreateStory_Defaults(t *testing.T) {
	repo := newStoryRepoStub()
	svc := NewStoryService(repo)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	story, err := svc.CreateStory(context.Background(), CreateStoryInput{
		UserID: 1, MediaURL: "stories/1/clip.webp",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypeImage, story.MediaType)
	assert.Equal(t, models.DefaultStoryDuration, story.Duration)
	assert.Equal(t, base.Add(models.StoryLifetime), story.ExpiresAt)
	assert.False(t, story.Expired(base))
	assert.True(t, story.Expired(base.Add(models.StoryLifetime)))
}

func TestCreateStory_Validation(t *testing.T) {
	svc := NewStoryService(newStoryRepoStub())
	ctx := context.Background()

	_, err := svc.CreateStory(ctx, CreateStoryInput{UserID: 1})
	require.Error(t, err)

	_, err = svc.CreateStory(ctx, CreateStoryInput{UserID: 1, MediaURL: "x", MediaType: "audio"})
	require.Error(t, err)
}

func TestViewStory_OwnerNotRecorded(t *testing.T) {
	repo := newStoryRepoStub()
	repo.getByIDFn = func(context.Context, uint, time.Time) (*models.Story, error) {
		return &models.Story{ID: 5, UserID: 1}, nil
	}
	svc := NewStoryService(repo)
	ctx := context.Background()

	require.NoError(t, svc.ViewStory(ctx, 5, 1))
	assert.Empty(t, repo.views)

	require.NoError(t, svc.ViewStory(ctx, 5, 2))
	assert.Len(t, repo.views, 1)
}

func TestStoryViewers_OwnerOnly(t *testing.T) {
	repo := newStoryRepoStub()
	repo.getByIDFn = func(context.Context, uint, time.Time) (*models.Story, error) {
		return &models.Story{ID: 5, UserID: 1}, nil
	}
	svc := NewStoryService(repo)

	_, err := svc.StoryViewers(context.Background(), 5, 2)
	require.Error(t, err)

	_, err = svc.StoryViewers(context.Background(), 5, 1)
	require.NoError(t, err)
}
