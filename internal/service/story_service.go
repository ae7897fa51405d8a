package service

import (
	"context"
	"time"

	"glowup/internal/models"
	"glowup/internal/observability"
	"glowup/internal/repository"
)

// StoryService provides ephemeral story business logic. Stories expire
// 24 hours after posting; reads filter on expires_at and a background
// reaper removes lapsed rows.
type StoryService struct {
	storyRepo repository.StoryRepository
	now       func() time.Time
}

type CreateStoryInput struct {
	UserID    uint
	MediaURL  string
	MediaType string
	Duration  int
}

// NewStoryService returns a new StoryService.
func NewStoryService(storyRepo repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo, now: time.Now}
}

func (s *StoryService) CreateStory(ctx context.Context, in CreateStoryInput) (*models.Story, error) {
	if in.MediaURL == "" {
		return nil, models.NewValidationError("Story media is required")
	}
	mediaType := in.MediaType
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}
	if mediaType != models.MediaTypeImage && mediaType != models.MediaTypeVideo {
		return nil, models.NewValidationError("Invalid media_type")
	}
	duration := in.Duration
	if duration <= 0 {
		duration = models.DefaultStoryDuration
	}

	now := s.now()
	story := &models.Story{
		UserID:    in.UserID,
		MediaURL:  in.MediaURL,
		MediaType: mediaType,
		Duration:  duration,
		ExpiresAt: now.Add(models.StoryLifetime),
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *StoryService) GetStory(ctx context.Context, id uint) (*models.Story, error) {
	return s.storyRepo.GetByID(ctx, id, s.now())
}

// MyStories returns the user's own live stories, oldest first.
func (s *StoryService) MyStories(ctx context.Context, userID uint) ([]*models.Story, error) {
	return s.storyRepo.ActiveByUser(ctx, userID, s.now())
}

// StoryFeed returns live stories from the user and everyone they follow.
func (s *StoryService) StoryFeed(ctx context.Context, userID uint) ([]*models.Story, error) {
	return s.storyRepo.ActiveFeed(ctx, userID, s.now())
}

// ViewStory records that the viewer saw the story. The owner viewing their
// own story is not recorded; repeats are no-ops.
func (s *StoryService) ViewStory(ctx context.Context, storyID, viewerID uint) error {
	story, err := s.storyRepo.GetByID(ctx, storyID, s.now())
	if err != nil {
		return err
	}
	if story.UserID == viewerID {
		return nil
	}
	return s.storyRepo.RecordView(ctx, storyID, viewerID)
}

// StoryViewers lists who saw a story. Only the owner may ask.
func (s *StoryService) StoryViewers(ctx context.Context, storyID, requesterID uint) ([]models.User, error) {
	story, err := s.storyRepo.GetByID(ctx, storyID, s.now())
	if err != nil {
		return nil, err
	}
	if story.UserID != requesterID {
		return nil, models.NewForbiddenError("Only the story owner can see viewers")
	}
	return s.storyRepo.Viewers(ctx, storyID)
}

// DeleteStory removes a story before it expires. Owner only.
func (s *StoryService) DeleteStory(ctx context.Context, storyID, requesterID uint) error {
	story, err := s.storyRepo.GetByID(ctx, storyID, s.now())
	if err != nil {
		return err
	}
	if story.UserID != requesterID {
		return models.NewForbiddenError("You can only delete your own stories")
	}
	return s.storyRepo.Delete(ctx, storyID)
}

// StartReaper deletes expired stories on the given interval until the
// context is cancelled.
func (s *StoryService) StartReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := s.storyRepo.DeleteExpired(ctx, s.now())
				if err != nil {
					observability.GlobalLogger.ErrorContext(ctx, "story reaper failed", "error", err)
					continue
				}
				if removed > 0 {
					observability.GlobalLogger.InfoContext(ctx, "reaped expired stories", "count", removed)
				}
			}
		}
	}()
}
