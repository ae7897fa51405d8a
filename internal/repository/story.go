package repository

import (
	"context"
	"errors"
	"time"

	"glowup/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoryRepository defines persistence operations for ephemeral stories.
// Every read filters on expires_at; expired rows are invisible the moment
// they lapse, regardless of when the reaper deletes them.
type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id uint, now time.Time) (*models.Story, error)
	ActiveByUser(ctx context.Context, userID uint, now time.Time) ([]*models.Story, error)
	ActiveFeed(ctx context.Context, userID uint, now time.Time) ([]*models.Story, error)
	RecordView(ctx context.Context, storyID, viewerID uint) error
	Viewers(ctx context.Context, storyID uint) ([]models.User, error)
	Delete(ctx context.Context, id uint) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository returns a new StoryRepository implementation.
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	if err := r.db.WithContext(ctx).Create(story).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id uint, now time.Time) (*models.Story, error) {
	var story models.Story
	err := r.applyViewCount(readDB(r.db).WithContext(ctx)).
		Preload("User").
		Where("stories.expires_at > ?", now).
		First(&story, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Story", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &story, nil
}

func (r *storyRepository) ActiveByUser(ctx context.Context, userID uint, now time.Time) ([]*models.Story, error) {
	var stories []*models.Story
	err := r.applyViewCount(readDB(r.db).WithContext(ctx)).
		Preload("User").
		Where("stories.user_id = ? AND stories.expires_at > ?", userID, now).
		Order("stories.created_at ASC").
		Find(&stories).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return stories, nil
}

// ActiveFeed returns live stories from the user and everyone they follow,
// oldest first so clients play them in posting order.
func (r *storyRepository) ActiveFeed(ctx context.Context, userID uint, now time.Time) ([]*models.Story, error) {
	var stories []*models.Story
	err := r.applyViewCount(readDB(r.db).WithContext(ctx)).
		Preload("User").
		Where("stories.expires_at > ?", now).
		Where("stories.user_id = ? OR stories.user_id IN (?)",
			userID,
			r.db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", userID),
		).
		Order("stories.user_id ASC, stories.created_at ASC").
		Find(&stories).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return stories, nil
}

func (r *storyRepository) applyViewCount(db *gorm.DB) *gorm.DB {
	return db.Select("stories.*, " +
		"(SELECT COUNT(*) FROM story_views WHERE story_views.story_id = stories.id) as view_count")
}

// RecordView stores a view once per viewer. Repeat views are no-ops.
func (r *storyRepository) RecordView(ctx context.Context, storyID, viewerID uint) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "story_id"}, {Name: "viewer_id"}},
			DoNothing: true,
		}).
		Create(&models.StoryView{StoryID: storyID, ViewerID: viewerID}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *storyRepository) Viewers(ctx context.Context, storyID uint) ([]models.User, error) {
	var users []models.User
	err := readDB(r.db).WithContext(ctx).
		Joins("JOIN story_views ON story_views.viewer_id = users.id").
		Where("story_views.story_id = ?", storyID).
		Order("story_views.viewed_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *storyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Story{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteExpired removes stories past their lifetime along with their views.
// Called by the background reaper.
func (r *storyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("story_id IN (?)", tx.Model(&models.Story{}).Select("id").Where("expires_at <= ?", now)).
			Delete(&models.StoryView{}).Error; err != nil {
			return err
		}
		res := tx.Where("expires_at <= ?", now).Delete(&models.Story{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return removed, nil
}
