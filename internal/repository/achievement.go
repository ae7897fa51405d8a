package repository

import (
	"context"
	"errors"

	"glowup/internal/cache"
	"glowup/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementRepository defines persistence operations for gamification
// tracks. One row per (user, track); survey resubmission overwrites the
// stored answers without touching progress.
type AchievementRepository interface {
	UpsertSurvey(ctx context.Context, userID uint, achievementType models.AchievementType, responses datatypes.JSONMap) (*models.UserAchievement, error)
	GetByUserAndType(ctx context.Context, userID uint, achievementType models.AchievementType) (*models.UserAchievement, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.UserAchievement, error)
	AddProgress(ctx context.Context, userID uint, achievementType models.AchievementType, delta int) (*models.UserAchievement, error)
}

type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository returns a new AchievementRepository implementation.
func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

// UpsertSurvey stores the survey answers for one track. A first submission
// creates the row at level 1 with zero progress; resubmission replaces only
// the answers.
func (r *achievementRepository) UpsertSurvey(ctx context.Context, userID uint, achievementType models.AchievementType, responses datatypes.JSONMap) (*models.UserAchievement, error) {
	row := models.UserAchievement{
		UserID:          userID,
		AchievementType: achievementType,
		SurveyResponses: responses,
		Level:           1,
		Progress:        0,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"survey_responses", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	cache.InvalidateGuide(ctx, userID, string(achievementType))

	// Re-read so resubmissions return the surviving level and progress,
	// not the zero values from the insert attempt.
	return r.GetByUserAndType(ctx, userID, achievementType)
}

func (r *achievementRepository) GetByUserAndType(ctx context.Context, userID uint, achievementType models.AchievementType) (*models.UserAchievement, error) {
	var row models.UserAchievement
	err := readDB(r.db).WithContext(ctx).
		Where("user_id = ? AND achievement_type = ?", userID, achievementType).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Achievement", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &row, nil
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID uint) ([]*models.UserAchievement, error) {
	var rows []*models.UserAchievement
	err := readDB(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("achievement_type ASC").
		Find(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}

// AddProgress applies a progress delta and recomputes the level. Progress
// never drops below zero. The row must already exist; a track with no
// survey has nothing to progress.
func (r *achievementRepository) AddProgress(ctx context.Context, userID uint, achievementType models.AchievementType, delta int) (*models.UserAchievement, error) {
	var row models.UserAchievement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ? AND achievement_type = ?", userID, achievementType).
			First(&row).Error
		if err != nil {
			return err
		}
		row.Progress += delta
		if row.Progress < 0 {
			row.Progress = 0
		}
		row.Level = models.LevelForProgress(row.Progress)
		return tx.Model(&row).
			Select("progress", "level").
			Updates(map[string]any{"progress": row.Progress, "level": row.Level}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Achievement", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &row, nil
}
