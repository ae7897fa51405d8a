package models

import (
	"time"

	"gorm.io/datatypes"
)

// AchievementType identifies a gamification track.
type AchievementType string

const (
	// AchievementBodyGoals is the fitness track.
	AchievementBodyGoals AchievementType = "body_goals"
	// AchievementSkinGlow is the skincare track.
	AchievementSkinGlow AchievementType = "skin_glow"
	// AchievementLevelUp is the career track.
	AchievementLevelUp AchievementType = "level_up"
	// AchievementMeals is the nutrition track.
	AchievementMeals AchievementType = "meals"
)

// AchievementTypes lists all tracks in display order.
var AchievementTypes = []AchievementType{
	AchievementBodyGoals,
	AchievementSkinGlow,
	AchievementLevelUp,
	AchievementMeals,
}

// ValidAchievementType reports whether t is a known track.
func ValidAchievementType(t AchievementType) bool {
	switch t {
	case AchievementBodyGoals, AchievementSkinGlow, AchievementLevelUp, AchievementMeals:
		return true
	}
	return false
}

// UserAchievement stores a user's state on one gamification track: the raw
// survey answers their guide is built from, plus a progress counter that is
// independent of the survey.
type UserAchievement struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	UserID          uint               `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementType AchievementType    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_achievement" json:"achievement_type"`
	SurveyResponses datatypes.JSONMap  `gorm:"type:json" json:"survey_responses"`
	Level           int                `gorm:"default:1" json:"level"`
	Progress        int                `gorm:"default:0" json:"progress"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (UserAchievement) TableName() string {
	return "user_achievements"
}

// Responses converts the stored JSON map to the string map the guide
// builder consumes. Non-string values are skipped.
func (a *UserAchievement) Responses() map[string]string {
	out := make(map[string]string, len(a.SurveyResponses))
	for k, v := range a.SurveyResponses {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// LevelForProgress computes an achievement level from raw progress points:
// one level per 100 points, starting at 1, capped at MaxGlowLevel.
func LevelForProgress(progress int) int {
	if progress < 0 {
		progress = 0
	}
	level := progress/100 + 1
	if level > MaxGlowLevel {
		level = MaxGlowLevel
	}
	return level
}
