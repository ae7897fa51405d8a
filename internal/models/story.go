package models

import "time"

// Media type constants shared by stories and gallery items.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// StoryLifetime is how long a story stays visible after posting.
const StoryLifetime = 24 * time.Hour

// DefaultStoryDuration is the per-story playback duration in seconds.
const DefaultStoryDuration = 5

// Story is an ephemeral media post that disappears after StoryLifetime.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	MediaURL  string    `gorm:"not null" json:"media_url"`
	MediaType string    `gorm:"type:varchar(10);not null;default:'image'" json:"media_type"`
	Duration  int       `gorm:"default:5" json:"duration"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`

	// ViewCount is not persisted; computed at query time for the owner.
	ViewCount int `gorm:"->;-:migration" json:"view_count,omitempty"`
}

// Expired reports whether the story is past its lifetime at the given instant.
func (s *Story) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// StoryView records that a viewer has seen a story. The (story, viewer)
// pair is unique so repeat views stay a single row.
type StoryView struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	StoryID  uint      `gorm:"not null;uniqueIndex:idx_story_viewer;index" json:"story_id"`
	ViewerID uint      `gorm:"not null;uniqueIndex:idx_story_viewer" json:"viewer_id"`
	ViewedAt time.Time `gorm:"autoCreateTime" json:"viewed_at"`
}

// TableName specifies the table name for GORM.
func (StoryView) TableName() string {
	return "story_views"
}
