// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// RelationshipStatus is the profile relationship field's closed value set.
type RelationshipStatus string

const (
	// RelationshipSingle indicates a single relationship status.
	RelationshipSingle RelationshipStatus = "single"
	// RelationshipTaken indicates the user is in a relationship.
	RelationshipTaken RelationshipStatus = "in_relationship"
	// RelationshipMarried indicates a married relationship status.
	RelationshipMarried RelationshipStatus = "married"
	// RelationshipComplicated indicates an "it's complicated" status.
	RelationshipComplicated RelationshipStatus = "complicated"
)

// ValidRelationshipStatus reports whether s is a known status.
func ValidRelationshipStatus(s RelationshipStatus) bool {
	switch s {
	case RelationshipSingle, RelationshipTaken, RelationshipMarried, RelationshipComplicated:
		return true
	}
	return false
}

// MaxGlowLevel caps profile and achievement leveling.
const MaxGlowLevel = 10

// User represents a member profile in the Glowup application.
type User struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	Username           string             `gorm:"unique;not null" json:"username"`
	Email              string             `gorm:"unique;not null" json:"email"`
	Password           string             `gorm:"not null" json:"-"`
	DisplayName        string             `gorm:"size:60" json:"display_name"`
	Bio                string             `gorm:"size:500" json:"bio"`
	AvatarURL          string             `json:"avatar_url"`
	CoverURL           string             `json:"cover_url"`
	RelationshipStatus RelationshipStatus `gorm:"type:varchar(20)" json:"relationship_status"`
	CurrentCity        string             `gorm:"size:80" json:"current_city"`
	Hobby              string             `gorm:"size:80" json:"hobby"`
	Career             string             `gorm:"size:80" json:"career"`
	Points             int                `gorm:"default:0" json:"points"`
	GlowUpProgress     int                `gorm:"default:0" json:"glow_up_progress"`
	DailyStreak        int                `gorm:"default:0" json:"daily_streak"`
	LastActiveDate     *time.Time         `gorm:"type:date" json:"last_active_date,omitempty"`
	IsAdmin            bool               `gorm:"default:false" json:"is_admin"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
	Posts              []Post             `gorm:"foreignKey:UserID" json:"posts,omitempty"`

	// FollowerCount and FollowingCount are not persisted; computed at query time
	FollowerCount  int `gorm:"->;-:migration" json:"follower_count,omitempty"`
	FollowingCount int `gorm:"->;-:migration" json:"following_count,omitempty"`
}

// Level derives the profile level from accumulated points.
// One level per 100 points, capped at MaxGlowLevel.
func (u *User) Level() int {
	level := u.Points/100 + 1
	if level > MaxGlowLevel {
		level = MaxGlowLevel
	}
	return level
}
