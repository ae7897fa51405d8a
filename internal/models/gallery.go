package models

import "time"

// Album groups a user's gallery media.
type Album struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	Name      string        `gorm:"size:80;not null" json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Items     []GalleryItem `gorm:"foreignKey:AlbumID" json:"items,omitempty"`
}

// GalleryItem is a single media entry inside an album.
type GalleryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AlbumID   uint      `gorm:"not null;index" json:"album_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	MediaURL  string    `gorm:"not null" json:"media_url"`
	MediaType string    `gorm:"type:varchar(10);not null;default:'image'" json:"media_type"`
	Caption   string    `gorm:"size:200" json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}
