package database

import "glowup/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Follow{},
		&models.Message{},
		&models.Story{},
		&models.StoryView{},
		&models.Routine{},
		&models.Album{},
		&models.GalleryItem{},
		&models.UserAchievement{},
		&models.Product{},
	}
}
