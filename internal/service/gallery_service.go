package service

import (
	"context"
	"strings"

	"glowup/internal/models"
	"glowup/internal/repository"
)

// GalleryService provides album and gallery item business logic.
type GalleryService struct {
	galleryRepo repository.GalleryRepository
}

type AddGalleryItemInput struct {
	AlbumID   uint
	UserID    uint
	MediaURL  string
	MediaType string
	Caption   string
}

// NewGalleryService returns a new GalleryService.
func NewGalleryService(galleryRepo repository.GalleryRepository) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo}
}

func (s *GalleryService) CreateAlbum(ctx context.Context, userID uint, name string) (*models.Album, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Album name is required")
	}
	if len(name) > 80 {
		return nil, models.NewValidationError("Album name too long (max 80 characters)")
	}
	album := &models.Album{UserID: userID, Name: name}
	if err := s.galleryRepo.CreateAlbum(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *GalleryService) ListAlbums(ctx context.Context, userID uint) ([]*models.Album, error) {
	return s.galleryRepo.ListAlbums(ctx, userID)
}

func (s *GalleryService) GetAlbum(ctx context.Context, albumID uint) (*models.Album, error) {
	return s.galleryRepo.GetAlbum(ctx, albumID)
}

func (s *GalleryService) RenameAlbum(ctx context.Context, albumID, userID uint, name string) (*models.Album, error) {
	album, err := s.galleryRepo.GetAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album.UserID != userID {
		return nil, models.NewForbiddenError("You can only rename your own albums")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Album name is required")
	}
	album.Name = name
	if err := s.galleryRepo.UpdateAlbum(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *GalleryService) DeleteAlbum(ctx context.Context, albumID, userID uint) error {
	album, err := s.galleryRepo.GetAlbum(ctx, albumID)
	if err != nil {
		return err
	}
	if album.UserID != userID {
		return models.NewForbiddenError("You can only delete your own albums")
	}
	return s.galleryRepo.DeleteAlbum(ctx, albumID)
}

func (s *GalleryService) AddItem(ctx context.Context, in AddGalleryItemInput) (*models.GalleryItem, error) {
	album, err := s.galleryRepo.GetAlbum(ctx, in.AlbumID)
	if err != nil {
		return nil, err
	}
	if album.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only add to your own albums")
	}
	if in.MediaURL == "" {
		return nil, models.NewValidationError("Media URL is required")
	}
	mediaType := in.MediaType
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}
	if mediaType != models.MediaTypeImage && mediaType != models.MediaTypeVideo {
		return nil, models.NewValidationError("Invalid media_type")
	}
	if len(in.Caption) > 200 {
		return nil, models.NewValidationError("Caption too long (max 200 characters)")
	}

	item := &models.GalleryItem{
		AlbumID:   in.AlbumID,
		UserID:    in.UserID,
		MediaURL:  in.MediaURL,
		MediaType: mediaType,
		Caption:   in.Caption,
	}
	if err := s.galleryRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) DeleteItem(ctx context.Context, itemID, userID uint) error {
	item, err := s.galleryRepo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return models.NewForbiddenError("You can only delete your own gallery items")
	}
	return s.galleryRepo.DeleteItem(ctx, itemID)
}
