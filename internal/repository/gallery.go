package repository

import (
	"context"
	"errors"

	"glowup/internal/models"

	"gorm.io/gorm"
)

// GalleryRepository defines persistence operations for albums and their
// media items.
type GalleryRepository interface {
	CreateAlbum(ctx context.Context, album *models.Album) error
	GetAlbum(ctx context.Context, id uint) (*models.Album, error)
	ListAlbums(ctx context.Context, userID uint) ([]*models.Album, error)
	UpdateAlbum(ctx context.Context, album *models.Album) error
	DeleteAlbum(ctx context.Context, id uint) error
	AddItem(ctx context.Context, item *models.GalleryItem) error
	GetItem(ctx context.Context, id uint) (*models.GalleryItem, error)
	ListItems(ctx context.Context, albumID uint, limit, offset int) ([]*models.GalleryItem, error)
	DeleteItem(ctx context.Context, id uint) error
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository returns a new GalleryRepository implementation.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) CreateAlbum(ctx context.Context, album *models.Album) error {
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *galleryRepository) GetAlbum(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	err := readDB(r.db).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&album, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Album", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &album, nil
}

func (r *galleryRepository) ListAlbums(ctx context.Context, userID uint) ([]*models.Album, error) {
	var albums []*models.Album
	err := readDB(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&albums).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return albums, nil
}

func (r *galleryRepository) UpdateAlbum(ctx context.Context, album *models.Album) error {
	if err := r.db.WithContext(ctx).Save(album).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteAlbum removes the album together with its items.
func (r *galleryRepository) DeleteAlbum(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("album_id = ?", id).Delete(&models.GalleryItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Album{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *galleryRepository) AddItem(ctx context.Context, item *models.GalleryItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *galleryRepository) GetItem(ctx context.Context, id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := readDB(r.db).WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("GalleryItem", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *galleryRepository) ListItems(ctx context.Context, albumID uint, limit, offset int) ([]*models.GalleryItem, error) {
	var items []*models.GalleryItem
	err := readDB(r.db).WithContext(ctx).
		Where("album_id = ?", albumID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *galleryRepository) DeleteItem(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.GalleryItem{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
