package repository

import (
	"context"
	"errors"

	"glowup/internal/cache"
	"glowup/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for direct messages.
// Conversations are not stored; they are derived from the flat message
// table by the messaging service.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	Thread(ctx context.Context, userID, partnerID uint, limit, offset int) ([]*models.Message, error)
	ListForUser(ctx context.Context, userID uint, limit int) ([]*models.Message, error)
	MarkThreadRead(ctx context.Context, readerID, partnerID uint) (int64, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateConversations(ctx, msg.SenderID, msg.ReceiverID)
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var msg models.Message
	if err := readDB(r.db).WithContext(ctx).First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &msg, nil
}

// Thread returns the messages exchanged between two users, newest first.
func (r *messageRepository) Thread(ctx context.Context, userID, partnerID uint, limit, offset int) ([]*models.Message, error) {
	var msgs []*models.Message
	err := readDB(r.db).WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return msgs, nil
}

// ListForUser returns every message the user sent or received, newest first.
// The messaging service folds this into the conversation index.
func (r *messageRepository) ListForUser(ctx context.Context, userID uint, limit int) ([]*models.Message, error) {
	var msgs []*models.Message
	q := readDB(r.db).WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&msgs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return msgs, nil
}

// MarkThreadRead marks every unread message from partnerID to readerID as
// read in one statement and reports how many rows changed. Messages the
// reader sent are never touched.
func (r *messageRepository) MarkThreadRead(ctx context.Context, readerID, partnerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", readerID, partnerID, false).
		Update("read", true)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateConversations(ctx, readerID, partnerID)
	}
	return res.RowsAffected, nil
}

func (r *messageRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	var msg models.Message
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Message", id)
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateConversations(ctx, msg.SenderID, msg.ReceiverID)
	return nil
}
