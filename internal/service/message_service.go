// Package service provides application business logic.
package service

import (
	"context"
	"sort"
	"strings"

	"glowup/internal/cache"
	"glowup/internal/models"
	"glowup/internal/repository"
)

// MaxMessageLen bounds a single direct message.
const MaxMessageLen = 2000

// MessageService provides direct messaging and the derived conversation
// index. Conversations are never stored; they are folded from the flat
// message table.
type MessageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{msgRepo: msgRepo, userRepo: userRepo}
}

// SendMessage validates and stores a direct message to another user.
func (s *MessageService) SendMessage(ctx context.Context, senderID, receiverID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Message content is required")
	}
	if len(content) > MaxMessageLen {
		return nil, models.NewValidationError("Message too long (max 2000 characters)")
	}
	if senderID == receiverID {
		return nil, models.NewValidationError("Cannot message yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Conversations returns the user's conversation index, newest activity
// first. The index is cached briefly; message writes invalidate it for
// both parties.
func (s *MessageService) Conversations(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := cache.Aside(ctx, cache.ConversationsKey(userID), &convs, cache.ConversationsTTL, func() error {
		msgs, err := s.msgRepo.ListForUser(ctx, userID, 0)
		if err != nil {
			return err
		}
		convs = BuildConversations(msgs, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// BuildConversations folds a user's messages into one conversation per
// counterparty: the most recent message, and how many of the partner's
// messages are still unread. Input order does not matter. The result is
// ordered by last-message time descending.
func BuildConversations(msgs []*models.Message, userID uint) []models.Conversation {
	byPartner := make(map[uint]*models.Conversation)
	order := make([]uint, 0)

	for _, m := range msgs {
		partnerID := m.Counterpart(userID)
		conv, ok := byPartner[partnerID]
		if !ok {
			conv = &models.Conversation{}
			byPartner[partnerID] = conv
			order = append(order, partnerID)
		}
		if conv.LastMessage == nil || m.CreatedAt.After(conv.LastMessage.CreatedAt) ||
			(m.CreatedAt.Equal(conv.LastMessage.CreatedAt) && m.ID > conv.LastMessage.ID) {
			conv.LastMessage = m
		}
		if m.ReceiverID == userID && !m.Read {
			conv.UnreadCount++
		}
		if conv.Partner.ID == 0 {
			if m.SenderID == partnerID && m.Sender != nil {
				conv.Partner = *m.Sender
			} else if m.ReceiverID == partnerID && m.Receiver != nil {
				conv.Partner = *m.Receiver
			}
		}
	}

	out := make([]models.Conversation, 0, len(byPartner))
	for _, id := range order {
		conv := byPartner[id]
		if conv.Partner.ID == 0 {
			conv.Partner = models.User{ID: id}
		}
		out = append(out, *conv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastMessage, out[j].LastMessage
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out
}

// ApplyMessage incrementally folds a single message event into an existing
// conversation index, avoiding a full rebuild. The message must involve
// userID. Returns the updated index, still ordered by recency.
func ApplyMessage(convs []models.Conversation, msg *models.Message, userID uint) []models.Conversation {
	partnerID := msg.Counterpart(userID)

	idx := -1
	for i := range convs {
		if convs[i].Partner.ID == partnerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		conv := models.Conversation{Partner: models.User{ID: partnerID}, LastMessage: msg}
		if msg.SenderID == partnerID && msg.Sender != nil {
			conv.Partner = *msg.Sender
		} else if msg.ReceiverID == partnerID && msg.Receiver != nil {
			conv.Partner = *msg.Receiver
		}
		if msg.ReceiverID == userID && !msg.Read {
			conv.UnreadCount = 1
		}
		return append([]models.Conversation{conv}, convs...)
	}

	conv := convs[idx]
	if conv.LastMessage == nil || msg.CreatedAt.After(conv.LastMessage.CreatedAt) ||
		(msg.CreatedAt.Equal(conv.LastMessage.CreatedAt) && msg.ID > conv.LastMessage.ID) {
		conv.LastMessage = msg
	}
	if msg.ReceiverID == userID && !msg.Read {
		conv.UnreadCount++
	}

	// Move the touched conversation to the front.
	out := make([]models.Conversation, 0, len(convs))
	out = append(out, conv)
	out = append(out, convs[:idx]...)
	out = append(out, convs[idx+1:]...)
	return out
}

// ThreadResult is an opened message thread.
type ThreadResult struct {
	Messages   []*models.Message `json:"messages"`
	MarkedRead int64             `json:"marked_read"`
}

// OpenThread returns the conversation with one partner, oldest first, and
// batch-marks the reader's unread messages from that partner as read.
// Opening twice is idempotent; the second open marks nothing.
func (s *MessageService) OpenThread(ctx context.Context, userID, partnerID uint, limit, offset int) (*ThreadResult, error) {
	if _, err := s.userRepo.GetByID(ctx, partnerID); err != nil {
		return nil, err
	}

	msgs, err := s.msgRepo.Thread(ctx, userID, partnerID, limit, offset)
	if err != nil {
		return nil, err
	}
	// Repository order is newest first for pagination; clients read
	// threads top-down.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	marked, err := s.msgRepo.MarkThreadRead(ctx, userID, partnerID)
	if err != nil {
		return nil, err
	}
	// Reflect the mark in the returned page without re-reading.
	if marked > 0 {
		for _, m := range msgs {
			if m.ReceiverID == userID {
				m.Read = true
			}
		}
	}
	return &ThreadResult{Messages: msgs, MarkedRead: marked}, nil
}

// UnreadCount returns the user's total unread messages across all threads.
func (s *MessageService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.msgRepo.UnreadCount(ctx, userID)
}
