// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"glowup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /api/messages
func (s *Server) SendMessage(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		ReceiverID uint   `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ReceiverID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("receiver_id is required"))
	}

	msg, err := s.messageService.SendMessage(ctx, userID, req.ReceiverID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}

	sender, serr := s.userRepo.GetByID(ctx, userID)
	payload := map[string]interface{}{
		"message_id": msg.ID,
		"sender_id":  msg.SenderID,
		"content":    msg.Content,
		"created_at": msg.CreatedAt,
	}
	if serr == nil {
		payload["sender"] = userSummaryPtr(sender)
	}
	s.publishUserEvent(req.ReceiverID, EventMessageReceived, payload)

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetConversations handles GET /api/messages/conversations
// Returns one entry per counterparty with the last message and unread count.
func (s *Server) GetConversations(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	convs, err := s.messageService.Conversations(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(convs)
}

// OpenThread handles GET /api/messages/:userId
// Returns the thread with one partner, oldest first, and marks the caller's
// unread messages from that partner as read.
func (s *Server) OpenThread(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	partnerID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	thread, err := s.messageService.OpenThread(c.Context(), userID, partnerID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	if thread.MarkedRead > 0 {
		s.publishUserEvent(partnerID, EventMessageRead, map[string]interface{}{
			"reader_id":   userID,
			"marked_read": thread.MarkedRead,
		})
	}

	return c.JSON(thread)
}

// GetUnreadCount handles GET /api/messages/unread-count
func (s *Server) GetUnreadCount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	count, err := s.messageService.UnreadCount(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"unread_count": count})
}
