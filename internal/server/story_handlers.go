// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"glowup/internal/models"
	"glowup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateStory handles POST /api/stories
func (s *Server) CreateStory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		MediaURL  string `json:"media_url"`
		MediaType string `json:"media_type,omitempty"`
		Duration  int    `json:"duration,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	story, err := s.storyService.CreateStory(c.Context(), service.CreateStoryInput{
		UserID:    userID,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Duration:  req.Duration,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	s.publishBroadcastEvent(EventStoryCreated, map[string]interface{}{
		"story_id":   story.ID,
		"author_id":  story.UserID,
		"expires_at": story.ExpiresAt,
	})

	return c.Status(fiber.StatusCreated).JSON(story)
}

// GetStoryFeed handles GET /api/stories
// Live stories from the caller and everyone they follow.
func (s *Server) GetStoryFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stories, err := s.storyService.StoryFeed(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(stories)
}

// GetMyStories handles GET /api/stories/me
func (s *Server) GetMyStories(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stories, err := s.storyService.MyStories(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(stories)
}

// ViewStory handles POST /api/stories/:id/view
// Records the view; owners viewing their own story and repeat views are no-ops.
func (s *Server) ViewStory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	storyID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.storyService.ViewStory(c.Context(), storyID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"viewed": true})
}

// GetStoryViewers handles GET /api/stories/:id/viewers (owner only)
func (s *Server) GetStoryViewers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	storyID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewers, err := s.storyService.StoryViewers(c.Context(), storyID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(viewers)
}

// DeleteStory handles DELETE /api/stories/:id (owner only)
func (s *Server) DeleteStory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	storyID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.storyService.DeleteStory(c.Context(), storyID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
