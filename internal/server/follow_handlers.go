// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"time"

	"glowup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
// Following twice is a no-op.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if targetID == userID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot follow yourself"))
	}

	// Verify the target exists before writing the edge
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.followRepo.Follow(ctx, userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	follower, ferr := s.userRepo.GetByID(ctx, userID)
	if ferr == nil {
		s.publishUserEvent(targetID, EventFollowerAdded, map[string]interface{}{
			"follower":    userSummaryPtr(follower),
			"followed_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Now following " + target.Username,
		"following": true,
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followRepo.Unfollow(ctx, userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	s.publishUserEvent(targetID, EventFollowerRemoved, map[string]interface{}{
		"follower_id": userID,
	})

	return c.JSON(fiber.Map{
		"message":   "Unfollowed",
		"following": false,
	})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.Context()
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	followers, err := s.followRepo.Followers(ctx, targetID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ctx := c.Context()
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	following, err := s.followRepo.Following(ctx, targetID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(following)
}
