// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"glowup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAchievements handles GET /api/achievements
func (s *Server) GetAchievements(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	achievements, err := s.achievementService.ListAchievements(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(achievements)
}

// GetAchievement handles GET /api/achievements/:type
func (s *Server) GetAchievement(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	achievementType := c.Params("type")

	achievement, err := s.achievementService.GetAchievement(c.Context(), userID, achievementType)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(achievement)
}

// GetSurveyQuestions handles GET /api/achievements/:type/survey
// The question set is fixed per track.
func (s *Server) GetSurveyQuestions(c *fiber.Ctx) error {
	achievementType := c.Params("type")

	questions, err := s.achievementService.SurveyQuestions(achievementType)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"achievement_type": achievementType,
		"questions":        questions,
	})
}

// SubmitSurvey handles POST /api/achievements/:type/survey
// Resubmitting overwrites stored answers; progress and level survive.
func (s *Server) SubmitSurvey(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	achievementType := c.Params("type")

	var req struct {
		Responses map[string]string `json:"responses"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if len(req.Responses) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Survey responses are required"))
	}

	achievement, err := s.achievementService.SubmitSurvey(c.Context(), userID, achievementType, req.Responses)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(achievement)
}

// GetGuide handles GET /api/achievements/:type/guide
// Builds the personalized guide from the stored survey, with storefront
// recommendations resolved.
func (s *Server) GetGuide(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	achievementType := c.Params("type")

	guide, err := s.achievementService.GetGuide(c.Context(), userID, achievementType)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(guide)
}

// AddAchievementProgress handles POST /api/achievements/:type/progress
func (s *Server) AddAchievementProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	achievementType := c.Params("type")

	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Delta == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("delta must be non-zero"))
	}

	achievement, err := s.achievementService.AddProgress(c.Context(), userID, achievementType, req.Delta)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(achievement)
}
