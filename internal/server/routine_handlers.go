// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"glowup/internal/models"
	"glowup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateRoutine handles POST /api/routines
func (s *Server) CreateRoutine(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title    string `json:"title"`
		Category string `json:"category,omitempty"`
		Time     string `json:"time,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	routine, err := s.routineService.CreateRoutine(c.Context(), service.CreateRoutineInput{
		UserID:   userID,
		Title:    req.Title,
		Category: req.Category,
		Time:     req.Time,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(routine)
}

// GetRoutines handles GET /api/routines
// Returns the caller's routines plus a completion summary.
func (s *Server) GetRoutines(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	routines, err := s.routineService.ListRoutines(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	completed := 0
	for _, r := range routines {
		if r.Completed {
			completed++
		}
	}

	return c.JSON(fiber.Map{
		"routines":  routines,
		"completed": completed,
		"total":     len(routines),
	})
}

// ToggleRoutine handles POST /api/routines/:id/toggle
// Completing a routine awards profile points; unchecking takes none back.
func (s *Server) ToggleRoutine(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	routineID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	routine, err := s.routineService.ToggleCompleted(c.Context(), routineID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(routine)
}

// DeleteRoutine handles DELETE /api/routines/:id (owner only)
func (s *Server) DeleteRoutine(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	routineID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.routineService.DeleteRoutine(c.Context(), routineID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
