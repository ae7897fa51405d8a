// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"glowup/internal/models"
	"glowup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateAlbum handles POST /api/albums
func (s *Server) CreateAlbum(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	album, err := s.galleryService.CreateAlbum(c.Context(), userID, req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(album)
}

// GetMyAlbums handles GET /api/albums
func (s *Server) GetMyAlbums(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	albums, err := s.galleryService.ListAlbums(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(albums)
}

// GetUserAlbums handles GET /api/albums/user/:id
// Albums are public within the app; any authenticated user can browse.
func (s *Server) GetUserAlbums(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	albums, err := s.galleryService.ListAlbums(c.Context(), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(albums)
}

// GetAlbum handles GET /api/albums/:id
func (s *Server) GetAlbum(c *fiber.Ctx) error {
	albumID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	album, err := s.galleryService.GetAlbum(c.Context(), albumID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(album)
}

// RenameAlbum handles PUT /api/albums/:id (owner only)
func (s *Server) RenameAlbum(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	albumID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	album, err := s.galleryService.RenameAlbum(c.Context(), albumID, userID, req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(album)
}

// DeleteAlbum handles DELETE /api/albums/:id (owner only)
// Removes the album and everything in it.
func (s *Server) DeleteAlbum(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	albumID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.galleryService.DeleteAlbum(c.Context(), albumID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddGalleryItem handles POST /api/albums/:id/items (owner only)
func (s *Server) AddGalleryItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	albumID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		MediaURL  string `json:"media_url"`
		MediaType string `json:"media_type,omitempty"`
		Caption   string `json:"caption,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.galleryService.AddItem(c.Context(), service.AddGalleryItemInput{
		AlbumID:   albumID,
		UserID:    userID,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Caption:   req.Caption,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// DeleteGalleryItem handles DELETE /api/gallery/:id (owner only)
func (s *Server) DeleteGalleryItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	itemID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.galleryService.DeleteItem(c.Context(), itemID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
