// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"io"

	"glowup/internal/models"
	"glowup/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// readUploadedFile pulls the "file" form field into memory. On failure the
// 400 response is already written and errResponseWritten is returned.
func readUploadedFile(c *fiber.Ctx) (filename, contentType string, data []byte, err error) {
	file, err := c.FormFile("file")
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
		return "", "", nil, errResponseWritten
	}

	src, err := file.Open()
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
		return "", "", nil, errResponseWritten
	}
	defer func() { _ = src.Close() }()

	data, err = io.ReadAll(src)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
		return "", "", nil, errResponseWritten
	}

	return file.Filename, file.Header.Get("Content-Type"), data, nil
}

// requireMediaService writes a 503 when object storage is not configured.
func (s *Server) requireMediaService(c *fiber.Ctx) bool {
	if s.mediaService == nil {
		_ = c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Uploads are temporarily unavailable",
		})
		return false
	}
	return true
}

// UploadMedia handles POST /api/uploads
// Stores a gallery or story upload as-is; ?bucket= selects the destination.
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	if !s.requireMediaService(c) {
		return nil
	}
	userID := c.Locals("userID").(uint)

	bucket := c.Query("bucket", storage.BucketGallery)
	filename, contentType, data, err := readUploadedFile(c)
	if err != nil {
		return nil
	}

	result, err := s.mediaService.UploadMedia(c.UserContext(), userID, bucket, filename, contentType, data)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// UploadAvatar handles POST /api/uploads/avatar
// Normalizes the image (downscale, re-encode as WebP) and updates the
// caller's profile. ?cover=true stores a cover image instead.
func (s *Server) UploadAvatar(c *fiber.Ctx) error {
	if !s.requireMediaService(c) {
		return nil
	}
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	cover := c.QueryBool("cover", false)
	filename, contentType, data, err := readUploadedFile(c)
	if err != nil {
		return nil
	}

	result, err := s.mediaService.UploadProfileImage(ctx, userID, filename, contentType, data, cover)
	if err != nil {
		return respondServiceError(c, err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if cover {
		user.CoverURL = result.URL
	} else {
		user.AvatarURL = result.URL
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"upload": result,
		"user":   user,
	})
}

// PresignUpload handles POST /api/uploads/presign
// Issues a short-lived direct-upload URL for large media.
func (s *Server) PresignUpload(c *fiber.Ctx) error {
	if !s.requireMediaService(c) {
		return nil
	}
	userID := c.Locals("userID").(uint)

	var req struct {
		Bucket      string `json:"bucket"`
		Filename    string `json:"filename"`
		ContentType string `json:"content_type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Filename == "" || req.ContentType == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("filename and content_type are required"))
	}
	if req.Bucket == "" {
		req.Bucket = storage.BucketGallery
	}

	result, err := s.mediaService.PresignUpload(c.UserContext(), userID, req.Bucket, req.Filename, req.ContentType)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(result)
}
