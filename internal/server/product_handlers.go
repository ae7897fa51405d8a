// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"glowup/internal/models"
	"glowup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProducts handles GET /api/products
// Supports ?category= and ?featured=true filters.
func (s *Server) GetProducts(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	category := c.Query("category")
	featuredOnly := c.QueryBool("featured", false)

	products, err := s.productService.ListProducts(c.Context(), category, featuredOnly, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(products)
}

// GetProduct handles GET /api/products/:id
func (s *Server) GetProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.productService.GetProduct(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(product)
}

// CreateProduct handles POST /api/admin/products (admin only)
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		Featured    bool    `json:"featured"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, err := s.productService.CreateProduct(c.Context(), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Featured:    req.Featured,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /api/admin/products/:id (admin only)
func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		Featured    bool    `json:"featured"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, err := s.productService.UpdateProduct(c.Context(), id, service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Featured:    req.Featured,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(product)
}

// DeleteProduct handles DELETE /api/admin/products/:id (admin only)
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.productService.DeleteProduct(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
