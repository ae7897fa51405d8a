package service

import (
	"context"
	"strings"

	"glowup/internal/models"
	"glowup/internal/repository"
)

// ProductService provides storefront business logic.
type ProductService struct {
	productRepo repository.ProductRepository
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Featured    bool
}

// NewProductService returns a new ProductService.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) ListProducts(ctx context.Context, category string, featuredOnly bool, limit, offset int) ([]*models.Product, error) {
	var cat models.ProductCategory
	if category != "" {
		cat = models.ProductCategory(category)
		if !models.ValidProductCategory(cat) {
			return nil, models.NewValidationError("Unknown product category")
		}
	}
	return s.productRepo.List(ctx, cat, featuredOnly, limit, offset)
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct adds a storefront item. Admin only; the handler enforces
// the role.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Product name is required")
	}
	if in.Price < 0 {
		return nil, models.NewValidationError("Price cannot be negative")
	}
	category := models.ProductCategory(in.Category)
	if !models.ValidProductCategory(category) {
		return nil, models.NewValidationError("Unknown product category")
	}

	product := &models.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Category:    category,
		Featured:    in.Featured,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in CreateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		product.Name = strings.TrimSpace(in.Name)
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Price > 0 {
		product.Price = in.Price
	}
	if in.Category != "" {
		category := models.ProductCategory(in.Category)
		if !models.ValidProductCategory(category) {
			return nil, models.NewValidationError("Unknown product category")
		}
		product.Category = category
	}
	product.Featured = in.Featured
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
