package repository

import (
	"context"
	"errors"
	"fmt"

	"glowup/internal/cache"
	"glowup/internal/models"

	"gorm.io/gorm"
)

// ProductRepository defines persistence operations for storefront products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	GetByNames(ctx context.Context, names []string) ([]models.Product, error)
	List(ctx context.Context, category models.ProductCategory, featuredOnly bool, limit, offset int) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a new ProductRepository implementation.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Product name already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateProductsList(ctx)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := readDB(r.db).WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Product", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &product, nil
}

func (r *productRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	err := readDB(r.db).WithContext(ctx).Where("name = ?", name).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &product, nil
}

func (r *productRepository) GetByNames(ctx context.Context, names []string) ([]models.Product, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := readDB(r.db).WithContext(ctx).Where("name IN ?", names).Find(&products).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return products, nil
}

// List returns products filtered by category and featured flag. The
// unfiltered first page is served through the versioned list cache.
func (r *productRepository) List(ctx context.Context, category models.ProductCategory, featuredOnly bool, limit, offset int) ([]*models.Product, error) {
	var products []*models.Product

	fetch := func() error {
		q := readDB(r.db).WithContext(ctx)
		if category != "" {
			q = q.Where("category = ?", category)
		}
		if featuredOnly {
			q = q.Where("featured = ?", true)
		}
		return q.Order("name ASC").Limit(limit).Offset(offset).Find(&products).Error
	}

	var err error
	if category == "" && !featuredOnly && offset == 0 {
		key := fmt.Sprintf("%s:limit:%d", cache.ProductsListKey(ctx), limit)
		err = cache.Aside(ctx, key, &products, cache.ProductsTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProductsList(ctx)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProductsList(ctx)
	return nil
}
