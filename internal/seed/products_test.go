package seed

import (
	"testing"

	"glowup/internal/guides"
	"glowup/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestProducts_Idempotent(t *testing.T) {
	t.Parallel()

	db := newProductsTestDB(t)

	if err := Products(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Products(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != int64(len(Catalog)) {
		t.Fatalf("expected %d products, got %d", len(Catalog), count)
	}
}

func TestProducts_CoversGuideRecommendations(t *testing.T) {
	t.Parallel()

	db := newProductsTestDB(t)
	if err := Products(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, name := range guides.RecommendedProductNames() {
		var product models.Product
		if err := db.Where("name = ?", name).First(&product).Error; err != nil {
			t.Errorf("recommended product %q missing from catalog: %v", name, err)
		}
	}
}

func TestProducts_ValidCategories(t *testing.T) {
	t.Parallel()

	for _, item := range Catalog {
		if !models.ValidProductCategory(item.Category) {
			t.Errorf("product %q has invalid category %q", item.Name, item.Category)
		}
		if item.Price <= 0 {
			t.Errorf("product %q has non-positive price %f", item.Name, item.Price)
		}
	}
}
