package models

import "time"

// ProductCategory is the storefront's closed category set.
type ProductCategory string

const (
	// ProductCategoryFitness is fitness gear and programs.
	ProductCategoryFitness ProductCategory = "fitness"
	// ProductCategorySkincare is skincare products.
	ProductCategorySkincare ProductCategory = "skincare"
	// ProductCategoryNutrition is supplements and meal plans.
	ProductCategoryNutrition ProductCategory = "nutrition"
	// ProductCategoryCareer is courses and career material.
	ProductCategoryCareer ProductCategory = "career"
)

// ValidProductCategory reports whether c is a known category.
func ValidProductCategory(c ProductCategory) bool {
	switch c {
	case ProductCategoryFitness, ProductCategorySkincare,
		ProductCategoryNutrition, ProductCategoryCareer:
		return true
	}
	return false
}

// Product is a storefront item. Guide recommendations reference products
// by name.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       float64         `gorm:"not null" json:"price"`
	Category    ProductCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Featured    bool            `gorm:"default:false;index" json:"featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
