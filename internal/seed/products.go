package seed

import (
	"fmt"

	"glowup/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogProduct is a permanent storefront item.
type CatalogProduct struct {
	Name        string
	Category    models.ProductCategory
	Price       float64
	Featured    bool
	Description string
}

// Catalog defines the permanent storefront. It must cover every product
// name a guide can recommend, otherwise recommendations point at nothing.
var Catalog = []CatalogProduct{
	// fitness
	{Name: "Weight Loss Guide PDF", Category: models.ProductCategoryFitness, Price: 19.99, Featured: true,
		Description: "Complete fat loss program with workouts and conditioning."},
	{Name: "Muscle Building Guide PDF", Category: models.ProductCategoryFitness, Price: 19.99, Featured: true,
		Description: "Five-day hypertrophy split with progression guidelines."},
	{Name: "Strength Training Guide PDF", Category: models.ProductCategoryFitness, Price: 19.99,
		Description: "Powerlifting-focused program built around the big three lifts."},
	{Name: "Toning Workout Guide PDF", Category: models.ProductCategoryFitness, Price: 19.99,
		Description: "Full body split for lean, defined muscle."},
	{Name: "Adjustable Dumbbell Set", Category: models.ProductCategoryFitness, Price: 249.99,
		Description: "Space-saving dumbbells, 5 to 50 lbs per hand."},
	{Name: "Resistance Bands Set", Category: models.ProductCategoryFitness, Price: 29.99,
		Description: "Five resistance levels for home and travel workouts."},
	{Name: "Weightlifting Belt", Category: models.ProductCategoryFitness, Price: 44.99,
		Description: "Leather belt for heavy squats and deadlifts."},

	// skincare
	{Name: "Clear Skin Guide PDF", Category: models.ProductCategorySkincare, Price: 14.99, Featured: true,
		Description: "Routine and ingredient plan for acne-prone skin."},
	{Name: "Even Tone Guide PDF", Category: models.ProductCategorySkincare, Price: 14.99,
		Description: "Brightening routine for uneven tone and sun damage."},
	{Name: "Hydration Guide PDF", Category: models.ProductCategorySkincare, Price: 14.99,
		Description: "Layering guide to repair a damaged moisture barrier."},
	{Name: "Anti-Aging Guide PDF", Category: models.ProductCategorySkincare, Price: 14.99,
		Description: "Retinoid and SPF centered routine for fine lines."},
	{Name: "Gentle Foaming Cleanser", Category: models.ProductCategorySkincare, Price: 12.99,
		Description: "Fragrance-free daily cleanser for all skin types."},
	{Name: "Vitamin C Serum", Category: models.ProductCategorySkincare, Price: 24.99,
		Description: "10% L-ascorbic acid serum for brightening."},
	{Name: "Retinol Night Cream", Category: models.ProductCategorySkincare, Price: 34.99,
		Description: "Encapsulated retinol cream for overnight renewal."},

	// career
	{Name: "Career Accelerator Course", Category: models.ProductCategoryCareer, Price: 99.99, Featured: true,
		Description: "Twelve-week program for building marketable skills fast."},
	{Name: "Leadership Essentials Course", Category: models.ProductCategoryCareer, Price: 89.99,
		Description: "Management fundamentals for first-time leads."},
	{Name: "Career Pivot Workbook", Category: models.ProductCategoryCareer, Price: 29.99,
		Description: "Structured exercises for planning a career switch."},
	{Name: "Startup Launch Kit", Category: models.ProductCategoryCareer, Price: 149.99,
		Description: "Templates and playbooks for a first product launch."},
	{Name: "Intro to Programming Course", Category: models.ProductCategoryCareer, Price: 59.99,
		Description: "Beginner-friendly programming course, no prerequisites."},
	{Name: "Financial Modeling Course", Category: models.ProductCategoryCareer, Price: 79.99,
		Description: "Spreadsheet modeling for business and finance roles."},
	{Name: "Design Fundamentals Course", Category: models.ProductCategoryCareer, Price: 59.99,
		Description: "Typography, color, and layout for non-designers."},
	{Name: "Learning How to Learn Course", Category: models.ProductCategoryCareer, Price: 39.99,
		Description: "Evidence-based study techniques for any field."},

	// nutrition
	{Name: "Cutting Meal Prep Guide PDF", Category: models.ProductCategoryNutrition, Price: 17.99, Featured: true,
		Description: "High-protein meal plans for a caloric deficit."},
	{Name: "Bulking Meal Prep Guide PDF", Category: models.ProductCategoryNutrition, Price: 17.99,
		Description: "Calorie-dense meal plans for muscle gain."},
	{Name: "Balanced Nutrition Guide PDF", Category: models.ProductCategoryNutrition, Price: 17.99,
		Description: "Maintenance eating with flexible macro targets."},
	{Name: "Performance Nutrition Guide PDF", Category: models.ProductCategoryNutrition, Price: 17.99,
		Description: "Fueling and recovery nutrition for athletes."},
	{Name: "Beginner's Cookbook", Category: models.ProductCategoryNutrition, Price: 24.99,
		Description: "Thirty simple high-protein recipes."},
	{Name: "Plant Protein Sampler", Category: models.ProductCategoryNutrition, Price: 32.99,
		Description: "Five plant-based protein powders to find your favorite."},
}

// Products seeds the permanent storefront catalog. Safe to run repeatedly;
// existing products are updated in place by name.
func Products(db *gorm.DB) error {
	for _, item := range Catalog {
		product := models.Product{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			Featured:    item.Featured,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "price", "category", "featured", "updated_at"}),
		}).Create(&product).Error
		if err != nil {
			return fmt.Errorf("seed product %s: %w", item.Name, err)
		}
	}

	return nil
}
