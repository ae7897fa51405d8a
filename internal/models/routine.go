package models

import "time"

// RoutineCategory is the closed set of routine categories.
type RoutineCategory string

const (
	// RoutineCategoryFitness covers workout and movement tasks.
	RoutineCategoryFitness RoutineCategory = "fitness"
	// RoutineCategorySkincare covers skincare tasks.
	RoutineCategorySkincare RoutineCategory = "skincare"
	// RoutineCategoryNutrition covers meal and diet tasks.
	RoutineCategoryNutrition RoutineCategory = "nutrition"
	// RoutineCategoryCareer covers career and learning tasks.
	RoutineCategoryCareer RoutineCategory = "career"
	// RoutineCategoryOther is the fallback category.
	RoutineCategoryOther RoutineCategory = "other"
)

// ValidRoutineCategory reports whether c is a known category.
func ValidRoutineCategory(c RoutineCategory) bool {
	switch c {
	case RoutineCategoryFitness, RoutineCategorySkincare,
		RoutineCategoryNutrition, RoutineCategoryCareer, RoutineCategoryOther:
		return true
	}
	return false
}

// Routine is a daily routine task on a user's profile.
type Routine struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Title     string          `gorm:"size:120;not null" json:"title"`
	Category  RoutineCategory `gorm:"type:varchar(20);not null;default:'other'" json:"category"`
	Time      string          `gorm:"size:20" json:"time"` // display label, e.g. "6:00 AM"
	Completed bool            `gorm:"default:false" json:"completed"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
