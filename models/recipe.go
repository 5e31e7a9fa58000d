package models

import (
	"github.com/lib/pq"
)

// Recipe categories. Classification falls back to Main Course;
// pre-shaped sources may carry Other.
const (
	CategoryBreakfast  = "Breakfast"
	CategoryLunch      = "Lunch"
	CategoryDinner     = "Dinner"
	CategorySnacks     = "Snacks"
	CategoryDessert    = "Dessert"
	CategoryMainCourse = "Main Course"
	CategoryOther      = "Other"
)

// DefaultCuisine is used when the source carries no cuisine list.
const DefaultCuisine = "American"

type Recipe struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"uniqueIndex;not null" json:"title"`
	Image         string         `json:"image"`
	Carbs         int            `json:"carbs"`
	Sugar         int            `json:"sugar"`
	Calories      int            `json:"calories"`
	Category      string         `json:"category"`
	Cuisine       string         `json:"cuisine"`
	GlycemicIndex int            `json:"glycemic_index"`
	Ingredients   pq.StringArray `gorm:"type:text[]" json:"ingredients"`
	Instructions  pq.StringArray `gorm:"type:text[]" json:"instructions"`
	Approved      bool           `gorm:"default:false" json:"approved"`
	QualityScore  int            `gorm:"default:0" json:"quality_score"`
}

// ValidCategory reports whether c is one of the canonical categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner,
		CategorySnacks, CategoryDessert, CategoryMainCourse, CategoryOther:
		return true
	}
	return false
}
