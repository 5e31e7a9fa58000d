package services

import (
	"github.com/abhinavsrinivasan/diabetes-me/config"
	"github.com/abhinavsrinivasan/diabetes-me/models"
)

// RecipeFilter narrows the recipe listing. Zero values mean "no filter".
type RecipeFilter struct {
	Category string
	Cuisine  string
	MaxCarbs *int
	MaxSugar *int
}

func ListRecipes(f RecipeFilter) ([]models.Recipe, error) {
	q := config.DB.Order("id")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Cuisine != "" {
		q = q.Where("cuisine = ?", f.Cuisine)
	}
	if f.MaxCarbs != nil {
		q = q.Where("carbs <= ?", *f.MaxCarbs)
	}
	if f.MaxSugar != nil {
		q = q.Where("sugar <= ?", *f.MaxSugar)
	}

	recipes := make([]models.Recipe, 0)
	err := q.Find(&recipes).Error
	return recipes, err
}
