package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/abhinavsrinivasan/diabetes-me/models"
)

type gormRecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore returns the gorm-backed destination collection.
func NewRecipeStore(db *gorm.DB) RecipeStore {
	return &gormRecipeStore{db: db}
}

func (s *gormRecipeStore) FindByTitle(title string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Where("title = ?", title).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *gormRecipeStore) Insert(r *models.Recipe) error {
	err := s.db.Create(r).Error
	// Concurrent batches can race the dedup check on the same title; the
	// unique index settles it and the loser books a duplicate skip.
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, r.Title)
	}
	return err
}

func (s *gormRecipeStore) DeleteAll() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Recipe{}).Error
}
